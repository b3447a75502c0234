package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。商品名と価格は確定時点のコピーを保存する。
type OrderItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;index" json:"order_id"`
	ItemID        int64           `gorm:"not null;index" json:"item_id"`
	NameSnapshot  string          `gorm:"type:varchar(255);not null" json:"name"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"-"`
}
