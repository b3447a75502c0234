package model

import "time"

// カートの明細。1行＝商品1個。
// 同じ商品を複数入れると行が増える（挿入順はidの昇順）。
type CartEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index" json:"cart_id"`
	ItemID    int64     `gorm:"not null;index" json:"item_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
