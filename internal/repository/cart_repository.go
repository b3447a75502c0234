package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error

	//明細を全削除（合計はUpdateTotalで別途0に戻す）
	Clear(ctx context.Context, cartID int64) error
}

type CartEntryRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error)

	//同じ商品をqty行追加する
	AddEntries(ctx context.Context, cartID int64, itemID int64, qty int64) error

	//古い行から最大qty行を削除し、実際に削除した行数を返す
	RemoveEntries(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error)
}
