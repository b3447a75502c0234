package repository

import (
	"context"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
)

// 商品の取得だけを約束（書き込みはシードのみ）。
type ItemRepository interface {
	FindByID(ctx context.Context, itemID int64) (model.Item, error)

	//名前一致の商品一覧（0件でもエラーにしない）
	FindByName(ctx context.Context, name string) ([]model.Item, error)

	FindAll(ctx context.Context) ([]model.Item, error)
}
