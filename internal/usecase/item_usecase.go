package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// ItemUsecase は /api/item の業務ロジックです。商品は読み取り専用。
type ItemUsecase struct {
	items repo.ItemRepository
}

// DI
func NewItemUsecase(items repo.ItemRepository) *ItemUsecase {
	return &ItemUsecase{items: items}
}

func (u *ItemUsecase) GetByID(ctx context.Context, itemID int64) (model.Item, error) {
	item, err := u.items.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// GetByName は名前一致の商品一覧。0件は「存在しない」と同じ扱いで404。
func (u *ItemUsecase) GetByName(ctx context.Context, name string) ([]model.Item, error) {
	items, err := u.items.FindByName(ctx, name)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	return items, nil
}

func (u *ItemUsecase) GetAll(ctx context.Context) ([]model.Item, error) {
	items, err := u.items.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
