package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	domainrepo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

type itemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) domainrepo.ItemRepository {
	return &itemGormRepository{db: db}
}

// IDで商品を1件取得
func (r *itemGormRepository) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	var item model.Item

	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}

	return item, nil
}

// 名前一致の商品一覧（0件なら空スライス）
func (r *itemGormRepository) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}

// 全商品を取得
func (r *itemGormRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}
