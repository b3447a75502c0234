package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	domainrepo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを新規作成（会員登録時に1回だけ呼ばれる）
func (r *CartGormRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// ユーザーのカートを取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// carts.totalを更新
func (r *CartGormRepository) UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("total", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// 指定カートの明細を全削除
func (r *CartGormRepository) Clear(ctx context.Context, cartID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartEntry{}).Error
}

type CartEntryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartEntryGormRepository(db *gorm.DB) *CartEntryGormRepository {
	return &CartEntryGormRepository{db: db}
}

// カート明細を挿入順で一覧取得
func (r *CartEntryGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	var entries []model.CartEntry

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&entries).Error; err != nil {
		return []model.CartEntry{}, err
	}

	return entries, nil
}

// 同じ商品をqty行追加
func (r *CartEntryGormRepository) AddEntries(ctx context.Context, cartID int64, itemID int64, qty int64) error {
	if qty < 1 {
		return errors.New("invalid quantity")
	}

	entries := make([]model.CartEntry, 0, qty)
	for i := int64(0); i < qty; i++ {
		entries = append(entries, model.CartEntry{
			CartID: cartID,
			ItemID: itemID,
		})
	}

	return r.db.WithContext(ctx).Create(&entries).Error
}

// 古い行から最大qty行を削除し、実際に削除した行数を返す
func (r *CartEntryGormRepository) RemoveEntries(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	if qty < 1 {
		return 0, errors.New("invalid quantity")
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&model.CartEntry{}).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Order("id asc").
		Limit(int(qty)).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Delete(&model.CartEntry{}, ids)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
