package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
)

// SeedItems は商品マスタが空のときだけ初期データを入れる。
func SeedItems(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.Item{
		{
			Name:        "Round Widget",
			Price:       decimal.RequireFromString("2.99"),
			Description: "A widget that is round",
		},
		{
			Name:        "Square Widget",
			Price:       decimal.RequireFromString("1.99"),
			Description: "A widget that is square",
		},
	}

	return gormDB.Create(&items).Error
}
