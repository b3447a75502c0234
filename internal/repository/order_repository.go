package repository

import (
	"context"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.UserOrder) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
