package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// OrderUsecase は /api/order の業務ロジックです。
type OrderUsecase struct {
	tx repo.TransactionManager

	// 確定後にカートを空に戻すかどうか（ORDER_CLEAR_CART）。
	// 既定はfalse：同じカートをもう一度確定すると注文が重複する。
	clearCartOnSubmit bool
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, clearCartOnSubmit bool) *OrderUsecase {
	return &OrderUsecase{
		tx:                tx,
		clearCartOnSubmit: clearCartOnSubmit,
	}
}

type OrderItemOutput struct {
	ItemID int64           `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Items     []OrderItemOutput `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

// Submit は現在のカートの内容と合計をそのままコピーした注文を作る。
// 元のカートは変更しない（clearCartOnSubmitが有効な場合を除く）。
func (u *OrderUsecase) Submit(ctx context.Context, username string) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserID(ctx, user.ID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		entries, err := r.CartEntries().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細のスナップショット
		orderItems := make([]model.OrderItem, 0, len(entries))
		cache := map[int64]model.Item{}

		for _, e := range entries {
			item, ok := cache[e.ItemID]
			if !ok {
				item, err = r.Items().FindByID(ctx, e.ItemID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				cache[e.ItemID] = item
			}

			orderItems = append(orderItems, model.OrderItem{
				ItemID:        e.ItemID,
				NameSnapshot:  item.Name,
				PriceSnapshot: item.Price,
			})
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.UserOrder{
			UserID:    user.ID,
			Total:     cart.Total,
			CreatedAt: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if u.clearCartOnSubmit {
			if err := r.Carts().Clear(ctx, cart.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.Carts().UpdateTotal(ctx, cart.ID, decimal.Zero); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		created := model.UserOrder{
			ID:        orderID,
			UserID:    user.ID,
			Total:     cart.Total,
			CreatedAt: now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	return out, nil
}

// GetOrdersForUser はユーザーの注文履歴（明細つき）を返す。
func (u *OrderUsecase) GetOrdersForUser(ctx context.Context, username string) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orders, err := r.Orders().ListByUserID(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outs, nil
}

func toOrderOutput(o model.UserOrder, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ItemID: it.ItemID,
			Name:   it.NameSnapshot,
			Price:  it.PriceSnapshot,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     outItems,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}
