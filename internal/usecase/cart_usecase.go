package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// CartUsecase は /api/cart の業務ロジックです。
// 追加・削除は1トランザクションで読み書きする。
type CartUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type ModifyCartInput struct {
	Username string
	ItemID   int64
	Quantity int64
}

type CartEntryResponse struct {
	ID     int64           `json:"id"`
	ItemID int64           `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

type CartResponse struct {
	ID     int64               `json:"id"`
	UserID int64               `json:"user_id"`
	Items  []CartEntryResponse `json:"items"`
	Total  decimal.Decimal     `json:"total"`
}

// AddToCart はカートに商品をquantity個追加して合計を加算する。
func (u *CartUsecase) AddToCart(ctx context.Context, in ModifyCartInput) (CartResponse, error) {
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := u.lookup(ctx, r, in.Username, in.ItemID)
		if err != nil {
			return err
		}

		if err := r.CartEntries().AddEntries(ctx, cart.ID, item.ID, in.Quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newTotal := cart.Total.Add(item.Price.Mul(decimal.NewFromInt(in.Quantity)))
		if err := r.Carts().UpdateTotal(ctx, cart.ID, newTotal); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartResponse(ctx, r, cart.ID, user.ID, newTotal)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}

// RemoveFromCart はカートから最大quantity個を取り除く。
// 実際に消せた個数分だけ合計から引くので、合計は常に明細の和のまま。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, in ModifyCartInput) (CartResponse, error) {
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := u.lookup(ctx, r, in.Username, in.ItemID)
		if err != nil {
			return err
		}

		removed, err := r.CartEntries().RemoveEntries(ctx, cart.ID, item.ID, in.Quantity)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newTotal := cart.Total
		if removed > 0 {
			newTotal = cart.Total.Sub(item.Price.Mul(decimal.NewFromInt(removed)))
			if err := r.Carts().UpdateTotal(ctx, cart.ID, newTotal); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		out, err = buildCartResponse(ctx, r, cart.ID, user.ID, newTotal)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}

// ユーザー・カート・商品をまとめて取得。存在しなければ404。
func (u *CartUsecase) lookup(ctx context.Context, r repo.TxRepos, username string, itemID int64) (model.User, model.Cart, model.Item, error) {
	user, err := r.Users().FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := r.Items().FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := r.Carts().FindByUserID(ctx, user.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return user, cart, item, nil
}

// cartIDの明細をまとめてCartResponseを作る。
func buildCartResponse(ctx context.Context, r repo.TxRepos, cartID int64, userID int64, total decimal.Decimal) (CartResponse, error) {
	entries, err := r.CartEntries().ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartEntryResponse, 0, len(entries))
	cache := map[int64]model.Item{}

	for _, e := range entries {
		item, ok := cache[e.ItemID]
		if !ok {
			item, err = r.Items().FindByID(ctx, e.ItemID)
			if err != nil {
				return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			cache[e.ItemID] = item
		}

		respItems = append(respItems, CartEntryResponse{
			ID:     e.ID,
			ItemID: e.ItemID,
			Name:   item.Name,
			Price:  item.Price,
		})
	}

	return CartResponse{
		ID:     cartID,
		UserID: userID,
		Items:  respItems,
		Total:  total,
	}, nil
}
