package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// =====================
// In-memoryの疑似永続化層。
// シナリオテスト用（追加→削除の往復など、状態の積み重ねを見たいもの）。
// =====================

type memState struct {
	users      []model.User
	items      []model.Item
	carts      []model.Cart
	entries    []model.CartEntry
	orders     []model.UserOrder
	orderItems []model.OrderItem
	nextID     int64
}

func newMemState() *memState {
	return &memState{nextID: 1}
}

func (s *memState) id() int64 {
	v := s.nextID
	s.nextID++
	return v
}

// シード：ユーザー＋空カート
func (s *memState) seedUser(username string) model.User {
	u := model.User{ID: s.id(), Username: username, PasswordHash: "hashed"}
	s.users = append(s.users, u)
	s.carts = append(s.carts, model.Cart{ID: s.id(), UserID: u.ID, Total: decimal.Zero})
	return u
}

func (s *memState) seedItem(name string, price int64) model.Item {
	it := model.Item{ID: s.id(), Name: name, Price: decimal.NewFromInt(price)}
	s.items = append(s.items, it)
	return it
}

func (s *memState) cartOf(userID int64) *model.Cart {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			return &s.carts[i]
		}
	}
	return nil
}

type memUserRepo struct{ s *memState }

func (r memUserRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = r.s.id()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r memUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (r memUserRepo) FindByID(ctx context.Context, userID int64) (model.User, error) {
	for _, u := range r.s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

type memItemRepo struct{ s *memState }

func (r memItemRepo) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	for _, it := range r.s.items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return model.Item{}, repo.ErrNotFound
}

func (r memItemRepo) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	out := []model.Item{}
	for _, it := range r.s.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r memItemRepo) FindAll(ctx context.Context) ([]model.Item, error) {
	return append([]model.Item{}, r.s.items...), nil
}

type memCartRepo struct{ s *memState }

func (r memCartRepo) Create(ctx context.Context, cart *model.Cart) error {
	cart.ID = r.s.id()
	r.s.carts = append(r.s.carts, *cart)
	return nil
}

func (r memCartRepo) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	if c := r.s.cartOf(userID); c != nil {
		return *c, nil
	}
	return model.Cart{}, repo.ErrNotFound
}

func (r memCartRepo) UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error {
	for i := range r.s.carts {
		if r.s.carts[i].ID == cartID {
			r.s.carts[i].Total = total
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memCartRepo) Clear(ctx context.Context, cartID int64) error {
	kept := r.s.entries[:0]
	for _, e := range r.s.entries {
		if e.CartID != cartID {
			kept = append(kept, e)
		}
	}
	r.s.entries = kept
	return nil
}

type memCartEntryRepo struct{ s *memState }

func (r memCartEntryRepo) ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	out := []model.CartEntry{}
	for _, e := range r.s.entries {
		if e.CartID == cartID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memCartEntryRepo) AddEntries(ctx context.Context, cartID int64, itemID int64, qty int64) error {
	for i := int64(0); i < qty; i++ {
		r.s.entries = append(r.s.entries, model.CartEntry{ID: r.s.id(), CartID: cartID, ItemID: itemID})
	}
	return nil
}

func (r memCartEntryRepo) RemoveEntries(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	var removed int64
	kept := r.s.entries[:0]
	for _, e := range r.s.entries {
		if removed < qty && e.CartID == cartID && e.ItemID == itemID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.s.entries = kept
	return removed, nil
}

type memOrderRepo struct{ s *memState }

func (r memOrderRepo) Create(ctx context.Context, order model.UserOrder) (int64, error) {
	order.ID = r.s.id()
	r.s.orders = append(r.s.orders, order)
	return order.ID, nil
}

func (r memOrderRepo) ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error) {
	out := []model.UserOrder{}
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memOrderItemRepo struct{ s *memState }

func (r memOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	for _, it := range items {
		it.ID = r.s.id()
		it.OrderID = orderID
		r.s.orderItems = append(r.s.orderItems, it)
	}
	return nil
}

func (r memOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	out := []model.OrderItem{}
	for _, it := range r.s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memTxRepos struct{ s *memState }

func (r memTxRepos) Users() repo.UserRepository            { return memUserRepo{r.s} }
func (r memTxRepos) Items() repo.ItemRepository            { return memItemRepo{r.s} }
func (r memTxRepos) Carts() repo.CartRepository            { return memCartRepo{r.s} }
func (r memTxRepos) CartEntries() repo.CartEntryRepository { return memCartEntryRepo{r.s} }
func (r memTxRepos) Orders() repo.OrderRepository          { return memOrderRepo{r.s} }
func (r memTxRepos) OrderItems() repo.OrderItemRepository  { return memOrderItemRepo{r.s} }

// WithinTxは素通し（テストではロールバック不要）
type memTxManager struct{ s *memState }

func (m memTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(memTxRepos{m.s})
}
