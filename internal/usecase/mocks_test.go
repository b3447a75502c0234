package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	users       repo.UserRepository
	items       repo.ItemRepository
	carts       repo.CartRepository
	cartEntries repo.CartEntryRepository
	orders      repo.OrderRepository
	orderItems  repo.OrderItemRepository
}

func (r *TxReposMock) Users() repo.UserRepository            { return r.users }
func (r *TxReposMock) Items() repo.ItemRepository            { return r.items }
func (r *TxReposMock) Carts() repo.CartRepository            { return r.carts }
func (r *TxReposMock) CartEntries() repo.CartEntryRepository { return r.cartEntries }
func (r *TxReposMock) Orders() repo.OrderRepository          { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository  { return r.orderItems }

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	args := m.Called(ctx, itemID)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) FindAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) UpdateTotal(ctx context.Context, cartID int64, total decimal.Decimal) error {
	args := m.Called(ctx, cartID, total)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartEntryRepoMock struct{ mock.Mock }

func (m *CartEntryRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	args := m.Called(ctx, cartID)
	entries, _ := args.Get(0).([]model.CartEntry)
	return entries, args.Error(1)
}

func (m *CartEntryRepoMock) AddEntries(ctx context.Context, cartID int64, itemID int64, qty int64) error {
	args := m.Called(ctx, cartID, itemID, qty)
	return args.Error(0)
}

func (m *CartEntryRepoMock) RemoveEntries(ctx context.Context, cartID int64, itemID int64, qty int64) (int64, error) {
	args := m.Called(ctx, cartID, itemID, qty)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.UserOrder) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.UserOrder)
	return orders, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}
