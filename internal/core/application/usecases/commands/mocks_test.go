package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) AppendItems(ctx context.Context, o *order.Order, lines []order.LineItem) error {
	args := m.Called(ctx, o, lines)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) ListForViewer(_ context.Context, _ *staff.AdminUser, _ ports.OrderFilter) ([]*order.Order, error) {
	return nil, nil
}
func (m *MockOrderRepository) ListStale(_ context.Context, _ order.Status, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}
func (m *MockMenuRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[string]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).(map[string]*menu.MenuItem)
	return items, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

type MockGuestRepository struct{ mock.Mock }

func (m *MockGuestRepository) Add(ctx context.Context, g *guest.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*guest.Guest)
	return g, args.Error(1)
}
func (m *MockGuestRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminUserRepository struct{ mock.Mock }

func (m *MockAdminUserRepository) Add(ctx context.Context, u *staff.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockAdminUserRepository) Update(ctx context.Context, u *staff.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockAdminUserRepository) Get(ctx context.Context, id kernel.UUID) (*staff.AdminUser, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*staff.AdminUser)
	return u, args.Error(1)
}
func (m *MockAdminUserRepository) GetByEmail(ctx context.Context, email string) (*staff.AdminUser, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*staff.AdminUser)
	return u, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) GuestRepository() ports.GuestRepository {
	args := m.Called()
	return args.Get(0).(ports.GuestRepository)
}
func (m *MockUoW) AdminUserRepository() ports.AdminUserRepository {
	args := m.Called()
	return args.Get(0).(ports.AdminUserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockGuestUoWFactory struct{ mock.Mock }

func (m *MockGuestUoWFactory) Create() commands.GuestUoW {
	args := m.Called()
	return args.Get(0).(commands.GuestUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newActor(t *testing.T, role staff.Role) *staff.AdminUser {
	t.Helper()
	u, err := staff.NewAdminUser(kernel.NewUUID(), role.String()+" user", role.String()+"@hotel.example", role, time.Now())
	require.NoError(t, err)
	return u
}

func newMenuItem(t *testing.T, name string, price kernel.Money) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, "Test", price)
	require.NoError(t, err)
	return item
}

func newStoredOrder(t *testing.T, createdBy *staff.AdminUser, status order.Status) *order.Order {
	t.Helper()
	room, err := kernel.NewRoomLocation("101")
	require.NoError(t, err)
	line1, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), "Continental Breakfast", 1600, 1, "")
	require.NoError(t, err)
	line2, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), "Freshly Brewed Coffee", 350, 2, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), order.RoomService, &room, createdBy.ID(), time.Now(),
		kernel.DefaultTaxRate, status, []order.LineItem{line1, line2})
	require.NoError(t, err)
	return o
}
