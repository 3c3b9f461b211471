package commands_test

import (
	"testing"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	waiter := newActor(t, staff.Staff)
	stored := newStoredOrder(t, waiter, order.Preparing)
	cake := newMenuItem(t, "Black Forest Cake", 500)
	cmd, err := commands.NewAddOrderItemsCommand(waiter, stored.ID(), []commands.OrderItem{{MenuItemID: cake.ID(), Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	isNewCakeLine := mock.MatchedBy(func(lines []order.LineItem) bool {
		return len(lines) == 1 && lines[0].MenuItemID().IsEqual(cake.ID()) && lines[0].Quantity() == 2
	})
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetMany", ctx, []kernel.UUID{cake.ID()}).Return(map[string]*menu.MenuItem{cake.ID().String(): cake}, nil).Once(),
		orderRepo.On("AppendItems", ctx, stored, isNewCakeLine).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, stored.Lines(), 3)
	// 2300 + 1000 = 3300, tax 264
	assert.Equal(t, kernel.Money(3564), stored.Total())
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemsCommandHandler_Handle_PaidOrder(t *testing.T) {
	ctx := t.Context()
	waiter := newActor(t, staff.Staff)
	stored := newStoredOrder(t, waiter, order.Paid)
	cmd, _ := commands.NewAddOrderItemsCommand(waiter, stored.ID(), []commands.OrderItem{{MenuItemID: kernel.NewUUID(), Quantity: 1}})

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.ErrorIs(t, err, order.ErrOrderIsPaid)
	uow.AssertNotCalled(t, "MenuRepository")
	uow.AssertExpectations(t)
}

func TestAddOrderItemsCommandHandler_Handle_SomeoneElsesOrder(t *testing.T) {
	ctx := t.Context()
	owner := newActor(t, staff.Staff)
	other := newActor(t, staff.Staff)
	stored := newStoredOrder(t, owner, order.Pending)
	cmd, _ := commands.NewAddOrderItemsCommand(other, stored.ID(), []commands.OrderItem{{MenuItemID: kernel.NewUUID(), Quantity: 1}})

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	manager := newActor(t, staff.Manager)
	stored := newStoredOrder(t, newActor(t, staff.Staff), order.Pending)
	cmd, err := commands.NewUpdateOrderStatusCommand(manager, stored.ID(), order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, stored.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippedStage(t *testing.T) {
	ctx := t.Context()
	waiter := newActor(t, staff.Staff)
	stored := newStoredOrder(t, waiter, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(waiter, stored.ID(), order.Ready)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, stored.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(newActor(t, staff.Admin), id, order.Preparing)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(newActor(t, staff.Staff), kernel.NewUUID(), order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
