package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutCommand(t *testing.T, userID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704", nil, nil)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(userID, address, "+15551234567", "card", "")
	require.NoError(t, err)
	return cmd
}

func filledCart(t *testing.T, userID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID, kernel.NewUUID(), "Luigi's")
	require.NoError(t, err)
	pizza, err := cart.NewItem(kernel.NewUUID(), "Margherita Pizza", decimal.NewFromFloat(10.00), "", 2, "")
	require.NoError(t, err)
	bread, err := cart.NewItem(kernel.NewUUID(), "Garlic Bread", decimal.NewFromFloat(5.00), "", 1, "")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(c.RestaurantID(), "Luigi's", pizza))
	require.NoError(t, c.AddItem(c.RestaurantID(), "Luigi's", bread))
	return c
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := checkoutCommand(t, userID)
	userCart := filledCart(t, userID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, userID).Return(userCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Update", mock.Anything, userCart).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
			return e.Key == events.OrderCreatedKey
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, order.Pending, created.Status())
	assert.True(t, decimal.NewFromFloat(25.00).Equal(created.TotalAmount()))
	assert.Len(t, created.Items(), 2)
	assert.True(t, userCart.IsEmpty())
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := checkoutCommand(t, userID)

	emptyCart, err := cart.NewCart(userID, kernel.NewUUID(), "Luigi's")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, userID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := checkoutCommand(t, userID)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("userId", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NumberCollisionRetries(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := checkoutCommand(t, userID)
	userCart := filledCart(t, userID)

	numbers := make(map[string]struct{})
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, userID).Return(userCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			numbers[o.Number()] = struct{}{}
			return true
		})).Return(errs.ErrOrderNumberTaken).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			numbers[o.Number()] = struct{}{}
			return true
		})).Return(nil).Once(),
		cartRepo.On("Update", mock.Anything, userCart).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	// A second number was generated for the retry.
	assert.Len(t, numbers, 2)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SecondCollisionFails(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := checkoutCommand(t, userID)
	userCart := filledCart(t, userID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, userID).Return(userCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.ErrOrderNumberTaken).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOrderNumberTaken)
	uow.AssertExpectations(t)
}
