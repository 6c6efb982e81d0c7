package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveUserDataCommandHandler_Handle_RedactsAndDeletesCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	first := storedOrder(t, userID)
	second := storedOrder(t, userID)
	require.NoError(t, second.ChangeStatus(order.Delivered, nil))
	orders := []*order.Order{first, second}

	cmd, err := commands.NewRemoveUserDataCommand(userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	orderRepo.On("GetAllByUser", mock.Anything, userID).Return(orders, nil).Once()
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	cartRepo.On("Delete", mock.Anything, userID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveUserDataCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	for _, o := range orders {
		assert.Equal(t, order.RedactedValue, o.ContactPhone())
		assert.True(t, o.Address().IsRedacted())
	}
	// Status history is untouched, even for terminal orders.
	assert.Equal(t, order.Delivered, second.Status())
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveUserDataCommandHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewRemoveUserDataCommand(userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByUser", mock.Anything, userID).Return([]*order.Order{}, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Delete", mock.Anything, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveUserDataCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
