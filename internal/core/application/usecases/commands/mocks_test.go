package commands_test

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if c, ok := args.Get(0).(*cart.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) Delete(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetActiveByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]events.Event, error) {
	args := m.Called(ctx, limit)
	if evs, ok := args.Get(0).([]events.Event); ok {
		return evs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies CartUoW, OrderUoW, and the cross-aggregate UoW.
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
func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
