package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout: it snapshots the caller's cart
// into a new pending order, clears the cart, and records the order.created
// event, all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a cross-aggregate UoWFactory because checkout touches the cart,
// the order, and the outbox together.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the created order.
//
// An absent or empty cart fails with EmptyCartError. The order number is
// random-suffixed; on a unique-index collision the insert is retried once
// with a fresh number before the error is surfaced.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewEmptyCartError(cmd.UserID().String())
	}
	if err != nil {
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, errs.NewEmptyCartError(cmd.UserID().String())
	}

	items, err := order.SnapshotCartItems(userCart.Items())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	var created *order.Order
	for attempt := 0; attempt < 2; attempt++ {
		created, err = order.NewOrder(
			kernel.NewUUID(),
			order.NewNumber(time.Now()),
			cmd.UserID(),
			userCart.RestaurantID(),
			userCart.RestaurantName(),
			items,
			cmd.DeliveryAddress(),
			cmd.ContactPhone(),
			cmd.PaymentMethod(),
			cmd.SpecialInstructions(),
		)
		if err != nil {
			return nil, err
		}

		err = orderRepo.Add(ctx, created)
		if !errors.Is(err, errs.ErrOrderNumberTaken) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	userCart.Clear()
	if err = cartRepo.Update(ctx, userCart); err != nil {
		return nil, err
	}

	event, err := events.NewOrderCreated(created)
	if err != nil {
		return nil, err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
