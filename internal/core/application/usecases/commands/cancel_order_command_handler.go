package commands

import (
	"context"
	"time"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/events"
)

// CancelOrderCommandHandler handles order cancellation with an audit line and
// an order.cancelled event naming the acting role.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     auth.Policy
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, policy auth.Policy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the cancellation. Delivered orders are rejected with
// InvalidOrderStateError by the aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanCancelOrder(cmd.Principal(), aggregate.UserID()); err != nil {
		return err
	}

	actingRole := string(cmd.Principal().Role)
	if err = aggregate.Cancel(cmd.Reason(), actingRole, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewOrderCancelled(aggregate, cmd.Reason(), actingRole)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
