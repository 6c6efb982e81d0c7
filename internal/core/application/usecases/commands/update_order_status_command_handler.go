package commands

import (
	"context"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/events"
)

// UpdateOrderStatusCommandHandler handles fulfillment status moves.
// Plain customers are rejected even though the outer transport also gates
// this operation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     auth.Policy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy auth.Policy) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status update and records order.status_updated.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.CanUpdateOrderStatus(cmd.Principal()); err != nil {
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

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.EstimatedDeliveryTime()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewOrderStatusUpdated(aggregate, previous)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
