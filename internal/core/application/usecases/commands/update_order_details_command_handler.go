package commands

import (
	"context"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/events"
)

// UpdateOrderDetailsCommandHandler handles edits to a pending order's
// delivery details.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     auth.Policy
}

// NewUpdateOrderDetailsCommandHandler creates a handler for detail edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory, policy auth.Policy) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the edit and records order.details_updated. Non-pending
// orders are rejected by the aggregate.
func (h *UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	if err = h.policy.CanUpdateOrderDetails(cmd.Principal(), aggregate.UserID()); err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.DeliveryAddress(), cmd.ContactPhone(), cmd.SpecialInstructions()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewOrderDetailsUpdated(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
