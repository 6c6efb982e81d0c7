package commands

import (
	"context"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/events"
)

// UpdateOrderDeliveryInfoCommandHandler handles attaching external delivery
// identifiers to an order.
type UpdateOrderDeliveryInfoCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     auth.Policy
}

// NewUpdateOrderDeliveryInfoCommandHandler creates a handler for delivery
// linkage updates.
func NewUpdateOrderDeliveryInfoCommandHandler(uowFactory OrderUoWFactory, policy auth.Policy) UpdateOrderDeliveryInfoCommandHandler {
	return UpdateOrderDeliveryInfoCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the linkage and records order.delivery_assigned.
func (h *UpdateOrderDeliveryInfoCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDeliveryInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.CanUpdateDeliveryInfo(cmd.Principal()); err != nil {
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

	if err = aggregate.AssignDelivery(cmd.DeliveryID(), cmd.DeliveryPersonID(), cmd.DeliveryPersonName()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewOrderDeliveryAssigned(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
