package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
)

// systemActor names the acting role on reactor-driven cancellations.
const systemActor = "system"

// CancelRestaurantOrdersCommandHandler cancels a deactivated restaurant's
// open orders, recording one order.cancelled event per affected order.
type CancelRestaurantOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelRestaurantOrdersCommandHandler creates a handler for restaurant
// deactivation compensation.
func NewCancelRestaurantOrdersCommandHandler(uowFactory OrderUoWFactory) CancelRestaurantOrdersCommandHandler {
	return CancelRestaurantOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending or confirmed order of the restaurant. All
// cancellations and their events commit together.
func (h *CancelRestaurantOrdersCommandHandler) Handle(ctx context.Context, cmd CancelRestaurantOrdersCommand) error {
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
	orders, err := orderRepo.GetActiveByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	outboxRepo := uow.OutboxRepository()
	now := time.Now()
	for _, aggregate := range orders {
		if err = aggregate.Cancel(cmd.Reason(), systemActor, now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := events.NewOrderCancelled(aggregate, cmd.Reason(), systemActor)
		if err != nil {
			return err
		}
		if err = outboxRepo.Add(ctx, event); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
