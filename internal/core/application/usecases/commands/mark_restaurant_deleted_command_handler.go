package commands

import (
	"context"
)

// MarkRestaurantDeletedCommandHandler relabels a removed restaurant's orders
// with the deleted sentinel and deletes all carts bound to it.
type MarkRestaurantDeletedCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkRestaurantDeletedCommandHandler creates a handler for restaurant
// removal compensation.
func NewMarkRestaurantDeletedCommandHandler(uowFactory UoWFactory) MarkRestaurantDeletedCommandHandler {
	return MarkRestaurantDeletedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle relabels all the restaurant's orders and deletes its carts in one
// transaction.
func (h *MarkRestaurantDeletedCommandHandler) Handle(ctx context.Context, cmd MarkRestaurantDeletedCommand) error {
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
	orders, err := orderRepo.GetAllByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		aggregate.MarkRestaurantDeleted()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.CartRepository().DeleteByRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
