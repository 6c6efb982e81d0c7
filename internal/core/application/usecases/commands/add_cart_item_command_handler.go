package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for adding an item to
// a cart. Creates the cart on first use, rebinds it when the item comes from
// a different restaurant, and merges quantities for repeated catalog items.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart add operations.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. The cart mutation and its cart.updated
// outbox row commit in one transaction.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := cmd.Item()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.UserID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		aggregate, err = cart.NewCart(cmd.UserID(), cmd.RestaurantID(), cmd.RestaurantName())
		created = true
	}
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.RestaurantID(), cmd.RestaurantName(), item); err != nil {
		return err
	}

	if created {
		err = cartRepo.Add(ctx, aggregate)
	} else {
		err = cartRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	event, err := events.NewCartUpdated(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
