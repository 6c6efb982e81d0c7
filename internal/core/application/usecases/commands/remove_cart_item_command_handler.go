package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
)

// RemoveCartItemCommandHandler handles deleting a single line from a cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveItem(cmd.CatalogItemID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
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
