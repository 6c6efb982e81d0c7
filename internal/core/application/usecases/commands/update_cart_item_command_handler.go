package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
)

// UpdateCartItemCommandHandler handles quantity and note edits on a cart line.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Missing cart or missing line surface
// as ObjectNotFoundError from the repository or the aggregate.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	if err = aggregate.UpdateItem(cmd.CatalogItemID(), cmd.Quantity(), cmd.Note()); err != nil {
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
