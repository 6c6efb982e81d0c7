package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
)

// ClearCartCommandHandler handles emptying a cart in place.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command and records a cart.cleared event.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	aggregate.Clear()

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewCartCleared(cmd.UserID())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
