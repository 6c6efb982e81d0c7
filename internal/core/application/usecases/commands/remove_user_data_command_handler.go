package commands

import (
	"context"
	"time"
)

// RemoveUserDataCommandHandler redacts a deleted user's orders and deletes
// their cart. Orders survive with their amounts and status history intact;
// only contact fields are overwritten.
type RemoveUserDataCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveUserDataCommandHandler creates a handler for account removal
// compensation.
func NewRemoveUserDataCommandHandler(uowFactory UoWFactory) RemoveUserDataCommandHandler {
	return RemoveUserDataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle redacts every order of the user and removes their cart in one
// transaction. A user with no orders and no cart is a no-op, not an error.
func (h *RemoveUserDataCommandHandler) Handle(ctx context.Context, cmd RemoveUserDataCommand) error {
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
	orders, err := orderRepo.GetAllByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, aggregate := range orders {
		aggregate.Redact(now)
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.CartRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
