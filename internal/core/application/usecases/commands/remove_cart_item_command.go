package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete one line from a cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	catalogItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(userID, catalogItemID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := catalogItemID.Validate(); err != nil {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}

	cmd.userID = userID
	cmd.catalogItemID = catalogItemID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c RemoveCartItemCommand) UserID() kernel.UUID { return c.userID }

// CatalogItemID returns the catalog item id of the line to remove.
func (c RemoveCartItemCommand) CatalogItemID() kernel.UUID { return c.catalogItemID }
