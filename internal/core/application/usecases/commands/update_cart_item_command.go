package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to change the quantity, and
// optionally the note, of an existing cart line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	catalogItemID kernel.UUID
	quantity      int
	note          *string

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to update a cart line.
// A nil note leaves the existing note unchanged.
func NewUpdateCartItemCommand(userID, catalogItemID kernel.UUID, quantity int, note *string) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setCatalogItemID(catalogItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c UpdateCartItemCommand) UserID() kernel.UUID { return c.userID }

// CatalogItemID returns the catalog item id of the line to update.
func (c UpdateCartItemCommand) CatalogItemID() kernel.UUID { return c.catalogItemID }

// Quantity returns the new quantity.
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }

// Note returns the replacement note, nil when the note is to stay unchanged.
func (c UpdateCartItemCommand) Note() *string { return c.note }

func (c *UpdateCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *UpdateCartItemCommand) setCatalogItemID(catalogItemID kernel.UUID) error {
	if err := catalogItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}
	c.catalogItemID = catalogItemID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
