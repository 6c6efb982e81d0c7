package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a user's cart in place.
// The cart row survives with zero lines.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty a cart.
func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return ClearCartCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c ClearCartCommand) UserID() kernel.UUID { return c.userID }
