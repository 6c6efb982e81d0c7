package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveUserDataCommandIsNotConstructed = errors.New(
	"RemoveUserDataCommand must be created via NewRemoveUserDataCommand constructor",
)

// RemoveUserDataCommand represents the compensation for an account deletion:
// redact the user's orders and delete their cart. Issued by the event
// reactor, never by a caller-facing surface.
type RemoveUserDataCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveUserDataCommand creates an account removal compensation command.
func NewRemoveUserDataCommand(userID kernel.UUID) (RemoveUserDataCommand, error) {
	if err := userID.Validate(); err != nil {
		return RemoveUserDataCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return RemoveUserDataCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveUserDataCommand) Validate() error {
	return c.guard.Validate(ErrRemoveUserDataCommandIsNotConstructed)
}

// UserID returns the deleted account.
func (c RemoveUserDataCommand) UserID() kernel.UUID { return c.userID }
