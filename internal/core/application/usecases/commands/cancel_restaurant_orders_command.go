package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCancelRestaurantOrdersCommandIsNotConstructed = errors.New(
	"CancelRestaurantOrdersCommand must be created via NewCancelRestaurantOrdersCommand constructor",
)

// CancelRestaurantOrdersCommand represents the compensation for a restaurant
// deactivation: cancel all of its orders still in pending or confirmed
// status. Issued by the event reactor.
type CancelRestaurantOrdersCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewCancelRestaurantOrdersCommand creates a restaurant deactivation
// compensation command.
func NewCancelRestaurantOrdersCommand(restaurantID kernel.UUID, reason string) (CancelRestaurantOrdersCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return CancelRestaurantOrdersCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return CancelRestaurantOrdersCommand{
		restaurantID: restaurantID,
		reason:       reason,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRestaurantOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelRestaurantOrdersCommandIsNotConstructed)
}

// RestaurantID returns the deactivated restaurant.
func (c CancelRestaurantOrdersCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Reason returns the cancellation reason recorded on every affected order.
func (c CancelRestaurantOrdersCommand) Reason() string { return c.reason }
