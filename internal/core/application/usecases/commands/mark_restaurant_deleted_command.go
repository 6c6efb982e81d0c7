package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrMarkRestaurantDeletedCommandIsNotConstructed = errors.New(
	"MarkRestaurantDeletedCommand must be created via NewMarkRestaurantDeletedCommand constructor",
)

// MarkRestaurantDeletedCommand represents the compensation for a restaurant
// removal: relabel its orders and drop its carts. Issued by the event
// reactor.
type MarkRestaurantDeletedCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkRestaurantDeletedCommand creates a restaurant removal compensation
// command.
func NewMarkRestaurantDeletedCommand(restaurantID kernel.UUID) (MarkRestaurantDeletedCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return MarkRestaurantDeletedCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return MarkRestaurantDeletedCommand{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkRestaurantDeletedCommand) Validate() error {
	return c.guard.Validate(ErrMarkRestaurantDeletedCommandIsNotConstructed)
}

// RestaurantID returns the removed restaurant.
func (c MarkRestaurantDeletedCommand) RestaurantID() kernel.UUID { return c.restaurantID }
