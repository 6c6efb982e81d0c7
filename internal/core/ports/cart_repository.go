// Package ports defines the persistence and messaging contracts of the order
// service. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A user owns at most one cart, keyed by user id.
type CartRepository interface {
	// Add persists a new cart for a user who has none.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart, replacing its line items.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves the cart of the given user.
	// Returns ObjectNotFoundError when the user has no cart.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Delete removes the user's cart entirely. Deleting an absent cart is not
	// an error.
	Delete(ctx context.Context, userID kernel.UUID) error

	// DeleteByRestaurant removes every cart currently bound to the given
	// restaurant. Used when a restaurant is removed from the catalog.
	DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) error
}
