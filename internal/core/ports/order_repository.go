package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns ErrOrderNumberTaken when the order number collides with an
	// existing one.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUser retrieves every order placed by the given user.
	// Used by account-removal redaction.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves every order placed with the given
	// restaurant. Used by restaurant-removal relabeling.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetActiveByRestaurant retrieves the restaurant's orders still in pending
	// or confirmed status. Used to cancel open orders when a restaurant is
	// deactivated.
	GetActiveByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)
}
