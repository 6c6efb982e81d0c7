package queries

import (
	"context"

	"foodorder/internal/core/application/auth"

	"gorm.io/gorm"
)

// ListRestaurantOrdersQueryHandler reads a restaurant's order list.
type ListRestaurantOrdersQueryHandler struct {
	db     *gorm.DB
	policy auth.Policy
}

// NewListRestaurantOrdersQueryHandler creates a handler for restaurant order
// listings.
func NewListRestaurantOrdersQueryHandler(db *gorm.DB, policy auth.Policy) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{db: db, policy: policy}
}

// Handle returns the restaurant's orders with items, newest first.
func (h ListRestaurantOrdersQueryHandler) Handle(ctx context.Context, query ListRestaurantOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.CanViewRestaurantOrders(query.Principal(), query.RestaurantID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSelect+`
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	if err = attachOrderItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
