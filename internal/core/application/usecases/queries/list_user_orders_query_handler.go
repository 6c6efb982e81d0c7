package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler reads a user's order history.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListUserOrdersQueryHandler creates a handler for order history reads.
func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns the user's orders with items, newest first.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSelect+`
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
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
