package queries

import (
	"context"

	"foodorder/internal/core/application/auth"

	"gorm.io/gorm"
)

// ListAllOrdersQueryHandler reads the global order list for operators.
type ListAllOrdersQueryHandler struct {
	db     *gorm.DB
	policy auth.Policy
}

// NewListAllOrdersQueryHandler creates a handler for global order listings.
func NewListAllOrdersQueryHandler(db *gorm.DB, policy auth.Policy) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db, policy: policy}
}

// Handle returns one page of orders with items, newest first.
func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.CanListAllOrders(query.Principal()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSelect+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
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
