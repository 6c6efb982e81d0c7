package queries

import (
	"context"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection with its snapshot
// lines.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy auth.Policy
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB, policy auth.Policy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle returns the order, enforcing customer ownership after the row is
// loaded so that a foreign order reads as forbidden, not missing.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSelect+`
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	if err = h.policy.CanViewOrder(query.Principal(), orders[0].UserID); err != nil {
		return OrderResponse{}, err
	}

	if err = attachOrderItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
