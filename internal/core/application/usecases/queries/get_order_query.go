package queries

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order read model. Customers may read only
// their own orders; staff may read any.
type GetOrderQuery struct {
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order read query.
func NewGetOrderQuery(principal auth.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetOrderQuery{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Principal returns the reading caller.
func (q GetOrderQuery) Principal() auth.Principal { return q.principal }

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
