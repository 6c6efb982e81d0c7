package queries

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
	"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
)

// ListRestaurantOrdersQuery retrieves all orders of one restaurant, newest
// first. Permitted to the system admin and the restaurant's own admin.
type ListRestaurantOrdersQuery struct {
	principal    auth.Principal
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListRestaurantOrdersQuery creates a restaurant order listing query.
func NewListRestaurantOrdersQuery(principal auth.Principal, restaurantID kernel.UUID) (ListRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return ListRestaurantOrdersQuery{
		principal:    principal,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

// Principal returns the reading caller.
func (q ListRestaurantOrdersQuery) Principal() auth.Principal { return q.principal }

// RestaurantID returns the restaurant whose orders are listed.
func (q ListRestaurantOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }
