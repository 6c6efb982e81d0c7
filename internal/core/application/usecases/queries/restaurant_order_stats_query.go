package queries

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRestaurantOrderStatsQueryIsNotConstructed = errors.New(
	"RestaurantOrderStatsQuery must be created via NewRestaurantOrderStatsQuery constructor",
)

// RestaurantOrderStatsQuery computes a restaurant's order statistics:
// per-status counts for all time and for today, active order count, and
// revenue over delivered orders.
type RestaurantOrderStatsQuery struct {
	principal    auth.Principal
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurantOrderStatsQuery creates a stats query.
func NewRestaurantOrderStatsQuery(principal auth.Principal, restaurantID kernel.UUID) (RestaurantOrderStatsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return RestaurantOrderStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return RestaurantOrderStatsQuery{
		principal:    principal,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RestaurantOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantOrderStatsQueryIsNotConstructed)
}

// Principal returns the reading caller.
func (q RestaurantOrderStatsQuery) Principal() auth.Principal { return q.principal }

// RestaurantID returns the restaurant to aggregate.
func (q RestaurantOrderStatsQuery) RestaurantID() kernel.UUID { return q.restaurantID }
