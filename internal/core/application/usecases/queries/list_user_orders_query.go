package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves all orders of one user, newest first.
type ListUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a query for a user's order history.
func NewListUserOrdersQuery(userID kernel.UUID) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return ListUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// UserID returns the history owner.
func (q ListUserOrdersQuery) UserID() kernel.UUID { return q.userID }
