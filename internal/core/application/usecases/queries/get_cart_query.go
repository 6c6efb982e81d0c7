package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart read model. A user who never added an
// item gets an empty, unbound cart response rather than an error.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart read query for the given user.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner.
func (q GetCartQuery) UserID() kernel.UUID { return q.userID }
