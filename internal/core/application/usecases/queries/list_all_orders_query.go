package queries

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// defaultPageSize bounds unpaged listings.
const defaultPageSize = 50

// ListAllOrdersQuery retrieves a page of all orders across restaurants,
// newest first. System admin only.
type ListAllOrdersQuery struct {
	principal auth.Principal
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery creates a paged global order listing query.
// A non-positive limit falls back to the default page size.
func NewListAllOrdersQuery(principal auth.Principal, limit, offset int) (ListAllOrdersQuery, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		return ListAllOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return ListAllOrdersQuery{
		principal: principal,
		limit:     limit,
		offset:    offset,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

// Principal returns the reading caller.
func (q ListAllOrdersQuery) Principal() auth.Principal { return q.principal }

// Limit returns the page size.
func (q ListAllOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q ListAllOrdersQuery) Offset() int { return q.offset }
