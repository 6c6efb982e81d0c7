// Package auth holds the caller identity handed in by the external
// authentication layer and the authorization policy applied by the use cases.
//
// Authentication itself is external: requests arrive with a pre-decoded
// principal. Every permission decision lives here, in one place, instead of
// being re-derived inside individual handlers.
package auth

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Role is the caller's role as assigned by the external auth layer.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantAdmin Role = "restaurant_admin"
	RoleSystemAdmin     Role = "system_admin"
	RoleDeliveryPerson  Role = "delivery_person"
)

// Validate checks membership in the fixed role vocabulary.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurantAdmin, RoleSystemAdmin, RoleDeliveryPerson:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// Principal is the authenticated caller: identity, role, and for restaurant
// staff the restaurant they administer.
type Principal struct {
	ID           kernel.UUID
	Email        string
	Role         Role
	RestaurantID *kernel.UUID
}

// NewPrincipal builds a validated principal from pre-decoded identity fields.
func NewPrincipal(id kernel.UUID, email string, role Role, restaurantID *kernel.UUID) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, errs.NewValueIsRequiredErrorWithCause("principal id", err)
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return Principal{}, err
		}
	}
	return Principal{ID: id, Email: email, Role: role, RestaurantID: restaurantID}, nil
}

// IsStaff reports whether the principal is anything other than a plain
// customer.
func (p Principal) IsStaff() bool {
	return p.Role != RoleCustomer
}

// Policy is the single authorization gate for all use cases.
type Policy struct{}

// NewPolicy creates the authorization policy.
func NewPolicy() Policy {
	return Policy{}
}

// CanManageCart permits a principal to read or mutate a cart only when it is
// their own.
func (Policy) CanManageCart(p Principal, userID kernel.UUID) error {
	if !p.ID.IsEqual(userID) {
		return errs.NewForbiddenError("manage cart", "carts belong to their owner")
	}
	return nil
}

// CanViewOrder permits staff to view any order and customers only their own.
func (Policy) CanViewOrder(p Principal, ownerID kernel.UUID) error {
	if p.IsStaff() || p.ID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewForbiddenError("view order", "customers may only view their own orders")
}

// CanCancelOrder permits staff to cancel any order and customers only their
// own.
func (Policy) CanCancelOrder(p Principal, ownerID kernel.UUID) error {
	if p.IsStaff() || p.ID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewForbiddenError("cancel order", "customers may only cancel their own orders")
}

// CanUpdateOrderDetails permits staff to edit any order's details and
// customers only their own.
func (Policy) CanUpdateOrderDetails(p Principal, ownerID kernel.UUID) error {
	if p.IsStaff() || p.ID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewForbiddenError("update order details", "customers may only edit their own orders")
}

// CanUpdateOrderStatus rejects plain customers; status moves are made by
// restaurant or system roles.
func (Policy) CanUpdateOrderStatus(p Principal) error {
	if !p.IsStaff() {
		return errs.NewForbiddenError("update order status", "customers may not change order status")
	}
	return nil
}

// CanUpdateDeliveryInfo permits restaurant, system, and delivery roles to
// attach delivery identifiers.
func (Policy) CanUpdateDeliveryInfo(p Principal) error {
	if !p.IsStaff() {
		return errs.NewForbiddenError("update delivery info", "customers may not attach delivery identifiers")
	}
	return nil
}

// CanViewRestaurantOrders permits the system admin for any restaurant and a
// restaurant admin only for their own.
func (Policy) CanViewRestaurantOrders(p Principal, restaurantID kernel.UUID) error {
	if p.Role == RoleSystemAdmin {
		return nil
	}
	if p.Role == RoleRestaurantAdmin && p.RestaurantID != nil && p.RestaurantID.IsEqual(restaurantID) {
		return nil
	}
	return errs.NewForbiddenError("view restaurant orders", "requires system admin or the restaurant's own admin")
}

// CanListAllOrders permits only the system admin.
func (Policy) CanListAllOrders(p Principal) error {
	if p.Role != RoleSystemAdmin {
		return errs.NewForbiddenError("list all orders", "requires system admin")
	}
	return nil
}
