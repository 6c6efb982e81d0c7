package commands

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Customers may
// cancel only their own orders; staff may cancel any.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The reason is
// optional; an empty reason is recorded as "no reason given".
func NewCancelOrderCommand(principal auth.Principal, orderID kernel.UUID, reason string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return CancelOrderCommand{
		principal: principal,
		orderID:   orderID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Principal returns the acting caller.
func (c CancelOrderCommand) Principal() auth.Principal { return c.principal }

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the free-text cancellation reason, possibly empty.
func (c CancelOrderCommand) Reason() string { return c.reason }
