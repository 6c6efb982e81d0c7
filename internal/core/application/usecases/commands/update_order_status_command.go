package commands

import (
	"errors"
	"time"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a staff request to move an order to a
// new fulfillment status, optionally recording an estimated delivery time.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal             auth.Principal
	orderID               kernel.UUID
	newStatus             order.Status
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
// The status must belong to the fixed vocabulary.
func NewUpdateOrderStatusCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	newStatus order.Status,
	estimatedDeliveryTime *time.Time,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		principal:             principal,
		orderID:               orderID,
		newStatus:             newStatus,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Principal returns the acting caller.
func (c UpdateOrderStatusCommand) Principal() auth.Principal { return c.principal }

// OrderID returns the order to move.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// EstimatedDeliveryTime returns the optional delivery estimate.
func (c UpdateOrderStatusCommand) EstimatedDeliveryTime() *time.Time { return c.estimatedDeliveryTime }
