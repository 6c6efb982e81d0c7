package commands

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderDeliveryInfoCommandIsNotConstructed = errors.New(
	"UpdateOrderDeliveryInfoCommand must be created via NewUpdateOrderDeliveryInfoCommand constructor",
)

// UpdateOrderDeliveryInfoCommand represents a request to attach delivery
// identifiers produced by the external delivery subsystem.
type UpdateOrderDeliveryInfoCommand struct { //nolint:recvcheck //using for validation
	principal          auth.Principal
	orderID            kernel.UUID
	deliveryID         kernel.UUID
	deliveryPersonID   *kernel.UUID
	deliveryPersonName string

	guard guard.ConstructorGuard
}

// NewUpdateOrderDeliveryInfoCommand creates a delivery linkage command.
// The delivery id is required; person id and name may arrive later.
func NewUpdateOrderDeliveryInfoCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	deliveryID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	deliveryPersonName string,
) (UpdateOrderDeliveryInfoCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDeliveryInfoCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := deliveryID.Validate(); err != nil {
		return UpdateOrderDeliveryInfoCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return UpdateOrderDeliveryInfoCommand{}, errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err)
		}
	}

	return UpdateOrderDeliveryInfoCommand{
		principal:          principal,
		orderID:            orderID,
		deliveryID:         deliveryID,
		deliveryPersonID:   deliveryPersonID,
		deliveryPersonName: deliveryPersonName,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDeliveryInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDeliveryInfoCommandIsNotConstructed)
}

// Principal returns the acting caller.
func (c UpdateOrderDeliveryInfoCommand) Principal() auth.Principal { return c.principal }

// OrderID returns the order to link.
func (c UpdateOrderDeliveryInfoCommand) OrderID() kernel.UUID { return c.orderID }

// DeliveryID returns the external delivery id.
func (c UpdateOrderDeliveryInfoCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// DeliveryPersonID returns the optional delivery person id.
func (c UpdateOrderDeliveryInfoCommand) DeliveryPersonID() *kernel.UUID { return c.deliveryPersonID }

// DeliveryPersonName returns the optional delivery person name.
func (c UpdateOrderDeliveryInfoCommand) DeliveryPersonName() string { return c.deliveryPersonName }
