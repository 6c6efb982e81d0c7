package commands

import (
	"errors"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand represents a request to edit the delivery
// details of a pending order. Nil fields stay unchanged.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	principal           auth.Principal
	orderID             kernel.UUID
	deliveryAddress     *order.Address
	contactPhone        *string
	specialInstructions *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a details edit command. A replacement
// address must already be a constructed order.Address, which guarantees all
// four required sub-fields are present.
func NewUpdateOrderDetailsCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	deliveryAddress *order.Address,
	contactPhone *string,
	specialInstructions *string,
) (UpdateOrderDetailsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDetailsCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if deliveryAddress != nil {
		if err := deliveryAddress.Validate(); err != nil {
			return UpdateOrderDetailsCommand{}, errs.NewValueIsInvalidErrorWithCause("deliveryAddress", err)
		}
	}
	if contactPhone != nil && *contactPhone == "" {
		return UpdateOrderDetailsCommand{}, errs.NewValueIsRequiredError("contactPhone")
	}

	return UpdateOrderDetailsCommand{
		principal:           principal,
		orderID:             orderID,
		deliveryAddress:     deliveryAddress,
		contactPhone:        contactPhone,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// Principal returns the acting caller.
func (c UpdateOrderDetailsCommand) Principal() auth.Principal { return c.principal }

// OrderID returns the order to edit.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID { return c.orderID }

// DeliveryAddress returns the replacement address, nil to keep the current one.
func (c UpdateOrderDetailsCommand) DeliveryAddress() *order.Address { return c.deliveryAddress }

// ContactPhone returns the replacement phone, nil to keep the current one.
func (c UpdateOrderDetailsCommand) ContactPhone() *string { return c.contactPhone }

// SpecialInstructions returns the replacement instructions, nil to keep the
// current ones.
func (c UpdateOrderDetailsCommand) SpecialInstructions() *string { return c.specialInstructions }
