package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to commit the caller's cart into an
// order. The cart itself is loaded inside the handler; the command carries
// only the checkout details.
//
// Example:
//
//	address, _ := order.NewAddress("123 Main St", "Springfield", "IL", "62704", nil, nil)
//	cmd, err := NewCreateOrderCommand(userID, address, "+15551234567", "card", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("order %s placed", created.Number())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID              kernel.UUID
	deliveryAddress     order.Address
	contactPhone        string
	paymentMethod       string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. The address must be a
// constructed order.Address and the contact phone must be present; payment
// method and special instructions are optional.
func NewCreateOrderCommand(
	userID kernel.UUID,
	deliveryAddress order.Address,
	contactPhone string,
	paymentMethod string,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentMethod:       paymentMethod,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := deliveryAddress.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	if contactPhone == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("contactPhone")
	}

	cmd.userID = userID
	cmd.deliveryAddress = deliveryAddress
	cmd.contactPhone = contactPhone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering customer.
func (c CreateOrderCommand) UserID() kernel.UUID { return c.userID }

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() order.Address { return c.deliveryAddress }

// ContactPhone returns the delivery contact phone.
func (c CreateOrderCommand) ContactPhone() string { return c.contactPhone }

// PaymentMethod returns the chosen payment method, empty when unset.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// SpecialInstructions returns the optional delivery instructions.
func (c CreateOrderCommand) SpecialInstructions() string { return c.specialInstructions }
