package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand mirrors a payment service outcome onto an
// order. Issued by the event reactor on payment.succeeded and
// payment.failed.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a payment mirroring command.
func NewUpdatePaymentStatusCommand(orderID kernel.UUID, paymentStatus order.PaymentStatus) (UpdatePaymentStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdatePaymentStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := paymentStatus.Validate(); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return UpdatePaymentStatusCommand{
		orderID:       orderID,
		paymentStatus: paymentStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the paid (or failed) order.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID { return c.orderID }

// PaymentStatus returns the status reported by the payment service.
func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus { return c.paymentStatus }
