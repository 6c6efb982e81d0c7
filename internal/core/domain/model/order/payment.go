package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentStatus tracks the reconciliation state of an order's payment, owned by
// the external payment service and mirrored here through payment events.
type PaymentStatus int

const (
	// PaymentUnknown catches uninitialized values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment state of every order.
	PaymentPending

	// PaymentCompleted mirrors a payment.succeeded event.
	PaymentCompleted

	// PaymentFailed mirrors a payment.failed event.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// PaymentStatusFromString parses the wire form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the PaymentStatus is a known value.
func (p PaymentStatus) Validate() error {
	if p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire form, implementing fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
