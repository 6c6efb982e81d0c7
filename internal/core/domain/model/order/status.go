package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The intended forward sequence is:
//
//	pending → confirmed → preparing → ready → out_for_delivery → delivered
//
// with cancelled reachable from any non-terminal state. Stage skipping (for
// example pending → preparing) is permitted: the sequence is a caller-side
// convention, and the server checks only membership in the vocabulary plus
// that no transition leaves a terminal state. delivered and cancelled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Confirmed means the restaurant has accepted the order.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is waiting for pickup by the delivery service.
	Ready

	// OutForDelivery means a delivery person is carrying the order.
	OutForDelivery

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the unsuccessful terminal status, reachable from any
	// non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// AllStatuses returns every valid status. Used by the statistics aggregator to
// produce a complete per-status breakdown, zeroes included.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered, Cancelled}
}

// StatusFromString parses the wire form of a status ("pending", "confirmed", ...).
// Returns an error for anything outside the seven known values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status is one of the seven known values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, implementing fmt.Stringer.
// Safe to call on any value; invalid values read "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ChangeTo transitions to newStatus.
//
// Rules:
//   - newStatus must be in the status vocabulary
//   - a terminal status cannot be left
//
// Edge legality within the non-terminal sequence is deliberately not enforced;
// the transition order is owned by the caller.
func (s Status) ChangeTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidOrderStateError(
			fmt.Sprintf("Cannot change status of an order that is already %s", s),
			s.String(),
		)
	}
	return newStatus, nil
}

// Cancel transitions to Cancelled. Permitted from every status except
// Delivered; cancelling an already cancelled order is a no-op transition and
// succeeds.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewInvalidOrderStateError(
			"Cannot cancel an order that has been delivered",
			s.String(),
		)
	}
	return Cancelled, nil
}
