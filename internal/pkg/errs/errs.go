package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Every concrete error type in this package unwraps to one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrForbidden         = errors.New("operation is forbidden")
	ErrInvalidOrderState = errors.New("order state does not permit this operation")
	ErrCartIsEmpty       = errors.New("cart is empty")
	ErrInfrastructure    = errors.New("infrastructure failure")

	// ErrOrderNumberTaken signals a unique-index collision on the order
	// number. The creating command retries once with a fresh number.
	ErrOrderNumberTaken = errors.New("order number is already taken")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or otherwise unacceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenError indicates that the acting principal is not permitted to perform
// the operation, either because of its role or because it does not own the resource.
type ForbiddenError struct {
	Action string
	Reason string
}

// NewForbiddenError creates a ForbiddenError for the given action and reason.
func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Action, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidOrderStateError indicates that an order's current status does not allow
// the attempted transition or edit.
type InvalidOrderStateError struct {
	Message string
	Status  string
}

// NewInvalidOrderStateError creates an InvalidOrderStateError with a caller-facing message.
func NewInvalidOrderStateError(message, status string) *InvalidOrderStateError {
	return &InvalidOrderStateError{Message: message, Status: status}
}

func (e *InvalidOrderStateError) Error() string {
	return sanitize(e.Message)
}

func (e *InvalidOrderStateError) Unwrap() error {
	return ErrInvalidOrderState
}

// EmptyCartError indicates that an order was requested from a cart with no items.
type EmptyCartError struct {
	UserID string
}

// NewEmptyCartError creates an EmptyCartError for the given cart owner.
func NewEmptyCartError(userID string) *EmptyCartError {
	return &EmptyCartError{UserID: userID}
}

func (e *EmptyCartError) Error() string {
	return sanitize(fmt.Sprintf("%s: user is: %s", ErrCartIsEmpty, e.UserID))
}

func (e *EmptyCartError) Unwrap() error {
	return ErrCartIsEmpty
}

// InfrastructureError indicates that a store or broker dependency is unavailable.
// The underlying cause is preserved for logs but is not shown to callers outside
// debug mode.
type InfrastructureError struct {
	Component string
	Cause     error
}

// NewInfrastructureError creates an InfrastructureError for the given component.
func NewInfrastructureError(component string, cause error) *InfrastructureError {
	return &InfrastructureError{Component: component, Cause: cause}
}

func (e *InfrastructureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInfrastructure, e.Component, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInfrastructure, e.Component))
}

func (e *InfrastructureError) Unwrap() error {
	return ErrInfrastructure
}
