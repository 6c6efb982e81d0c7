package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 99, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("contactPhone")

		assert.Equal(t, "contactPhone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: contactPhone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("contactPhone", cause)

		assert.Equal(t, "contactPhone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: contactPhone (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("order.cancel", "customers may only cancel their own orders")

	assert.Equal(t, "order.cancel", err.Action)
	assert.Equal(t,
		"operation is forbidden: order.cancel: customers may only cancel their own orders",
		err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestInvalidOrderStateError(t *testing.T) {
	err := errs.NewInvalidOrderStateError("Cannot cancel an order that has been delivered", "delivered")

	assert.Equal(t, "delivered", err.Status)
	assert.Equal(t, "Cannot cancel an order that has been delivered", err.Error())
	assert.Equal(t, errs.ErrInvalidOrderState, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrInvalidOrderState)
}

func TestEmptyCartError(t *testing.T) {
	err := errs.NewEmptyCartError("4a1cb9b4-0000-0000-0000-000000000001")

	assert.Equal(t, "cart is empty: user is: 4a1cb9b4-0000-0000-0000-000000000001", err.Error())
	assert.Equal(t, errs.ErrCartIsEmpty, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrCartIsEmpty)
}

func TestInfrastructureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := errs.NewInfrastructureError("message broker", cause)

		assert.Equal(t, "infrastructure failure: message broker (cause: dial tcp: connection refused)", err.Error())
		assert.Equal(t, errs.ErrInfrastructure, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewInfrastructureError("database", nil)
		assert.Equal(t, "infrastructure failure: database", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrInvalidOrderState)
		require.Error(t, errs.ErrCartIsEmpty)
		require.Error(t, errs.ErrInfrastructure)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "cart is empty", errs.ErrCartIsEmpty.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("street")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		infraErr := errs.NewInfrastructureError("broker", errors.New("down"))
		require.ErrorIs(t, infraErr, errs.ErrInfrastructure)
	})
}
