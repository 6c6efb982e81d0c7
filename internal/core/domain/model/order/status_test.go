package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Pending:        "pending",
		order.Confirmed:      "confirmed",
		order.Preparing:      "preparing",
		order.Ready:          "ready",
		order.OutForDelivery: "out_for_delivery",
		order.Delivered:      "delivered",
		order.Cancelled:      "cancelled",
		order.Unknown:        "unknown",
		order.Status(42):     "unknown",
	}

	for status, expected := range tests {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all seven statuses are valid", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate())
		}
		assert.Len(t, order.AllStatuses(), 7)
	})

	t.Run("unknown and out-of-range are invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects values outside the vocabulary", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "shipped", "PENDING"} {
			_, err := order.StatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("allows forward movement", func(t *testing.T) {
		next, err := order.Pending.ChangeTo(order.Confirmed)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("allows stage skipping", func(t *testing.T) {
		next, err := order.Pending.ChangeTo(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("rejects values outside the vocabulary", func(t *testing.T) {
		_, err := order.Pending.ChangeTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects leaving a terminal status", func(t *testing.T) {
		_, err := order.Delivered.ChangeTo(order.Preparing)
		require.ErrorIs(t, err, errs.ErrInvalidOrderState)

		_, err = order.Cancelled.ChangeTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrInvalidOrderState)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancels from any non-delivered status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery, order.Cancelled} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("rejects cancelling a delivered order", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidOrderState)
		assert.Equal(t, "Cannot cancel an order that has been delivered", err.Error())
	})
}
