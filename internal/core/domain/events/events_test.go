package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, e events.Event) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(e.Payload, &payload))
	return payload
}

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), "Luigi's")
	require.NoError(t, err)
	item, err := cart.NewItem(kernel.NewUUID(), "Margherita Pizza", decimal.NewFromFloat(10.00), "", 2, "")
	require.NoError(t, err)
	require.NoError(t, c.AddItem(c.RestaurantID(), "Luigi's", item))
	return c
}

func testEventOrder(t *testing.T) *order.Order {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704", nil, nil)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita Pizza", decimal.NewFromFloat(10.00), "", 2, "")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20260901-AB12CD34",
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Luigi's",
		[]order.Item{item},
		address,
		"+15551234567",
		"card",
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewCartUpdated(t *testing.T) {
	c := testCart(t)

	e, err := events.NewCartUpdated(c)
	require.NoError(t, err)

	assert.Equal(t, events.CartUpdatedKey, e.Key)
	require.NoError(t, e.ID.Validate())
	assert.False(t, e.OccurredAt.IsZero())

	payload := decodePayload(t, e)
	assert.Equal(t, c.UserID().String(), payload["userId"])
	assert.Equal(t, c.RestaurantID().String(), payload["restaurantId"])
	assert.Equal(t, float64(1), payload["itemCount"])
	assert.Equal(t, "20", payload["total"])
}

func TestNewCartCleared(t *testing.T) {
	userID := kernel.NewUUID()

	e, err := events.NewCartCleared(userID)
	require.NoError(t, err)

	assert.Equal(t, events.CartClearedKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, userID.String(), payload["userId"])
}

func TestNewOrderCreated(t *testing.T) {
	o := testEventOrder(t)

	e, err := events.NewOrderCreated(o)
	require.NoError(t, err)

	assert.Equal(t, events.OrderCreatedKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, o.ID().String(), payload["orderId"])
	assert.Equal(t, "ORD-20260901-AB12CD34", payload["orderNumber"])
	assert.Equal(t, "pending", payload["status"])
	assert.Equal(t, "20", payload["totalAmount"])
}

func TestNewOrderStatusUpdated(t *testing.T) {
	o := testEventOrder(t)
	eta := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	require.NoError(t, o.ChangeStatus(order.Preparing, &eta))

	e, err := events.NewOrderStatusUpdated(o, order.Pending)
	require.NoError(t, err)

	assert.Equal(t, events.OrderStatusUpdatedKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, "preparing", payload["status"])
	assert.Equal(t, "pending", payload["previousStatus"])
	assert.Equal(t, "2026-09-01T13:00:00Z", payload["estimatedDeliveryTime"])
}

func TestNewOrderCancelled(t *testing.T) {
	o := testEventOrder(t)
	require.NoError(t, o.Cancel("restaurant deactivated", "system", time.Now()))

	e, err := events.NewOrderCancelled(o, "restaurant deactivated", "system")
	require.NoError(t, err)

	assert.Equal(t, events.OrderCancelledKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, "restaurant deactivated", payload["reason"])
	assert.Equal(t, "system", payload["cancelledBy"])
}

func TestNewOrderDeliveryAssigned(t *testing.T) {
	o := testEventOrder(t)
	deliveryID := kernel.NewUUID()
	require.NoError(t, o.AssignDelivery(deliveryID, nil, ""))

	e, err := events.NewOrderDeliveryAssigned(o)
	require.NoError(t, err)

	assert.Equal(t, events.OrderDeliveryAssignedKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, deliveryID.String(), payload["deliveryId"])
	_, hasPerson := payload["deliveryPersonId"]
	assert.False(t, hasPerson)
}

func TestNewOrderPaymentUpdated(t *testing.T) {
	o := testEventOrder(t)
	require.NoError(t, o.SetPaymentStatus(order.PaymentCompleted))

	e, err := events.NewOrderPaymentUpdated(o)
	require.NoError(t, err)

	assert.Equal(t, events.OrderPaymentUpdatedKey, e.Key)
	payload := decodePayload(t, e)
	assert.Equal(t, "completed", payload["paymentStatus"])
}
