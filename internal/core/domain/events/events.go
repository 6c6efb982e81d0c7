package events

import (
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Routing keys for the outbound order_events channel.
const (
	CartUpdatedKey           = "cart.updated"
	CartClearedKey           = "cart.cleared"
	OrderCreatedKey          = "order.created"
	OrderStatusUpdatedKey    = "order.status_updated"
	OrderCancelledKey        = "order.cancelled"
	OrderDetailsUpdatedKey   = "order.details_updated"
	OrderDeliveryAssignedKey = "order.delivery_assigned"
	OrderPaymentUpdatedKey   = "order.payment_updated"
)

// Event is an outbound domain event: a dotted routing key plus a flat JSON
// payload. Events are written to the outbox in the same transaction as the
// state change they describe and relayed to the broker asynchronously.
type Event struct {
	ID         kernel.UUID
	Key        string
	Payload    json.RawMessage
	OccurredAt time.Time
}

func newEvent(key string, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         kernel.NewUUID(),
		Key:        key,
		Payload:    body,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// NewCartUpdated describes a cart mutation: add, quantity change, or removal.
func NewCartUpdated(c *cart.Cart) (Event, error) {
	return newEvent(CartUpdatedKey, struct {
		UserID       string          `json:"userId"`
		RestaurantID string          `json:"restaurantId"`
		ItemCount    int             `json:"itemCount"`
		Total        decimal.Decimal `json:"total"`
	}{
		UserID:       c.UserID().String(),
		RestaurantID: c.RestaurantID().String(),
		ItemCount:    c.ItemCount(),
		Total:        c.Total(),
	})
}

// NewCartCleared describes a cart being emptied in place.
func NewCartCleared(userID kernel.UUID) (Event, error) {
	return newEvent(CartClearedKey, struct {
		UserID string `json:"userId"`
	}{
		UserID: userID.String(),
	})
}

// NewOrderCreated describes a freshly committed order.
func NewOrderCreated(o *order.Order) (Event, error) {
	return newEvent(OrderCreatedKey, struct {
		OrderID      string          `json:"orderId"`
		OrderNumber  string          `json:"orderNumber"`
		UserID       string          `json:"userId"`
		RestaurantID string          `json:"restaurantId"`
		Status       string          `json:"status"`
		TotalAmount  decimal.Decimal `json:"totalAmount"`
	}{
		OrderID:      o.ID().String(),
		OrderNumber:  o.Number(),
		UserID:       o.UserID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		TotalAmount:  o.TotalAmount(),
	})
}

// NewOrderStatusUpdated describes a fulfillment status transition.
func NewOrderStatusUpdated(o *order.Order, previous order.Status) (Event, error) {
	var eta *time.Time
	if t := o.EstimatedDeliveryTime(); t != nil {
		utc := t.UTC()
		eta = &utc
	}
	return newEvent(OrderStatusUpdatedKey, struct {
		OrderID               string     `json:"orderId"`
		OrderNumber           string     `json:"orderNumber"`
		UserID                string     `json:"userId"`
		RestaurantID          string     `json:"restaurantId"`
		Status                string     `json:"status"`
		PreviousStatus        string     `json:"previousStatus"`
		EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	}{
		OrderID:               o.ID().String(),
		OrderNumber:           o.Number(),
		UserID:                o.UserID().String(),
		RestaurantID:          o.RestaurantID().String(),
		Status:                o.Status().String(),
		PreviousStatus:        previous.String(),
		EstimatedDeliveryTime: eta,
	})
}

// NewOrderCancelled describes a cancellation, naming the acting role.
func NewOrderCancelled(o *order.Order, reason, cancelledBy string) (Event, error) {
	return newEvent(OrderCancelledKey, struct {
		OrderID      string `json:"orderId"`
		OrderNumber  string `json:"orderNumber"`
		UserID       string `json:"userId"`
		RestaurantID string `json:"restaurantId"`
		Reason       string `json:"reason"`
		CancelledBy  string `json:"cancelledBy"`
	}{
		OrderID:      o.ID().String(),
		OrderNumber:  o.Number(),
		UserID:       o.UserID().String(),
		RestaurantID: o.RestaurantID().String(),
		Reason:       reason,
		CancelledBy:  cancelledBy,
	})
}

// NewOrderDetailsUpdated describes an edit to a pending order's delivery
// details.
func NewOrderDetailsUpdated(o *order.Order) (Event, error) {
	return newEvent(OrderDetailsUpdatedKey, struct {
		OrderID      string `json:"orderId"`
		OrderNumber  string `json:"orderNumber"`
		UserID       string `json:"userId"`
		RestaurantID string `json:"restaurantId"`
	}{
		OrderID:      o.ID().String(),
		OrderNumber:  o.Number(),
		UserID:       o.UserID().String(),
		RestaurantID: o.RestaurantID().String(),
	})
}

// NewOrderDeliveryAssigned describes delivery identifiers being attached by
// the external delivery subsystem.
func NewOrderDeliveryAssigned(o *order.Order) (Event, error) {
	var deliveryID, personID string
	if id := o.DeliveryID(); id != nil {
		deliveryID = id.String()
	}
	if id := o.DeliveryPersonID(); id != nil {
		personID = id.String()
	}
	return newEvent(OrderDeliveryAssignedKey, struct {
		OrderID            string `json:"orderId"`
		OrderNumber        string `json:"orderNumber"`
		UserID             string `json:"userId"`
		DeliveryID         string `json:"deliveryId"`
		DeliveryPersonID   string `json:"deliveryPersonId,omitempty"`
		DeliveryPersonName string `json:"deliveryPersonName,omitempty"`
	}{
		OrderID:            o.ID().String(),
		OrderNumber:        o.Number(),
		UserID:             o.UserID().String(),
		DeliveryID:         deliveryID,
		DeliveryPersonID:   personID,
		DeliveryPersonName: o.DeliveryPersonName(),
	})
}

// NewOrderPaymentUpdated mirrors a payment service outcome onto the channel.
func NewOrderPaymentUpdated(o *order.Order) (Event, error) {
	return newEvent(OrderPaymentUpdatedKey, struct {
		OrderID       string `json:"orderId"`
		OrderNumber   string `json:"orderNumber"`
		UserID        string `json:"userId"`
		PaymentStatus string `json:"paymentStatus"`
	}{
		OrderID:       o.ID().String(),
		OrderNumber:   o.Number(),
		UserID:        o.UserID().String(),
		PaymentStatus: o.PaymentStatus().String(),
	})
}
