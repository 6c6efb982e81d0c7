// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projection rows
// straight from the database.
package queries

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CartItemResponse is one line of a cart read model.
type CartItemResponse struct {
	CatalogItemID kernel.UUID
	Name          string
	Price         decimal.Decimal
	ImageURL      string
	Quantity      int
	Note          string
}

// CartResponse is the cart read model returned to the transport layer.
type CartResponse struct {
	UserID         kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	Items          []CartItemResponse
	ItemCount      int
	Total          decimal.Decimal
}

// AddressResponse is the delivery address of an order read model.
type AddressResponse struct {
	Street    string
	City      string
	State     string
	Zip       string
	Latitude  *float64
	Longitude *float64
}

// OrderItemResponse is one snapshot line of an order read model.
type OrderItemResponse struct {
	CatalogItemID kernel.UUID
	Name          string
	Price         decimal.Decimal
	ImageURL      string
	Quantity      int
	Note          string
}

// OrderResponse is the order read model returned to the transport layer.
type OrderResponse struct {
	ID                    kernel.UUID
	Number                string
	UserID                kernel.UUID
	RestaurantID          kernel.UUID
	RestaurantName        string
	Items                 []OrderItemResponse
	Status                string
	TotalAmount           decimal.Decimal
	DeliveryAddress       AddressResponse
	ContactPhone          string
	PaymentMethod         string
	PaymentStatus         string
	EstimatedDeliveryTime *time.Time
	SpecialInstructions   string
	DeliveryID            *kernel.UUID
	DeliveryPersonID      *kernel.UUID
	DeliveryPersonName    string
	CreatedAt             time.Time
}

// RestaurantOrderStatsResponse aggregates a restaurant's order counts and
// revenue. Revenue sums cover delivered orders only; active orders are those
// in a non-terminal status.
type RestaurantOrderStatsResponse struct {
	RestaurantID      kernel.UUID
	TotalOrders       int
	TodayOrders       int
	ActiveOrders      int
	StatusCounts      map[string]int
	TodayStatusCounts map[string]int
	TotalRevenue      decimal.Decimal
	TodayRevenue      decimal.Decimal
}
