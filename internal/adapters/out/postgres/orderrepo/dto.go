// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item snapshot lives in the order_items child table; the order number
// carries a unique index backing the collision retry at checkout.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number                string    `gorm:"uniqueIndex;not null"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID          uuid.UUID `gorm:"type:uuid;index"`
	RestaurantName        string
	Items                 []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status                string          `gorm:"index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Address               AddressDTO      `gorm:"embedded"`
	ContactPhone          string
	PaymentMethod         string
	PaymentStatus         string
	EstimatedDeliveryTime *time.Time
	SpecialInstructions   string
	DeliveryID            *uuid.UUID `gorm:"type:uuid"`
	DeliveryPersonID      *uuid.UUID `gorm:"type:uuid"`
	DeliveryPersonName    string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street    string
	City      string
	State     string
	Zip       string
	Latitude  *float64
	Longitude *float64
}

// OrderItemDTO represents one line of the immutable item snapshot.
type OrderItemDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL      string
	Quantity      int
	Note          string
}

// TableName specifies the database table name for order snapshot lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:       aggregate.ID().Bytes(),
			CatalogItemID: item.CatalogItemID().Bytes(),
			Name:          item.Name(),
			Price:         item.Price(),
			ImageURL:      item.ImageURL(),
			Quantity:      item.Quantity(),
			Note:          item.Note(),
		})
	}

	var deliveryID, deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}
	if id := aggregate.DeliveryPersonID(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number(),
		UserID:         aggregate.UserID().Bytes(),
		RestaurantID:   aggregate.RestaurantID().Bytes(),
		RestaurantName: aggregate.RestaurantName(),
		Items:          items,
		Status:         aggregate.Status().String(),
		TotalAmount:    aggregate.TotalAmount(),
		Address: AddressDTO{
			Street:    address.Street(),
			City:      address.City(),
			State:     address.State(),
			Zip:       address.Zip(),
			Latitude:  address.Latitude(),
			Longitude: address.Longitude(),
		},
		ContactPhone:          aggregate.ContactPhone(),
		PaymentMethod:         aggregate.PaymentMethod(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		DeliveryID:            deliveryID,
		DeliveryPersonID:      deliveryPersonID,
		DeliveryPersonName:    aggregate.DeliveryPersonName(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which keeps the
// stored total untouched.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		catalogItemID, itemErr := kernel.UUIDFromBytes(itemDTO.CatalogItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			catalogItemID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.ImageURL,
			itemDTO.Quantity,
			itemDTO.Note,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	address, err := restoreAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	var deliveryID, deliveryPersonID *kernel.UUID
	if dto.DeliveryID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if convErr != nil {
			return nil, convErr
		}
		deliveryID = &converted
	}
	if dto.DeliveryPersonID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if convErr != nil {
			return nil, convErr
		}
		deliveryPersonID = &converted
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		userID,
		restaurantID,
		dto.RestaurantName,
		items,
		status,
		dto.TotalAmount,
		address,
		dto.ContactPhone,
		dto.PaymentMethod,
		paymentStatus,
		dto.EstimatedDeliveryTime,
		dto.SpecialInstructions,
		deliveryID,
		deliveryPersonID,
		dto.DeliveryPersonName,
	)
}

func restoreAddress(dto AddressDTO) (order.Address, error) {
	if dto.Street == order.RedactedValue {
		return order.RedactedAddress(), nil
	}

	return order.NewAddress(dto.Street, dto.City, dto.State, dto.Zip, dto.Latitude, dto.Longitude)
}
