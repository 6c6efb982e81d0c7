// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart aggregate, handling the
// conversion between domain entities and database representations.
package cartrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
// A cart is keyed by the user who owns it; the lines live in the cart_items
// child table and are rewritten as a whole on every update.
type CartDTO struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;index"`
	RestaurantName string
	Items          []CartItemDTO `gorm:"foreignKey:CartUserID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one line of a cart.
type CartItemDTO struct {
	CartUserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL      string
	Quantity      int
	Note          string
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartUserID:    aggregate.UserID().Bytes(),
			CatalogItemID: item.CatalogItemID().Bytes(),
			Name:          item.Name(),
			Price:         item.Price(),
			ImageURL:      item.ImageURL(),
			Quantity:      item.Quantity(),
			Note:          item.Note(),
		})
	}

	return CartDTO{
		UserID:         aggregate.UserID().Bytes(),
		RestaurantID:   aggregate.RestaurantID().Bytes(),
		RestaurantName: aggregate.RestaurantName(),
		Items:          items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		catalogItemID, itemErr := kernel.UUIDFromBytes(itemDTO.CatalogItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := cart.NewItem(
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

	return cart.RestoreCart(userID, restaurantID, dto.RestaurantName, items)
}
