package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a cart projection straight from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the user's cart with lines and computed total. A missing
// cart row yields an empty response carrying only the user id.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{
		UserID: query.UserID(),
		Items:  make([]CartItemResponse, 0),
		Total:  decimal.Zero,
	}

	var restaurantID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT restaurant_id, restaurant_name
		FROM carts
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()
	err := row.Scan(&restaurantID, &resp.RestaurantName)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, nil
	}
	if err != nil {
		return CartResponse{}, err
	}

	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return CartResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			catalog_item_id,
			name,
			price,
			image_url,
			quantity,
			note
		FROM cart_items
		WHERE cart_user_id = ?
		ORDER BY catalog_item_id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var catalogItemID uuid.UUID
		var item CartItemResponse

		err = rows.Scan(
			&catalogItemID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
			&item.Quantity,
			&item.Note,
		)
		if err != nil {
			return CartResponse{}, err
		}

		if item.CatalogItemID, err = kernel.UUIDFromBytes(catalogItemID[:]); err != nil {
			return CartResponse{}, err
		}

		resp.Items = append(resp.Items, item)
		resp.ItemCount += item.Quantity
		resp.Total = resp.Total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return resp, nil
}
