package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// orderSelect is the column list shared by every order read query.
const orderSelect = `
	SELECT
		id,
		number,
		user_id,
		restaurant_id,
		restaurant_name,
		status,
		total_amount,
		street,
		city,
		state,
		zip,
		latitude,
		longitude,
		contact_phone,
		payment_method,
		payment_status,
		estimated_delivery_time,
		special_instructions,
		delivery_id,
		delivery_person_id,
		delivery_person_name,
		created_at
	FROM orders
`

// scanOrders reads order rows into responses, without items.
func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, userID, restaurantID uuid.UUID
		var latitude, longitude sql.NullFloat64
		var estimatedDeliveryTime sql.NullTime
		var deliveryID, deliveryPersonID uuid.NullUUID

		err := rows.Scan(
			&id,
			&resp.Number,
			&userID,
			&restaurantID,
			&resp.RestaurantName,
			&resp.Status,
			&resp.TotalAmount,
			&resp.DeliveryAddress.Street,
			&resp.DeliveryAddress.City,
			&resp.DeliveryAddress.State,
			&resp.DeliveryAddress.Zip,
			&latitude,
			&longitude,
			&resp.ContactPhone,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&estimatedDeliveryTime,
			&resp.SpecialInstructions,
			&deliveryID,
			&deliveryPersonID,
			&resp.DeliveryPersonName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if latitude.Valid && longitude.Valid {
			resp.DeliveryAddress.Latitude = &latitude.Float64
			resp.DeliveryAddress.Longitude = &longitude.Float64
		}
		if estimatedDeliveryTime.Valid {
			t := estimatedDeliveryTime.Time
			resp.EstimatedDeliveryTime = &t
		}
		if deliveryID.Valid {
			converted, convErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
			if convErr != nil {
				return nil, convErr
			}
			resp.DeliveryID = &converted
		}
		if deliveryPersonID.Valid {
			converted, convErr := kernel.UUIDFromBytes(deliveryPersonID.UUID[:])
			if convErr != nil {
				return nil, convErr
			}
			resp.DeliveryPersonID = &converted
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachOrderItems loads the snapshot lines of all given orders in one round
// trip and attaches them in place.
func attachOrderItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		id := o.ID.Bytes()
		ids = append(ids, id)
		index[id] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			catalog_item_id,
			name,
			price,
			image_url,
			quantity,
			note
		FROM order_items
		WHERE order_id = ANY(?)
		ORDER BY order_id, catalog_item_id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, catalogItemID uuid.UUID
		var item OrderItemResponse

		err = rows.Scan(
			&orderID,
			&catalogItemID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
			&item.Quantity,
			&item.Note,
		)
		if err != nil {
			return err
		}

		if item.CatalogItemID, err = kernel.UUIDFromBytes(catalogItemID[:]); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}
