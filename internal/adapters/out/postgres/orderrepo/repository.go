package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A unique-key violation on the order
// number maps to ErrOrderNumberTaken so the caller can regenerate and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrOrderNumberTaken
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The item snapshot is
// immutable after creation and is never rewritten here. Mutable columns are
// written as an explicit map: struct-based Updates would skip zero values, and
// redaction must be able to null out coordinates and blank out text fields.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"restaurant_name":         dto.RestaurantName,
		"status":                  dto.Status,
		"street":                  dto.Address.Street,
		"city":                    dto.Address.City,
		"state":                   dto.Address.State,
		"zip":                     dto.Address.Zip,
		"latitude":                dto.Address.Latitude,
		"longitude":               dto.Address.Longitude,
		"contact_phone":           dto.ContactPhone,
		"payment_status":          dto.PaymentStatus,
		"estimated_delivery_time": dto.EstimatedDeliveryTime,
		"special_instructions":    dto.SpecialInstructions,
		"delivery_id":             dto.DeliveryID,
		"delivery_person_id":      dto.DeliveryPersonID,
		"delivery_person_name":    dto.DeliveryPersonName,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its item snapshot.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves every order placed by the given user.
func (r *GormOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByRestaurant retrieves every order placed with the given restaurant.
func (r *GormOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetActiveByRestaurant retrieves the restaurant's orders still in pending or
// confirmed status.
func (r *GormOrderRepository) GetActiveByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "restaurant_id = ? AND status IN ?", restaurantID.Bytes(), []string{order.Pending.String(), order.Confirmed.String()}).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
