package cartrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Update saves an existing cart to the database. The lines are rewritten as a
// whole so removals and quantity changes land in one shape of statement.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&CartDTO{}).Where("user_id = ?", dto.UserID).Updates(map[string]any{
		"restaurant_id":   dto.RestaurantID,
		"restaurant_name": dto.RestaurantName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("cart_user_id = ?", dto.UserID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Get retrieves a cart by the owning user's ID.
func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the user's cart. Deleting an absent cart is not an error.
func (r *GormCartRepository) Delete(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("cart_user_id = ?", userID.Bytes()).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Delete(&CartDTO{}).Error
}

// DeleteByRestaurant removes every cart bound to the given restaurant.
func (r *GormCartRepository) DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("cart_user_id IN (?)", r.db.Model(&CartDTO{}).Select("user_id").Where("restaurant_id = ?", restaurantID.Bytes())).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID.Bytes()).Delete(&CartDTO{}).Error
}
