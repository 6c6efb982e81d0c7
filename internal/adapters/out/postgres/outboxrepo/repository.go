package outboxrepo

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores an event row, unpublished.
func (r *GormOutboxRepository) Add(ctx context.Context, event events.Event) error {
	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished retrieves up to limit unpublished events in insertion order.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]events.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published = ?", false).
		Order("seq ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]events.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, event)
	}

	return result, nil
}

// MarkPublished flags an event row as delivered to the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
