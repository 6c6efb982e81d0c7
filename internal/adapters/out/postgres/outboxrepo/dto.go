// Package outboxrepo persists domain events for the transactional outbox.
// Event rows are written inside the same transaction as the aggregate change
// they describe and relayed to the message bus by a background job.
package outboxrepo

import (
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting outbox events.
// Seq is a bigserial preserving insertion order for the relay.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	Key        string    `gorm:"not null"`
	Payload    []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time
	Published  bool `gorm:"index;default:false"`
}

// TableName specifies the database table name for outbox events.
func (EventDTO) TableName() string {
	return "outbox_events"
}

func fromDomain(event events.Event) EventDTO {
	return EventDTO{
		ID:         event.ID.Bytes(),
		Key:        event.Key,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}
}

func toDomain(dto EventDTO) (events.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return events.Event{}, err
	}

	return events.Event{
		ID:         id,
		Key:        dto.Key,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}, nil
}
