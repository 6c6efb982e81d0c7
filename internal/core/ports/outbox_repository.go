package ports

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
)

// OutboxRepository defines the persistence contract for the transactional
// outbox. Events are added inside the same unit of work as the state change
// they describe; the relay job reads and marks them outside any unit of work.
type OutboxRepository interface {
	// Add stores an event row, unpublished.
	Add(ctx context.Context, event events.Event) error

	// GetUnpublished retrieves up to limit unpublished events in insertion
	// order.
	GetUnpublished(ctx context.Context, limit int) ([]events.Event, error)

	// MarkPublished flags an event row as delivered to the broker.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
