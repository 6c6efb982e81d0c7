package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderEventsChannel is the topic domain this service publishes on.
const OrderEventsChannel = "order_events"

// DefaultRelaySchedule drains the outbox every second.
const DefaultRelaySchedule = "* * * * * *"

// OutboxRelayJob drains the transactional outbox on a schedule. Each run reads
// a batch of unpublished event rows in insertion order, publishes them to the
// bus, and marks them published. A publish failure stops the batch so order is
// preserved; the row stays unpublished and the next run retries it.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	bus       ports.MessageBus
	cron      *cron.Cron
	schedule  string
	batchSize int
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay over the given outbox store and bus.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	bus ports.MessageBus,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	if batchSize < 1 {
		batchSize = 100
	}

	return &OutboxRelayJob{
		outbox:    outbox,
		bus:       bus,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		batchSize: batchSize,
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay on its schedule.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the relay.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// Relay drains one batch of unpublished events to the bus.
func (j *OutboxRelayJob) Relay(ctx context.Context) error {
	pending, err := j.outbox.GetUnpublished(ctx, j.batchSize)
	if err != nil {
		return err
	}

	for _, event := range pending {
		if err := j.bus.Publish(ctx, OrderEventsChannel, event.Key, []byte(event.Payload)); err != nil {
			// Keep insertion order: retry from this row on the next run.
			return err
		}

		if err := j.outbox.MarkPublished(ctx, event.ID); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Relayed event", "key", event.Key, "id", event.ID.String())
	}

	return nil
}
