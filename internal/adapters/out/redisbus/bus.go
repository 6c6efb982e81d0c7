// Package redisbus implements the message bus port on Redis streams.
//
// Each channel is one stream, read through a single consumer group shared by
// every instance of the service. Events published while no subscriber is
// running wait in the stream and are delivered on the next start. Entries are
// acknowledged once they are handed to the consumer; in-process failures are
// retried by the caller and, when exhausted, land in a per-channel dead-letter
// list where they can be inspected or replayed with LRANGE and RPOPLPUSH.
package redisbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	deadLetterPrefix = "dead_letter:"

	readBatchSize = 32
	readBlock     = 5 * time.Second
)

// Bus is a Redis-streams-backed MessageBus.
type Bus struct {
	client   *redis.Client
	group    string
	consumer string
	logger   *slog.Logger
}

// NewBus creates a message bus on top of an established Redis client. All
// instances sharing a group split the streams' entries between them; the
// consumer name is derived from the hostname so a restarted instance picks
// up its own unacknowledged entries.
func NewBus(client *redis.Client, group string, logger *slog.Logger) *Bus {
	consumer, err := os.Hostname()
	if err != nil || consumer == "" {
		consumer = "consumer"
	}

	return &Bus{
		client:   client,
		group:    group,
		consumer: consumer,
		logger:   logger.With("component", "redis_bus"),
	}
}

// Publish appends a payload to a channel's stream under a routing key.
func (b *Bus) Publish(ctx context.Context, channel, key string, payload []byte) error {
	err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: channel,
		Values: map[string]any{"key": key, "payload": payload},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish %s.%s: %w", channel, key, err)
	}
	return nil
}

// Subscribe binds the bus's consumer group to the given channels. The group is
// created at the start of each stream, so entries published before the first
// subscriber existed are still delivered. Messages arrive until ctx is
// cancelled, after which the returned channel is closed.
func (b *Bus) Subscribe(ctx context.Context, channels ...string) (<-chan ports.InboundMessage, error) {
	for _, channel := range channels {
		err := b.client.XGroupCreateMkStream(ctx, channel, b.group, "0").Err()
		if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
			return nil, fmt.Errorf("create group %s on %s: %w", b.group, channel, err)
		}
	}

	out := make(chan ports.InboundMessage)
	go b.consume(ctx, channels, out)
	return out, nil
}

func (b *Bus) consume(ctx context.Context, channels []string, out chan<- ports.InboundMessage) {
	defer close(out)

	// Drain this consumer's pending entries first, then switch to new ones
	// once the backlog comes back empty.
	cursor := "0"
	for {
		if ctx.Err() != nil {
			return
		}

		streams := make([]string, 0, 2*len(channels))
		streams = append(streams, channels...)
		for range channels {
			streams = append(streams, cursor)
		}

		results, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  streams,
			Count:    readBatchSize,
			Block:    readBlock,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}

			b.logger.ErrorContext(ctx, "Stream read failed", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		received := 0
		for _, stream := range results {
			for _, entry := range stream.Messages {
				received++

				msg, ok := decodeEntry(stream.Stream, entry)
				if !ok {
					b.logger.WarnContext(ctx, "Dropping malformed stream entry",
						"stream", stream.Stream, "id", entry.ID)
					b.ack(ctx, stream.Stream, entry.ID)
					continue
				}

				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
				b.ack(ctx, stream.Stream, entry.ID)
			}
		}

		if cursor == "0" && received == 0 {
			cursor = ">"
		}
	}
}

func (b *Bus) ack(ctx context.Context, stream, id string) {
	if err := b.client.XAck(ctx, stream, b.group, id).Err(); err != nil && ctx.Err() == nil {
		b.logger.WarnContext(ctx, "Failed to ack stream entry",
			"stream", stream, "id", id, "error", err)
	}
}

func decodeEntry(stream string, entry redis.XMessage) (ports.InboundMessage, bool) {
	key, ok := entry.Values["key"].(string)
	if !ok {
		return ports.InboundMessage{}, false
	}
	payload, ok := entry.Values["payload"].(string)
	if !ok {
		return ports.InboundMessage{}, false
	}
	return ports.InboundMessage{Channel: stream, Key: key, Payload: []byte(payload)}, true
}

// deadLetterRecord is the stored shape of a message that exhausted its retries.
type deadLetterRecord struct {
	Channel  string          `json:"channel"`
	Key      string          `json:"key"`
	Payload  json.RawMessage `json:"payload"`
	Cause    string          `json:"cause"`
	FailedAt time.Time       `json:"failedAt"`
}

// DeadLetter moves a message that exhausted its retries to a per-channel
// Redis list.
func (b *Bus) DeadLetter(ctx context.Context, msg ports.InboundMessage, cause error) error {
	record := deadLetterRecord{
		Channel:  msg.Channel,
		Key:      msg.Key,
		Payload:  msg.Payload,
		Cause:    cause.Error(),
		FailedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode dead letter %s.%s: %w", msg.Channel, msg.Key, err)
	}

	if err := b.client.LPush(ctx, deadLetterPrefix+msg.Channel, body).Err(); err != nil {
		return fmt.Errorf("store dead letter %s.%s: %w", msg.Channel, msg.Key, err)
	}

	b.logger.WarnContext(ctx, "Message moved to dead letter",
		"channel", msg.Channel, "key", msg.Key, "cause", cause)
	return nil
}

// Close releases the underlying Redis client. Consume loops stop through
// their subscription contexts.
func (b *Bus) Close() error {
	return b.client.Close()
}
