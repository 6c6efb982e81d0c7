package ports

import "context"

// InboundMessage is a message received from an external topic channel.
type InboundMessage struct {
	// Channel is the topic domain the message arrived on, e.g. "account_events".
	Channel string

	// Key is the dotted routing key, e.g. "account.deleted".
	Key string

	// Payload is the flat JSON body.
	Payload []byte
}

// MessageBus is the broker contract: topic publishing keyed by channel plus
// routing key, a durable subscription over whole channels, and dead-letter
// capture for messages whose handling permanently failed.
type MessageBus interface {
	// Publish sends a payload onto a channel under a routing key.
	Publish(ctx context.Context, channel, key string, payload []byte) error

	// Subscribe binds to every routing key of the given channels and delivers
	// messages on the returned channel until ctx is cancelled or Close is
	// called.
	Subscribe(ctx context.Context, channels ...string) (<-chan InboundMessage, error)

	// DeadLetter moves a message that exhausted its retries to durable
	// dead-letter storage for later inspection.
	DeadLetter(ctx context.Context, msg InboundMessage, cause error) error

	// Close releases broker resources and closes subscription channels.
	Close() error
}
