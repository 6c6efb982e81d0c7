// Package membus provides an in-process MessageBus used in tests and local
// runs without a broker. Delivery is in-order per subscriber; dead letters are
// kept in memory for inspection.
package membus

import (
	"context"
	"sync"

	"foodorder/internal/core/ports"
)

const subscriptionBuffer = 64

// DeadLetter is one captured message together with its terminal failure.
type DeadLetter struct {
	Msg   ports.InboundMessage
	Cause error
}

type subscription struct {
	channels map[string]struct{}
	out      chan ports.InboundMessage
}

// Bus is an in-memory MessageBus.
type Bus struct {
	mu     sync.Mutex
	subs   []*subscription
	dead   []DeadLetter
	closed bool
}

// NewBus creates an empty in-memory bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish delivers the payload to every subscriber of the channel. A
// subscriber whose buffer is full misses the message rather than blocking the
// publisher.
func (b *Bus) Publish(_ context.Context, channel, key string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := ports.InboundMessage{Channel: channel, Key: key, Payload: payload}
	for _, sub := range b.subs {
		if _, ok := sub.channels[channel]; !ok {
			continue
		}
		select {
		case sub.out <- msg:
		default:
		}
	}

	return nil
}

// Subscribe binds to the given channels until ctx is cancelled or the bus is
// closed.
func (b *Bus) Subscribe(ctx context.Context, channels ...string) (<-chan ports.InboundMessage, error) {
	sub := &subscription{
		channels: make(map[string]struct{}, len(channels)),
		out:      make(chan ports.InboundMessage, subscriptionBuffer),
	}
	for _, channel := range channels {
		sub.channels[channel] = struct{}{}
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.drop(sub)
	}()

	return sub.out, nil
}

// DeadLetter captures the message and its cause for later inspection.
func (b *Bus) DeadLetter(_ context.Context, msg ports.InboundMessage, cause error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.dead = append(b.dead, DeadLetter{Msg: msg, Cause: cause})
	return nil
}

// DeadLetters returns a copy of everything captured so far.
func (b *Bus) DeadLetters() []DeadLetter {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]DeadLetter, len(b.dead))
	copy(out, b.dead)
	return out
}

// Close ends every subscription.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, sub := range b.subs {
		close(sub.out)
	}
	b.subs = nil

	return nil
}

func (b *Bus) drop(target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub == target {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(sub.out)
			return
		}
	}
}
