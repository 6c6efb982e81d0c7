// Package events defines the outbound domain events of the order service.
//
// Every mutating cart or order operation produces exactly one event here. The
// event is stored in the transactional outbox together with the state change
// and published to the order_events channel by the relay job, so a committed
// write is never observed without its event.
package events
