// Package events consumes lifecycle events of the surrounding services and
// applies their order-side consequences: account removal redacts orders,
// restaurant removal and deactivation cancel or relabel them, payment events
// update the payment mirror.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// Topic channels consumed by the reactor.
const (
	AccountEventsChannel    = "account_events"
	RestaurantEventsChannel = "restaurant_events"
	PaymentEventsChannel    = "payment_events"
)

// Handler contracts of the system commands driven by external events.
type (
	// RemoveUserDataHandler redacts a deleted account's orders and cart.
	RemoveUserDataHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveUserDataCommand) error
	}

	// CancelRestaurantOrdersHandler cancels a restaurant's open orders.
	CancelRestaurantOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.CancelRestaurantOrdersCommand) error
	}

	// MarkRestaurantDeletedHandler relabels a deleted restaurant's orders and
	// drops its carts.
	MarkRestaurantDeletedHandler interface {
		Handle(ctx context.Context, cmd commands.MarkRestaurantDeletedCommand) error
	}

	// UpdatePaymentStatusHandler mirrors payment results onto orders.
	UpdatePaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePaymentStatusCommand) error
	}
)

// Config bounds the per-message retry loop.
type Config struct {
	// MaxAttempts is the number of handling attempts before a message is
	// dead-lettered.
	MaxAttempts int

	// RetryDelay is the initial backoff between attempts; it doubles per
	// attempt.
	RetryDelay time.Duration
}

// Reactor is the single consumer of external service events. Messages are
// handled serially in arrival order; a message that keeps failing is moved to
// the dead letter store and consumption continues.
type Reactor struct {
	bus                    ports.MessageBus
	removeUserData         RemoveUserDataHandler
	cancelRestaurantOrders CancelRestaurantOrdersHandler
	markRestaurantDeleted  MarkRestaurantDeletedHandler
	updatePaymentStatus    UpdatePaymentStatusHandler
	config                 Config
	logger                 *slog.Logger
	wg                     sync.WaitGroup
}

// NewReactor creates a reactor over the given bus and system command handlers.
func NewReactor(
	bus ports.MessageBus,
	removeUserData RemoveUserDataHandler,
	cancelRestaurantOrders CancelRestaurantOrdersHandler,
	markRestaurantDeleted MarkRestaurantDeletedHandler,
	updatePaymentStatus UpdatePaymentStatusHandler,
	config Config,
	logger *slog.Logger,
) *Reactor {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}

	return &Reactor{
		bus:                    bus,
		removeUserData:         removeUserData,
		cancelRestaurantOrders: cancelRestaurantOrders,
		markRestaurantDeleted:  markRestaurantDeleted,
		updatePaymentStatus:    updatePaymentStatus,
		config:                 config,
		logger:                 logger.With("component", "event_reactor"),
	}
}

// Start subscribes to the external topic channels and begins consuming.
// Consumption stops when ctx is cancelled or the bus closes.
func (r *Reactor) Start(ctx context.Context) error {
	messages, err := r.bus.Subscribe(ctx, AccountEventsChannel, RestaurantEventsChannel, PaymentEventsChannel)
	if err != nil {
		return fmt.Errorf("subscribe reactor channels: %w", err)
	}

	r.wg.Add(1)
	go r.run(ctx, messages)

	r.logger.InfoContext(ctx, "Event reactor started")
	return nil
}

// Wait blocks until the consumer goroutine has drained and exited.
func (r *Reactor) Wait() {
	r.wg.Wait()
}

func (r *Reactor) run(ctx context.Context, messages <-chan ports.InboundMessage) {
	defer r.wg.Done()

	for msg := range messages {
		r.process(ctx, msg)
	}

	r.logger.InfoContext(ctx, "Event reactor stopped")
}

// process handles one message with bounded retry. The final failure moves the
// message to the dead letter store so a poison message cannot stall the
// stream.
func (r *Reactor) process(ctx context.Context, msg ports.InboundMessage) {
	var err error
	delay := r.config.RetryDelay

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		err = r.dispatch(ctx, msg)
		if err == nil {
			return
		}

		r.logger.WarnContext(ctx, "Event handling failed",
			"channel", msg.Channel, "key", msg.Key, "attempt", attempt, "error", err)

		if attempt < r.config.MaxAttempts {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			delay *= 2
		}
	}

	if dlErr := r.bus.DeadLetter(ctx, msg, err); dlErr != nil {
		r.logger.ErrorContext(ctx, "Dead letter store failed",
			"channel", msg.Channel, "key", msg.Key, "error", dlErr)
	}
}

func (r *Reactor) dispatch(ctx context.Context, msg ports.InboundMessage) error {
	switch msg.Key {
	case "account.deleted":
		return r.handleAccountDeleted(ctx, msg.Payload)
	case "restaurant.status_changed":
		return r.handleRestaurantStatusChanged(ctx, msg.Payload)
	case "restaurant.deleted":
		return r.handleRestaurantDeleted(ctx, msg.Payload)
	case "payment.succeeded":
		return r.handlePaymentResult(ctx, msg.Payload, order.PaymentCompleted)
	case "payment.failed":
		return r.handlePaymentResult(ctx, msg.Payload, order.PaymentFailed)
	default:
		r.logger.WarnContext(ctx, "Ignoring unknown event key", "channel", msg.Channel, "key", msg.Key)
		return nil
	}
}

func (r *Reactor) handleAccountDeleted(ctx context.Context, payload []byte) error {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return fmt.Errorf("decode account.deleted: %w", err)
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveUserDataCommand(userID)
	if err != nil {
		return err
	}

	return r.removeUserData.Handle(ctx, cmd)
}

func (r *Reactor) handleRestaurantStatusChanged(ctx context.Context, payload []byte) error {
	var body struct {
		RestaurantID string `json:"restaurantId"`
		IsActive     bool   `json:"isActive"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return fmt.Errorf("decode restaurant.status_changed: %w", err)
	}

	// Reactivation needs no compensation on the order side.
	if body.IsActive {
		return nil
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelRestaurantOrdersCommand(restaurantID, "restaurant deactivated")
	if err != nil {
		return err
	}

	return r.cancelRestaurantOrders.Handle(ctx, cmd)
}

func (r *Reactor) handleRestaurantDeleted(ctx context.Context, payload []byte) error {
	var body struct {
		RestaurantID string `json:"restaurantId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return fmt.Errorf("decode restaurant.deleted: %w", err)
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return err
	}

	markCmd, err := commands.NewMarkRestaurantDeletedCommand(restaurantID)
	if err != nil {
		return err
	}

	return r.markRestaurantDeleted.Handle(ctx, markCmd)
}

func (r *Reactor) handlePaymentResult(ctx context.Context, payload []byte, status order.PaymentStatus) error {
	var body struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return fmt.Errorf("decode payment event: %w", err)
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	return r.updatePaymentStatus.Handle(ctx, cmd)
}
