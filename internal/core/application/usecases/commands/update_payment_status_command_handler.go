package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
)

// UpdatePaymentStatusCommandHandler mirrors payment outcomes onto orders and
// records order.payment_updated.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment
// mirroring.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the order's payment status. A missing order surfaces as
// ObjectNotFoundError, which the reactor treats as retryable because the
// payment notification can arrive before the order's transaction commits.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := events.NewOrderPaymentUpdated(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
