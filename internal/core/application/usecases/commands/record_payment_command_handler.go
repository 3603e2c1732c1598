package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// RecordPaymentCommandHandler stores at most one payment per order.
//
// The eligibility check and the insert run in one transaction. When a concurrent
// request inserts first, the unique order index rejects the second insert with
// errs.ErrConcurrentModification and the retry reports services.ErrPaymentAlreadyExists.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gate       services.FulfillmentGate
	clock      ports.Clock
	retrier    Retrier
}

func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gate services.FulfillmentGate,
	clock ports.Clock,
	retrier Retrier,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clock,
		retrier:    retrier,
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var recorded *payment.Payment
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		recorded, err = h.apply(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	return recorded, nil
}

func (h RecordPaymentCommandHandler) apply(ctx context.Context, cmd RecordPaymentCommand) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	payments := uow.PaymentRepository()
	exists, err := payments.ExistsByOrderID(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	if err = h.gate.CanRecordPayment(o, exists); err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), cmd.Amount(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = payments.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
