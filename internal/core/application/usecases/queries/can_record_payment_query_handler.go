package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

type CanRecordPaymentQueryHandler struct {
	uowFactory SnapshotUoWFactory
	gate       services.FulfillmentGate
}

func NewCanRecordPaymentQueryHandler(uowFactory SnapshotUoWFactory, gate services.FulfillmentGate) CanRecordPaymentQueryHandler {
	return CanRecordPaymentQueryHandler{uowFactory: uowFactory, gate: gate}
}

// Handle returns true when a payment may be recorded. Every other outcome is an
// error: services.ErrPaymentAlreadyExists when the order is paid, a precondition
// error when it is not payable yet, errs.ErrObjectNotFound when it does not exist.
func (h CanRecordPaymentQueryHandler) Handle(ctx context.Context, query CanRecordPaymentQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	err := inSnapshot(ctx, h.uowFactory, func(uow SnapshotUoW) error {
		o, err := uow.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}

		exists, err := uow.PaymentRepository().ExistsByOrderID(ctx, o.ID())
		if err != nil {
			return err
		}

		return h.gate.CanRecordPayment(o, exists)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
