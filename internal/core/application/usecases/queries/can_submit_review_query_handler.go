package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

type CanSubmitReviewQueryHandler struct {
	uowFactory SnapshotUoWFactory
	gate       services.FulfillmentGate
	clock      ports.Clock
}

func NewCanSubmitReviewQueryHandler(
	uowFactory SnapshotUoWFactory,
	gate services.FulfillmentGate,
	clock ports.Clock,
) CanSubmitReviewQueryHandler {
	return CanSubmitReviewQueryHandler{uowFactory: uowFactory, gate: gate, clock: clock}
}

// Handle returns true when the review would be accepted now. A refusal is reported
// as services.ErrOrderNotDelivered or services.ErrDuplicateReview.
func (h CanSubmitReviewQueryHandler) Handle(ctx context.Context, query CanSubmitReviewQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	cutoff := h.gate.ReviewCutoff(h.clock.Now())
	err := inSnapshot(ctx, h.uowFactory, func(uow SnapshotUoW) error {
		o, err := uow.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}

		duplicate, err := uow.ReviewRepository().
			ExistsByUserIDAndTextAndCreatedAtAfter(ctx, query.UserID(), query.Text(), cutoff)
		if err != nil {
			return err
		}

		return h.gate.CanSubmitReview(o, duplicate)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
