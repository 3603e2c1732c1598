package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// SubmitReviewCommandHandler stores a review once the order is delivered and the
// user has not sent the same text within the cooldown.
// Two identical submissions racing each other may both pass the duplicate check.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	gate       services.FulfillmentGate
	clock      ports.Clock
}

func NewSubmitReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	gate services.FulfillmentGate,
	clock ports.Clock,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clock,
	}
}

func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

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

	reviews := uow.ReviewRepository()
	duplicate, err := reviews.ExistsByUserIDAndTextAndCreatedAtAfter(ctx, cmd.UserID(), cmd.Text(), h.gate.ReviewCutoff(now))
	if err != nil {
		return nil, err
	}

	if err = h.gate.CanSubmitReview(o, duplicate); err != nil {
		return nil, err
	}

	r, err := review.NewReview(kernel.NewUUID(), cmd.UserID(), o.ID(), o.RestaurantID(), cmd.Text(), now)
	if err != nil {
		return nil, err
	}

	if err = reviews.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
