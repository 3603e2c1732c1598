package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// TransitionResult describes a committed status change.
type TransitionResult struct {
	OrderID   kernel.UUID
	From      order.Status
	To        order.Status
	ChangedAt time.Time
	Version   int
}

// TransitionOrderStatusCommandHandler moves orders along the lifecycle graph.
// Cancelling an order also releases its courier in the same transaction.
//
// Example:
//
//	cmd, _ := NewTransitionOrderStatusCommand(orderID, order.Preparing)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // 422
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // lost every retry, 409
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	tracker    services.AssignmentTracker
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	retrier    Retrier
	logger     *slog.Logger
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	tracker services.AssignmentTracker,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	retrier Retrier,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		publisher:  publisher,
		clock:      clock,
		retrier:    retrier,
		logger:     logger.With("component", "TransitionOrderStatusCommandHandler"),
	}
}

// Handle applies the transition and publishes OrderStatusChanged after commit.
// A failed publish is logged; the transition stays committed.
func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var result TransitionResult
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = h.apply(ctx, cmd)
		return err
	})
	if err != nil {
		return TransitionResult{}, err
	}

	if h.publisher != nil {
		event := ports.OrderStatusChanged{
			OrderID:    result.OrderID,
			From:       result.From,
			To:         result.To,
			OccurredAt: result.ChangedAt,
		}
		if pubErr := h.publisher.PublishOrderStatusChanged(ctx, event); pubErr != nil {
			h.logger.ErrorContext(ctx, "failed to publish order status change",
				"order_id", result.OrderID.String(),
				"to", result.To.String(),
				"error", pubErr,
			)
		}
	}

	return result, nil
}

func (h TransitionOrderStatusCommandHandler) apply(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	assignments := uow.AssignmentRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	from := o.Status()
	if err = o.TransitionTo(cmd.Target(), h.clock.Now()); err != nil {
		return TransitionResult{}, err
	}

	if o.Status() == order.Cancelled {
		current, err := assignments.Find(ctx, o.ID())
		if err != nil {
			return TransitionResult{}, err
		}
		changed, err := h.tracker.Unassign(o, current)
		if err != nil {
			return TransitionResult{}, err
		}
		if changed && current != nil {
			if err = assignments.Remove(ctx, o.ID()); err != nil {
				return TransitionResult{}, err
			}
		}
	}

	if err = orders.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		OrderID:   o.ID(),
		From:      from,
		To:        o.Status(),
		ChangedAt: o.StatusChangedAt(),
		Version:   o.Version() + 1,
	}, nil
}
