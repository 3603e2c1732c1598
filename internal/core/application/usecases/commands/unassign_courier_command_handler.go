package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// UnassignCourierCommandHandler removes the assignment of a cancelled order.
// Orders that are not cancelled fail with order.ErrOrderNotCancellable.
type UnassignCourierCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	tracker    services.AssignmentTracker
	retrier    Retrier
}

func NewUnassignCourierCommandHandler(
	uowFactory FulfillmentUoWFactory,
	tracker services.AssignmentTracker,
	retrier Retrier,
) UnassignCourierCommandHandler {
	return UnassignCourierCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		retrier:    retrier,
	}
}

// Handle reports whether a courier was released. Releasing an order that has no
// courier is not an error.
func (h UnassignCourierCommandHandler) Handle(ctx context.Context, cmd UnassignCourierCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var changed bool
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		changed, err = h.apply(ctx, cmd)
		return err
	})
	return changed, err
}

func (h UnassignCourierCommandHandler) apply(ctx context.Context, cmd UnassignCourierCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	assignments := uow.AssignmentRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	current, err := assignments.Find(ctx, o.ID())
	if err != nil {
		return false, err
	}

	changed, err := h.tracker.Unassign(o, current)
	if err != nil || !changed {
		return false, err
	}

	if current != nil {
		if err = assignments.Remove(ctx, o.ID()); err != nil {
			return false, err
		}
	}

	if err = orders.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
