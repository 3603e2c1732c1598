package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// AssignCourierCommandHandler attaches a courier to an order and stores the assignment.
// Assigning the courier that already holds the order returns the stored assignment
// and writes nothing.
//
// Example:
//
//	cmd, _ := NewAssignCourierCommand(orderID, courierID)
//	a, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotEligible):
//	    // order is not confirmed yet or already finished
//	case errors.Is(err, courier.ErrAlreadyAssigned):
//	    // another courier holds the order
//	}
type AssignCourierCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	tracker    services.AssignmentTracker
	clock      ports.Clock
	retrier    Retrier
}

func NewAssignCourierCommandHandler(
	uowFactory FulfillmentUoWFactory,
	tracker services.AssignmentTracker,
	clock ports.Clock,
	retrier Retrier,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		clock:      clock,
		retrier:    retrier,
	}
}

// Handle returns the assignment in effect after the command.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*courier.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var assignment *courier.Assignment
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		assignment, err = h.apply(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (h AssignCourierCommandHandler) apply(ctx context.Context, cmd AssignCourierCommand) (*courier.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	assignments := uow.AssignmentRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	current, err := assignments.Find(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	assignment, created, err := h.tracker.Assign(o, current, cmd.CourierID(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	if !created {
		return assignment, nil
	}

	if err = assignments.Add(ctx, assignment); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignment, nil
}
