package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// AssignmentTracker applies courier assignment rules to an order and its current assignment.
type AssignmentTracker struct{}

func NewAssignmentTracker() AssignmentTracker {
	return AssignmentTracker{}
}

// Assign attaches courierID to the order.
//
//   - order not yet confirmed or terminal: order.ErrOrderNotEligible
//   - same courier already assigned: the existing assignment, created == false
//   - another courier assigned: courier.ErrAlreadyAssigned
//
// On success with created == true the caller persists both the order and the new assignment.
func (AssignmentTracker) Assign(
	o *order.Order,
	current *courier.Assignment,
	courierID kernel.UUID,
	at time.Time,
) (assignment *courier.Assignment, created bool, err error) {
	if err = o.Validate(); err != nil {
		return nil, false, err
	}
	if !o.CanHaveCourier() {
		return nil, false, fmt.Errorf("%w: status is %s", order.ErrOrderNotEligible, o.Status())
	}

	if current != nil {
		if current.IsFor(courierID) {
			return current, false, nil
		}
		return nil, false, fmt.Errorf("%w: courier %s holds order %s",
			courier.ErrAlreadyAssigned, current.CourierID(), o.ID())
	}

	if err = o.AttachCourier(courierID); err != nil {
		return nil, false, err
	}

	assignment, err = courier.NewAssignment(o.ID(), courierID, at)
	if err != nil {
		return nil, false, err
	}
	return assignment, true, nil
}

// Unassign releases the courier of a cancelled order and reports whether anything
// changed. An order with neither a courier nor an assignment is left untouched.
func (AssignmentTracker) Unassign(o *order.Order, current *courier.Assignment) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if o.Status() != order.Cancelled {
		return false, fmt.Errorf("%w: status is %s", order.ErrOrderNotCancellable, o.Status())
	}
	if current == nil && o.Courier() == nil {
		return false, nil
	}

	if err := o.ReleaseCourier(); err != nil {
		return false, err
	}
	return true, nil
}
