package courier

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrAlreadyAssigned is returned when an order already has a different courier.
	// The caller has to unassign explicitly before assigning someone else.
	ErrAlreadyAssigned = errors.New("order already has a courier assigned")

	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment records which courier carries an order and since when.
type Assignment struct {
	orderID    kernel.UUID
	courierID  kernel.UUID
	assignedAt time.Time

	isConstructed bool
}

// NewAssignment validates identifiers and the assignment time.
// Order eligibility is checked by the order aggregate, not here.
func NewAssignment(orderID, courierID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		assignedAt:    assignedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setCourierID(courierID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Assignment) CourierID() kernel.UUID {
	return a.courierID
}

func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// IsFor reports whether the assignment belongs to courierID.
func (a *Assignment) IsFor(courierID kernel.UUID) bool {
	return a.courierID.IsEqual(courierID)
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	a.courierID = id
	return nil
}

func (a *Assignment) setAssignedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("assigned at")
	}
	return nil
}
