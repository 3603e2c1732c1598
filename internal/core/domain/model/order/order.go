package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Order is the aggregate root of the fulfillment domain.
//
// Invariants:
//   - id, customerID and restaurantID are valid identifiers
//   - status only changes along the lifecycle graph (see Status)
//   - statusChangedAt is updated by every successful transition
//   - courierID is set only while the status allows a courier
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	status    Status
	courierID *kernel.UUID

	createdAt       time.Time
	statusChangedAt time.Time

	// version is the persisted version the aggregate was loaded with; zero for new orders.
	version int

	isConstructed bool
}

// NewOrder creates an order in Created status, as placed by a completed checkout.
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, time.Now())
func NewOrder(id, customerID, restaurantID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:          Created,
		createdAt:       createdAt.UTC(),
		statusChangedAt: createdAt.UTC(),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It validates the same
// invariants as NewOrder plus status/courier consistency.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	status Status,
	courierID *kernel.UUID,
	createdAt, statusChangedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		status:          status,
		createdAt:       createdAt.UTC(),
		statusChangedAt: statusChangedAt.UTC(),
		version:         version,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
		status.Validate(),
		o.setCourierID(courierID),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the attached courier or nil.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// Version is the version the order was loaded with. Repositories write version+1
// conditionally on this value.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to target and stamps statusChangedAt with at.
// A request that is not an edge of the lifecycle graph fails with *InvalidTransitionError
// and leaves the order unchanged.
func (o *Order) TransitionTo(target Status, at time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.statusChangedAt = at.UTC()
	return nil
}

// CanHaveCourier reports whether a courier may be attached in the current status.
func (o *Order) CanHaveCourier() bool {
	return o.status.IsConfirmedOrLater() && !o.status.IsTerminal()
}

// AttachCourier records the courier that accepted the order.
func (o *Order) AttachCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.CanHaveCourier() {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEligible, o.status)
	}

	o.courierID = &courierID
	return nil
}

// ReleaseCourier detaches the courier. Only cancelled orders release their courier.
func (o *Order) ReleaseCourier() error {
	if o.status != Cancelled {
		return fmt.Errorf("%w: status is %s", ErrOrderNotCancellable, o.status)
	}

	o.courierID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	return nil
}

// setCourierID checks that a persisted courier is consistent with the persisted status.
// Cancelled orders may still carry the courier they had before cancellation.
func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.status.IsConfirmedOrLater() && o.status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", o.status),
		)
	}
	o.courierID = courierID
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid", fmt.Errorf("%d is negative", version))
	}
	return nil
}
