package services

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrPaymentAlreadyExists means the order is already paid. Callers treat it as an
	// idempotent outcome rather than a failure.
	ErrPaymentAlreadyExists = errors.New("payment already exists for order")

	// ErrOrderNotConfirmed is the precondition failure for paying an unconfirmed order.
	ErrOrderNotConfirmed = errors.New("order is not confirmed")

	// ErrOrderCancelled is the precondition failure for paying a cancelled order.
	ErrOrderCancelled = errors.New("order is cancelled")

	// ErrOrderNotDelivered is the precondition failure for reviewing an undelivered order.
	ErrOrderNotDelivered = errors.New("order is not delivered")

	// ErrDuplicateReview means the same user submitted identical text within the cooldown window.
	ErrDuplicateReview = errors.New("duplicate review within cooldown window")
)

// FulfillmentGate holds the payment and review eligibility rules. It keeps no state
// besides the review cooldown.
type FulfillmentGate struct {
	reviewCooldown time.Duration
}

// NewFulfillmentGate fails when the cooldown is not positive.
func NewFulfillmentGate(reviewCooldown time.Duration) (FulfillmentGate, error) {
	if reviewCooldown <= 0 {
		return FulfillmentGate{}, errs.NewValueIsInvalidErrorWithCause(
			"review cooldown",
			fmt.Errorf("%s is not greater than 0", reviewCooldown),
		)
	}
	return FulfillmentGate{reviewCooldown: reviewCooldown}, nil
}

func (g FulfillmentGate) ReviewCooldown() time.Duration {
	return g.reviewCooldown
}

// ReviewCutoff is the start of the cooldown window ending at now. Reviews created
// strictly after the cutoff count as recent.
func (g FulfillmentGate) ReviewCutoff(now time.Time) time.Time {
	return now.Add(-g.reviewCooldown)
}

// CanRecordPayment returns nil when a payment may be recorded.
// An existing payment is reported first, whatever the status, as ErrPaymentAlreadyExists.
// Otherwise Created orders fail with ErrOrderNotConfirmed and cancelled ones with ErrOrderCancelled.
func (g FulfillmentGate) CanRecordPayment(o *order.Order, paymentExists bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if paymentExists {
		return fmt.Errorf("%w: %s", ErrPaymentAlreadyExists, o.ID())
	}

	switch {
	case o.Status() == order.Cancelled:
		return fmt.Errorf("%w: %s", ErrOrderCancelled, o.ID())
	case !o.Status().IsConfirmedOrLater():
		return fmt.Errorf("%w: status is %s", ErrOrderNotConfirmed, o.Status())
	default:
		return nil
	}
}

// CanSubmitReview returns nil when the order is delivered and the user has no
// identical review newer than ReviewCutoff. recentDuplicateExists is the result of
// that history lookup.
func (g FulfillmentGate) CanSubmitReview(o *order.Order, recentDuplicateExists bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Delivered {
		return fmt.Errorf("%w: status is %s", ErrOrderNotDelivered, o.Status())
	}
	if recentDuplicateExists {
		return fmt.Errorf("%w: cooldown is %s", ErrDuplicateReview, g.reviewCooldown)
	}
	return nil
}
