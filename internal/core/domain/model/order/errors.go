package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel behind InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderNotEligible is returned when a courier is attached to an order that is
	// not yet confirmed or already terminal.
	ErrOrderNotEligible = errors.New("order is not eligible for courier assignment")

	// ErrOrderNotCancellable is returned when a courier is released from an order
	// that is not being cancelled.
	ErrOrderNotCancellable = errors.New("courier can only be released from a cancelled order")

	// ErrOrderIsNotConstructed is returned by Validate for orders not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InvalidTransitionError names the current and requested status of a rejected transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
