package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Created ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │             │               │
//	   └────────────┴─────────────┴───────────────┴──────────> Cancelled
//
// Delivered and Cancelled are terminal. The numeric values are persisted,
// so new statuses must be appended.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Created
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Created:        "CREATED",
	Confirmed:      "CONFIRMED",
	Preparing:      "PREPARING",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

// forwardEdges maps a status to its single successor on the happy path.
var forwardEdges = map[Status]Status{
	Created:        Confirmed,
	Confirmed:      Preparing,
	Preparing:      OutForDelivery,
	OutForDelivery: Delivered,
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Created, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts the wire name (e.g. "OUT_FOR_DELIVERY") into a Status.
// Matching is case-insensitive.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if strings.EqualFold(statusName, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsConfirmedOrLater reports whether the order has passed confirmation on the
// forward path. Cancelled is not on the forward path and returns false.
func (s Status) IsConfirmedOrLater() bool {
	switch s {
	case Confirmed, Preparing, OutForDelivery, Delivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether s -> target is an edge of the lifecycle graph.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil || s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	next, ok := forwardEdges[s]
	return ok && next == target
}

// TransitionTo returns target when s -> target is allowed and an InvalidTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// Next returns the forward successor of s, if any.
func (s Status) Next() (Status, bool) {
	next, ok := forwardEdges[s]
	return next, ok
}
