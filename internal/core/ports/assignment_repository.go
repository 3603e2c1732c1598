package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

type AssignmentRepository interface {
	// Add fails with errs.ErrConcurrentModification if another assignment for the
	// same order was stored first.
	Add(ctx context.Context, assignment *courier.Assignment) error

	// Find returns nil without error when the order has no assignment.
	Find(ctx context.Context, orderID kernel.UUID) (*courier.Assignment, error)

	Remove(ctx context.Context, orderID kernel.UUID) error
}
