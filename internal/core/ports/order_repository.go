package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate only if the stored version still equals
	// aggregate.Version(); otherwise it fails with errs.ErrConcurrentModification.
	// A missing order fails with errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get fails with *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
