package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	// Add fails with errs.ErrConcurrentModification if a payment for the order already exists.
	Add(ctx context.Context, p *payment.Payment) error

	ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)
}
