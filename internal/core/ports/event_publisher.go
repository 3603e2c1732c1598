package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderStatusChanged is emitted after a status transition commits.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	From       order.Status
	To         order.Status
	OccurredAt time.Time
}

type OrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}

// Clock is the source of "now" for commands and queries.
type Clock interface {
	Now() time.Time
}
