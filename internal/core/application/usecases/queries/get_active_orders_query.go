package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists orders that are not delivered or cancelled, oldest
// status change first, each with its current estimate.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	for _, o := range orders {
//	    if o.Overdue {
//	        fmt.Printf("order %s is late by %s\n", o.ID, o.Elapsed-time.Duration(o.EtaMinutes)*time.Minute)
//	    }
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          order.Status
	CourierID       *kernel.UUID
	StatusChangedAt time.Time
	EtaMinutes      int
	EtaBasis        services.EtaBasis
	// Elapsed is the time since the last status change, measured when the query ran.
	Elapsed time.Duration
	// Overdue is set once Elapsed exceeds the estimate.
	Overdue bool
}
