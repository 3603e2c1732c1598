package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

var ErrEstimateEtaQueryIsNotConstructed = errors.New(
	"EstimateEtaQuery must be created via NewEstimateEtaQuery constructor",
)

// EstimateEtaQuery asks for the delivery estimate of one order.
//
// Example:
//
//	query, _ := NewEstimateEtaQuery(orderID)
//	eta, err := handler.Handle(ctx, query)
//	fmt.Printf("%d minutes (%s)\n", eta.Minutes, eta.Basis)
type EstimateEtaQuery struct {
	orderIDQuery
}

func NewEstimateEtaQuery(orderID kernel.UUID) (EstimateEtaQuery, error) {
	base, err := newOrderIDQuery(orderID)
	if err != nil {
		return EstimateEtaQuery{}, err
	}
	return EstimateEtaQuery{orderIDQuery: base}, nil
}

func (q EstimateEtaQuery) Validate() error {
	return q.guard.Validate(ErrEstimateEtaQueryIsNotConstructed)
}

// EstimateEtaResponse is the estimate plus the state it was computed from.
// StatusChangedAt lets callers turn the total into a remaining duration.
type EstimateEtaResponse struct {
	OrderID         kernel.UUID
	Status          order.Status
	CourierID       *kernel.UUID
	StatusChangedAt time.Time
	Minutes         int
	Basis           services.EtaBasis
}
