package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderIDQuery
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	base, err := newOrderIDQuery(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderIDQuery: base}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// AssignmentResponse is the current courier assignment of an order.
type AssignmentResponse struct {
	CourierID  kernel.UUID
	AssignedAt time.Time
}

type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	Assignment      *AssignmentResponse
	CreatedAt       time.Time
	StatusChangedAt time.Time
	Version         int
}
