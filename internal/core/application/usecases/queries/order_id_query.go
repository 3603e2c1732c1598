package queries

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// orderIDQuery is embedded by queries addressed to one order.
type orderIDQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderIDQuery(orderID kernel.UUID) (orderIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return orderIDQuery{}, err
	}
	return orderIDQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q orderIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
