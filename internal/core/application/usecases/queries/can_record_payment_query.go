package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
)

var ErrCanRecordPaymentQueryIsNotConstructed = errors.New(
	"CanRecordPaymentQuery must be created via NewCanRecordPaymentQuery constructor",
)

type CanRecordPaymentQuery struct {
	orderIDQuery
}

func NewCanRecordPaymentQuery(orderID kernel.UUID) (CanRecordPaymentQuery, error) {
	base, err := newOrderIDQuery(orderID)
	if err != nil {
		return CanRecordPaymentQuery{}, err
	}
	return CanRecordPaymentQuery{orderIDQuery: base}, nil
}

func (q CanRecordPaymentQuery) Validate() error {
	return q.guard.Validate(ErrCanRecordPaymentQueryIsNotConstructed)
}
