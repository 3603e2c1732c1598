// Package payment models the settlement recorded for an order.
// There is at most one payment per order.
package payment

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

type Status int

const (
	StatusUnknown Status = iota
	StatusRecorded
	StatusRefunded
)

func (s Status) String() string {
	switch s {
	case StatusRecorded:
		return "RECORDED"
	case StatusRefunded:
		return "REFUNDED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s != StatusRecorded && s != StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Payment is immutable once recorded.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	amount     decimal.Decimal
	status     Status
	recordedAt time.Time

	isConstructed bool
}

// NewPayment records a positive amount against an order. Amounts are kept with
// two decimal places.
func NewPayment(id, orderID kernel.UUID, amount decimal.Decimal, recordedAt time.Time) (*Payment, error) {
	return RestorePayment(id, orderID, amount, StatusRecorded, recordedAt)
}

// RestorePayment rebuilds a payment from storage.
func RestorePayment(
	id, orderID kernel.UUID,
	amount decimal.Decimal,
	status Status,
	recordedAt time.Time,
) (*Payment, error) {
	p := &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount.Round(2),
		status:        status,
		recordedAt:    recordedAt.UTC(),
		isConstructed: true,
	}

	var amountErr error
	if !amount.IsPositive() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%s is not greater than 0", amount))
	}
	var recordedAtErr error
	if recordedAt.IsZero() {
		recordedAtErr = errs.NewValueIsRequiredError("recorded at")
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), amountErr, status.Validate(), recordedAtErr); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID         { return p.id }
func (p *Payment) OrderID() kernel.UUID    { return p.orderID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) RecordedAt() time.Time   { return p.recordedAt }
