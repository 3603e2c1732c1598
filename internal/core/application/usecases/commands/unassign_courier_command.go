package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUnassignCourierCommandIsNotConstructed = errors.New(
	"UnassignCourierCommand must be created via NewUnassignCourierCommand constructor",
)

// UnassignCourierCommand releases the courier of a cancelled order.
type UnassignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnassignCourierCommand(orderID kernel.UUID) (UnassignCourierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnassignCourierCommand{}, err
	}

	return UnassignCourierCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrUnassignCourierCommandIsNotConstructed)
}

func (c UnassignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}
