package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func orderInStatus(t *testing.T, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, courierID, baseTime, baseTime, 1,
	)
	require.NoError(t, err)
	return o
}

func assignmentFor(t *testing.T, o *order.Order, courierID kernel.UUID) *courier.Assignment {
	t.Helper()
	a, err := courier.NewAssignment(o.ID(), courierID, baseTime)
	require.NoError(t, err)
	return a
}
