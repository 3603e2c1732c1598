package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) services.FulfillmentGate {
	t.Helper()
	gate, err := services.NewFulfillmentGate(time.Hour)
	require.NoError(t, err)
	return gate
}

func TestNewFulfillmentGate_RejectsNonPositiveCooldown(t *testing.T) {
	for _, cooldown := range []time.Duration{0, -time.Minute} {
		_, err := services.NewFulfillmentGate(cooldown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "review cooldown")
	}
}

func TestFulfillmentGate_ReviewCutoff(t *testing.T) {
	gate := newGate(t)

	assert.Equal(t, time.Hour, gate.ReviewCooldown())
	assert.Equal(t, baseTime.Add(-time.Hour), gate.ReviewCutoff(baseTime))
}

func TestFulfillmentGate_CanRecordPayment(t *testing.T) {
	gate := newGate(t)

	t.Run("should refuse payment before confirmation", func(t *testing.T) {
		err := gate.CanRecordPayment(orderInStatus(t, order.Created, nil), false)

		require.ErrorIs(t, err, services.ErrOrderNotConfirmed)
		require.NotErrorIs(t, err, services.ErrPaymentAlreadyExists)
	})

	t.Run("should allow payment from confirmation on", func(t *testing.T) {
		for _, status := range []order.Status{order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered} {
			require.NoError(t, gate.CanRecordPayment(orderInStatus(t, status, nil), false), status.String())
		}
	})

	t.Run("should refuse payment for a cancelled order", func(t *testing.T) {
		err := gate.CanRecordPayment(orderInStatus(t, order.Cancelled, nil), false)

		require.ErrorIs(t, err, services.ErrOrderCancelled)
	})

	t.Run("should report an existing payment regardless of status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			err := gate.CanRecordPayment(orderInStatus(t, status, nil), true)

			require.ErrorIs(t, err, services.ErrPaymentAlreadyExists, status.String())
		}
	})
}

func TestFulfillmentGate_CanSubmitReview(t *testing.T) {
	gate := newGate(t)

	t.Run("should refuse reviews for undelivered orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Confirmed, order.Preparing, order.OutForDelivery, order.Cancelled} {
			err := gate.CanSubmitReview(orderInStatus(t, status, nil), false)

			require.ErrorIs(t, err, services.ErrOrderNotDelivered, status.String())
		}
	})

	t.Run("should allow a first review of a delivered order", func(t *testing.T) {
		require.NoError(t, gate.CanSubmitReview(orderInStatus(t, order.Delivered, nil), false))
	})

	t.Run("should report a recent identical review as duplicate", func(t *testing.T) {
		err := gate.CanSubmitReview(orderInStatus(t, order.Delivered, nil), true)

		require.ErrorIs(t, err, services.ErrDuplicateReview)
	})

	t.Run("should check delivery before duplicates", func(t *testing.T) {
		err := gate.CanSubmitReview(orderInStatus(t, order.Preparing, nil), true)

		require.ErrorIs(t, err, services.ErrOrderNotDelivered)
	})
}
