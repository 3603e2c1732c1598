package commands_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/clock"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignHandler(factory commands.FulfillmentUoWFactory) commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(
		factory,
		services.NewAssignmentTracker(),
		clock.Fixed(now),
		commands.NewRetrier(commands.DefaultMaxAttempts, nil),
	)
}

func assignCmd(t *testing.T, orderID, courierID kernel.UUID) commands.AssignCourierCommand {
	t.Helper()
	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	require.NoError(t, err)
	return cmd
}

func TestAssignCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should store a new assignment and bump the order", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(order.Preparing, nil, 2)
		courierID := kernel.NewUUID()

		uow := newMockUoW()
		uow.expectTx(nil, true)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.assignments.On("Find", ctx, o.ID()).Return(nil, nil).Once()
		uow.assignments.On("Add", ctx, mock.AnythingOfType("*courier.Assignment")).Return(nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		a, err := newAssignHandler(stubFactory[commands.FulfillmentUoW]{uow: uow}).
			Handle(ctx, assignCmd(t, o.ID(), courierID))

		require.NoError(t, err)
		assert.Equal(t, courierID, a.CourierID())
		assert.Equal(t, now, a.AssignedAt())
		assert.Equal(t, courierID, *o.Courier())
		uow.assertAll(t)
	})

	t.Run("should be idempotent for the same courier", func(t *testing.T) {
		ctx := t.Context()
		courierID := kernel.NewUUID()
		o := restoredOrder(order.Preparing, &courierID, 3)
		existing, err := courier.NewAssignment(o.ID(), courierID, now.Add(-15*time.Minute))
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(nil, false)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.assignments.On("Find", ctx, o.ID()).Return(existing, nil).Once()

		a, err := newAssignHandler(stubFactory[commands.FulfillmentUoW]{uow: uow}).
			Handle(ctx, assignCmd(t, o.ID(), courierID))

		require.NoError(t, err)
		assert.Same(t, existing, a)
		uow.assignments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject a second courier", func(t *testing.T) {
		ctx := t.Context()
		holder := kernel.NewUUID()
		o := restoredOrder(order.OutForDelivery, &holder, 3)
		existing, err := courier.NewAssignment(o.ID(), holder, now)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(nil, false)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.assignments.On("Find", ctx, o.ID()).Return(existing, nil).Once()

		_, err = newAssignHandler(stubFactory[commands.FulfillmentUoW]{uow: uow}).
			Handle(ctx, assignCmd(t, o.ID(), kernel.NewUUID()))

		require.ErrorIs(t, err, courier.ErrAlreadyAssigned)
		uow.assertAll(t)
	})

	t.Run("should reject an order that is not confirmed", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(order.Created, nil, 1)

		uow := newMockUoW()
		uow.expectTx(nil, false)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.assignments.On("Find", ctx, o.ID()).Return(nil, nil).Once()

		_, err := newAssignHandler(stubFactory[commands.FulfillmentUoW]{uow: uow}).
			Handle(ctx, assignCmd(t, o.ID(), kernel.NewUUID()))

		require.ErrorIs(t, err, order.ErrOrderNotEligible)
		uow.assertAll(t)
	})
}

func TestAssignCourierCommandHandler_ConcurrentAssignments(t *testing.T) {
	store := newMemStore()
	o := restoredOrder(order.Confirmed, nil, 1)
	store.put(o)

	h := newAssignHandler(memFulfillmentFactory{store})
	cmds := []commands.AssignCourierCommand{
		assignCmd(t, o.ID(), kernel.NewUUID()),
		assignCmd(t, o.ID(), kernel.NewUUID()),
	}

	results := make([]error, len(cmds))
	var wg sync.WaitGroup
	for i, cmd := range cmds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = h.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t,
			errors.Is(err, courier.ErrAlreadyAssigned) || errors.Is(err, errs.ErrConcurrentModification),
			"unexpected error: %v", err,
		)
	}
	assert.Equal(t, 1, succeeded)

	stored := store.assignment(o.ID())
	require.NotNil(t, stored)
	require.NotNil(t, store.order(o.ID()).courierID)
	assert.Equal(t, stored.CourierID(), *store.order(o.ID()).courierID)
	assert.Equal(t, 2, store.order(o.ID()).version)
}
