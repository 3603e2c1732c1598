package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const reviewCooldown = 24 * time.Hour

func newReviewHandler(t *testing.T, factory commands.ReviewUoWFactory, at time.Time) commands.SubmitReviewCommandHandler {
	t.Helper()
	gate, err := services.NewFulfillmentGate(reviewCooldown)
	require.NoError(t, err)
	return commands.NewSubmitReviewCommandHandler(factory, gate, clock.Fixed(at))
}

func TestSubmitReviewCommandHandler_Handle(t *testing.T) {
	t.Run("should store a review with the order's restaurant", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(order.Delivered, nil, 5)
		userID := kernel.NewUUID()

		uow := newMockUoW()
		uow.expectTx(nil, true)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.reviews.On("ExistsByUserIDAndTextAndCreatedAtAfter", ctx, userID, "Great pizza", now.Add(-reviewCooldown)).
			Return(false, nil).Once()
		uow.reviews.On("Add", ctx, mock.AnythingOfType("*review.Review")).Return(nil).Once()

		cmd, err := commands.NewSubmitReviewCommand(o.ID(), userID, " Great pizza ")
		require.NoError(t, err)

		r, err := newReviewHandler(t, stubFactory[commands.ReviewUoW]{uow: uow}, now).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, o.RestaurantID(), r.RestaurantID())
		assert.Equal(t, "Great pizza", r.Text())
		assert.Equal(t, now, r.CreatedAt())
		uow.assertAll(t)
	})

	t.Run("should refuse an undelivered order", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(order.OutForDelivery, nil, 4)

		uow := newMockUoW()
		uow.expectTx(nil, false)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.reviews.On("ExistsByUserIDAndTextAndCreatedAtAfter", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(false, nil).Once()

		cmd, _ := commands.NewSubmitReviewCommand(o.ID(), kernel.NewUUID(), "late")
		_, err := newReviewHandler(t, stubFactory[commands.ReviewUoW]{uow: uow}, now).Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrOrderNotDelivered)
		uow.assertAll(t)
	})

	t.Run("should refuse a recent duplicate", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(order.Delivered, nil, 5)

		uow := newMockUoW()
		uow.expectTx(nil, false)
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.reviews.On("ExistsByUserIDAndTextAndCreatedAtAfter", ctx, mock.Anything, "same", mock.Anything).
			Return(true, nil).Once()

		cmd, _ := commands.NewSubmitReviewCommand(o.ID(), kernel.NewUUID(), "same")
		_, err := newReviewHandler(t, stubFactory[commands.ReviewUoW]{uow: uow}, now).Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrDuplicateReview)
		uow.assertAll(t)
	})
}

func TestSubmitReviewCommandHandler_Cooldown(t *testing.T) {
	store := newMemStore()
	first := restoredOrder(order.Delivered, nil, 5)
	second := restoredOrder(order.Delivered, nil, 5)
	store.put(first)
	store.put(second)
	userID := kernel.NewUUID()

	submit := func(orderID kernel.UUID, at time.Time, text string) error {
		cmd, err := commands.NewSubmitReviewCommand(orderID, userID, text)
		require.NoError(t, err)
		_, err = newReviewHandler(t, memReviewFactory{store}, at).Handle(t.Context(), cmd)
		return err
	}

	require.NoError(t, submit(first.ID(), now, "Tasty"))

	require.ErrorIs(t, submit(second.ID(), now.Add(time.Hour), "Tasty"), services.ErrDuplicateReview,
		"identical text inside the cooldown is a duplicate across orders")
	require.NoError(t, submit(second.ID(), now.Add(time.Hour), "Tasty again"))
	require.NoError(t, submit(second.ID(), now.Add(reviewCooldown), "Tasty"),
		"a review exactly one cooldown old is outside the window")
}
