package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type transitionOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (commands.TransitionResult, error)
}

type assignCourierHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCourierCommand) (*courier.Assignment, error)
}

type unassignCourierHandler interface {
	Handle(ctx context.Context, cmd commands.UnassignCourierCommand) (bool, error)
}

type recordPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.RecordPaymentCommand) (*payment.Payment, error)
}

type submitReviewHandler interface {
	Handle(ctx context.Context, cmd commands.SubmitReviewCommand) (*review.Review, error)
}

type getOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type getActiveOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
}

type estimateEtaHandler interface {
	Handle(ctx context.Context, query queries.EstimateEtaQuery) (queries.EstimateEtaResponse, error)
}

type canRecordPaymentHandler interface {
	Handle(ctx context.Context, query queries.CanRecordPaymentQuery) (bool, error)
}

type canSubmitReviewHandler interface {
	Handle(ctx context.Context, query queries.CanSubmitReviewQuery) (bool, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder           createOrderHandler
	TransitionOrderStatus transitionOrderStatusHandler
	AssignCourier         assignCourierHandler
	UnassignCourier       unassignCourierHandler
	RecordPayment         recordPaymentHandler
	SubmitReview          submitReviewHandler

	GetOrder         getOrderHandler
	GetActiveOrders  getActiveOrdersHandler
	EstimateEta      estimateEtaHandler
	CanRecordPayment canRecordPaymentHandler
	CanSubmitReview  canSubmitReviewHandler
}
