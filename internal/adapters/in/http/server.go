package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With("component", "http")}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		orderID = fromAPIUUID(*body.Id)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, fromAPIUUID(body.CustomerId), fromAPIUUID(body.RestaurantId))
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		Id:              o.ID().Bytes(),
		CustomerId:      o.CustomerID().Bytes(),
		RestaurantId:    o.RestaurantID().Bytes(),
		Status:          toAPIStatus(o.Status()),
		CreatedAt:       o.CreatedAt(),
		StatusChangedAt: o.StatusChangedAt(),
		Version:         o.Version(),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.ActiveOrder{
			Id:              o.ID.Bytes(),
			Status:          toAPIStatus(o.Status),
			CourierId:       toAPIUUIDPtr(o.CourierID),
			StatusChangedAt: o.StatusChangedAt,
			EtaMinutes:      o.EtaMinutes,
			EtaBasis:        string(o.EtaBasis),
			Overdue:         o.Overdue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(fromAPIUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.Order{
		Id:              o.ID.Bytes(),
		CustomerId:      o.CustomerID.Bytes(),
		RestaurantId:    o.RestaurantID.Bytes(),
		Status:          toAPIStatus(o.Status),
		CreatedAt:       o.CreatedAt,
		StatusChangedAt: o.StatusChangedAt,
		Version:         o.Version,
	}
	if o.Assignment != nil {
		response.Assignment = &servers.Assignment{
			OrderId:    o.ID.Bytes(),
			CourierId:  o.Assignment.CourierID.Bytes(),
			AssignedAt: o.Assignment.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.TransitionOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(fromAPIUUID(orderId), target)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusTransition{
		OrderId:   result.OrderID.Bytes(),
		From:      toAPIStatus(result.From),
		To:        toAPIStatus(result.To),
		ChangedAt: result.ChangedAt,
		Version:   result.Version,
	})
}

// AssignCourier handles PUT /api/v1/orders/{orderId}/courier.
func (s *Server) AssignCourier(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AssignCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(fromAPIUUID(orderId), fromAPIUUID(body.CourierId))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	a, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Assignment{
		OrderId:    a.OrderID().Bytes(),
		CourierId:  a.CourierID().Bytes(),
		AssignedAt: a.AssignedAt(),
	})
}

// UnassignCourier handles DELETE /api/v1/orders/{orderId}/courier.
func (s *Server) UnassignCourier(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewUnassignCourierCommand(fromAPIUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	released, err := s.handlers.UnassignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Unassignment{Released: released})
}

// GetOrderEta handles GET /api/v1/orders/{orderId}/eta.
func (s *Server) GetOrderEta(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewEstimateEtaQuery(fromAPIUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	eta, err := s.handlers.EstimateEta.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Eta{
		OrderId:   eta.OrderID.Bytes(),
		Status:    toAPIStatus(eta.Status),
		CourierId: toAPIUUIDPtr(eta.CourierID),
		Minutes:   eta.Minutes,
		Basis:     servers.EtaBasis(eta.Basis),
	})
}

// GetPaymentEligibility handles GET /api/v1/orders/{orderId}/payment-eligibility.
// An order that is already paid is reported with 200 and alreadyPaid set.
func (s *Server) GetPaymentEligibility(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewCanRecordPaymentQuery(fromAPIUUID(orderId))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	allowed, err := s.handlers.CanRecordPayment.Handle(ctx.Request().Context(), query)
	if errors.Is(err, services.ErrPaymentAlreadyExists) {
		return ctx.JSON(http.StatusOK, servers.PaymentEligibility{Allowed: false, AlreadyPaid: true})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PaymentEligibility{Allowed: allowed})
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) RecordPayment(ctx echo.Context, orderId servers.OrderId, _ servers.RecordPaymentParams) error {
	var body servers.RecordPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return s.badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentCommand(fromAPIUUID(orderId), amount)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	p, err := s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Payment{
		Id:         p.ID().Bytes(),
		OrderId:    p.OrderID().Bytes(),
		Amount:     p.Amount().StringFixed(2),
		Status:     p.Status().String(),
		RecordedAt: p.RecordedAt(),
	})
}

// GetReviewEligibility handles GET /api/v1/orders/{orderId}/review-eligibility.
func (s *Server) GetReviewEligibility(
	ctx echo.Context,
	orderId servers.OrderId,
	params servers.GetReviewEligibilityParams,
) error {
	query, err := queries.NewCanSubmitReviewQuery(fromAPIUUID(params.UserId), fromAPIUUID(orderId), params.Text)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	allowed, err := s.handlers.CanSubmitReview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ReviewEligibility{Allowed: allowed})
}

// SubmitReview handles POST /api/v1/orders/{orderId}/reviews.
func (s *Server) SubmitReview(ctx echo.Context, orderId servers.OrderId, _ servers.SubmitReviewParams) error {
	var body servers.SubmitReviewJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitReviewCommand(fromAPIUUID(orderId), fromAPIUUID(body.UserId), body.Text)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	r, err := s.handlers.SubmitReview.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Review{
		Id:           r.ID().Bytes(),
		OrderId:      r.OrderID().Bytes(),
		UserId:       r.UserID().Bytes(),
		RestaurantId: r.RestaurantID().Bytes(),
		Text:         r.Text(),
		CreatedAt:    r.CreatedAt(),
	})
}
