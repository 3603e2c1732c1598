package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/metrics"
	"fooddelivery/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	estimator services.EtaEstimator
	gate      services.FulfillmentGate
	tracker   services.AssignmentTracker
	clock     ports.Clock

	metrics   *metrics.Metrics
	publisher ports.OrderEventPublisher
	logger    *slog.Logger

	closers []func() error
}

// NewCompositionRoot builds the domain services from configs. Invalid business
// settings are returned as errors so the process stops before serving.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, m *metrics.Metrics, logger *slog.Logger) (*CompositionRoot, error) {
	estimator, err := services.NewEtaEstimator(services.EtaConfig{
		BaseTimeMinutes:     configs.EtaBaseTimeMinutes,
		NoCourierMultiplier: configs.EtaNoCourierMultiplier,
	})
	if err != nil {
		return nil, err
	}

	gate, err := services.NewFulfillmentGate(configs.ReviewCooldown)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  estimator,
		gate:       gate,
		tracker:    services.NewAssignmentTracker(),
		clock:      clock.System{},
		metrics:    m,
		logger:     logger,
	}

	var downstream ports.OrderEventPublisher
	if configs.KafkaHost != "" {
		producer := kafka.NewOrderEventPublisher(kafka.Config{
			Brokers: strings.Split(configs.KafkaHost, ","),
			Topic:   configs.KafkaOrderChangedTopic,
		})
		root.closers = append(root.closers, producer.Close)
		downstream = producer
	}
	root.publisher = metrics.NewCountingPublisher(downstream, m)

	return root, nil
}

func (c *CompositionRoot) retrier() commands.Retrier {
	return commands.NewRetrier(c.configs.RetryMaxAttempts, c.metrics.ConcurrencyRetries)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(
		c.fulfillmentUoWFactory(), c.tracker, c.publisher, c.clock, c.retrier(), c.logger,
	)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.fulfillmentUoWFactory(), c.tracker, c.clock, c.retrier())
}

func (c *CompositionRoot) CreateUnassignCourierCommandHandler() commands.UnassignCourierCommandHandler {
	return commands.NewUnassignCourierCommandHandler(c.fulfillmentUoWFactory(), c.tracker, c.retrier())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.gate, c.clock, c.retrier())
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f, c.gate, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.snapshotUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, c.estimator, c.clock)
}

func (c *CompositionRoot) CreateEstimateEtaQueryHandler() queries.EstimateEtaQueryHandler {
	return queries.NewEstimateEtaQueryHandler(c.snapshotUoWFactory(), c.estimator)
}

func (c *CompositionRoot) CreateCanRecordPaymentQueryHandler() queries.CanRecordPaymentQueryHandler {
	return queries.NewCanRecordPaymentQueryHandler(c.snapshotUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateCanSubmitReviewQueryHandler() queries.CanSubmitReviewQueryHandler {
	return queries.NewCanSubmitReviewQueryHandler(c.snapshotUoWFactory(), c.gate, c.clock)
}

// CreateHTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		TransitionOrderStatus: c.CreateTransitionOrderStatusCommandHandler(),
		AssignCourier:         c.CreateAssignCourierCommandHandler(),
		UnassignCourier:       c.CreateUnassignCourierCommandHandler(),
		RecordPayment:         c.CreateRecordPaymentCommandHandler(),
		SubmitReview:          c.CreateSubmitReviewCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
		EstimateEta:           c.CreateEstimateEtaQueryHandler(),
		CanRecordPayment:      c.CreateCanRecordPaymentQueryHandler(),
		CanSubmitReview:       c.CreateCanSubmitReviewQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewOverdueOrdersJob(
		c.CreateGetActiveOrdersQueryHandler(),
		c.metrics.OrdersOverdue,
		c.configs.OverdueScanSchedule,
		c.logger,
	))
}

// CreateRedisClient connects to REDIS_ADDR. It returns nil when Redis is not configured.
func (c *CompositionRoot) CreateRedisClient(ctx context.Context) (*redis.Client, error) {
	if c.configs.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: c.configs.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	c.closers = append(c.closers, client.Close)
	return client, nil
}

// Close releases the clients opened by the root.
func (c *CompositionRoot) Close() error {
	var result []error
	for _, closeFn := range c.closers {
		result = append(result, closeFn())
	}
	return errors.Join(result...)
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) snapshotUoWFactory() queries.SnapshotUoWFactory {
	return FuncSnapshotUoWFactory(func() queries.SnapshotUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncSnapshotUoWFactory func() queries.SnapshotUoW

func (f FuncSnapshotUoWFactory) Create() queries.SnapshotUoW {
	return f()
}
