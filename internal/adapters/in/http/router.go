package http

import (
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BasePath = "/api/v1"

type RouterConfig struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	// Redis enables the Idempotency-Key middleware when set.
	Redis          redis.UniversalClient
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// NewRouter builds the echo instance serving the API, health, metrics and Swagger UI.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(spec); err != nil {
		return nil, err
	}

	validator, err := RequestValidator(spec, BasePath)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.Recover())
	e.Use(Observability(cfg.Metrics, cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath)
	if cfg.Redis != nil {
		api.Use(Idempotency(cfg.Redis, cfg.IdempotencyTTL, cfg.Logger))
	}
	api.Use(validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
