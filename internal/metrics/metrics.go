// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"context"

	"fooddelivery/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	OrderTransitions    *prometheus.CounterVec
	ConcurrencyRetries  prometheus.Counter
	OrdersOverdue       prometheus.Gauge
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// Registering twice on the same registry panics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrderTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_transitions_total",
				Help: "Total number of committed order status transitions",
			},
			[]string{"from", "to"},
		),
		ConcurrencyRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_concurrency_retries_total",
			Help: "Total number of command retries after a concurrent modification",
		}),
		OrdersOverdue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orders_overdue",
			Help: "Active orders whose time in the current status exceeds the estimate",
		}),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	reg.MustRegister(
		m.OrderTransitions,
		m.ConcurrencyRetries,
		m.OrdersOverdue,
		m.HTTPRequests,
		m.HTTPRequestDuration,
	)
	return m
}

// CountingPublisher counts every transition and forwards it to next when next is set.
type CountingPublisher struct {
	next        ports.OrderEventPublisher
	transitions *prometheus.CounterVec
}

func NewCountingPublisher(next ports.OrderEventPublisher, m *Metrics) *CountingPublisher {
	return &CountingPublisher{next: next, transitions: m.OrderTransitions}
}

func (p *CountingPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	p.transitions.WithLabelValues(event.From.String(), event.To.String()).Inc()
	if p.next == nil {
		return nil
	}
	return p.next.PublishOrderStatusChanged(ctx, event)
}
