package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule runs the scan at the start of every minute.
const DefaultOverdueSchedule = "0 * * * * *"

type activeOrdersReader interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
}

type gauge interface {
	Set(value float64)
}

// OverdueOrdersJob periodically looks for active orders that have spent longer in
// their current status than the estimate allows.
type OverdueOrdersJob struct {
	reader   activeOrdersReader
	overdue  gauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOverdueOrdersJob(reader activeOrdersReader, overdue gauge, schedule string, logger *slog.Logger) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueOrdersJob{
		reader:   reader,
		overdue:  overdue,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Start schedules the scan. An invalid schedule is returned as error.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, runErr := j.Run(context.Background()); runErr != nil {
			j.logger.Error("Overdue orders scan failed", "error", runErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan, updates the gauge and returns the number of overdue orders.
func (j *OverdueOrdersJob) Run(ctx context.Context) (int, error) {
	orders, err := j.reader.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return 0, err
	}

	count := 0
	for _, o := range orders {
		if !o.Overdue {
			continue
		}
		count++
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID.String(),
			"status", o.Status.String(),
			"eta_minutes", o.EtaMinutes,
			"elapsed", o.Elapsed.String(),
			"courier_assigned", o.CourierID != nil,
		)
	}

	j.overdue.Set(float64(count))
	return count, nil
}

// Stop waits for a running scan to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue orders job stopped")
}
