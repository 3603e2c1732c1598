// Package jobs provides scheduled background tasks of the fulfillment service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OverdueOrdersJob scans active orders (DefaultOverdueSchedule: once a minute),
// logs every order whose time in the current status exceeds its estimate and
// publishes the count through the orders_overdue gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewOverdueOrdersJob(activeOrders, m.OrdersOverdue, "", logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
