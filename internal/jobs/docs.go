// Package jobs provides scheduled background tasks for the point of sale.
//
// Jobs use github.com/robfig/cron/v3 with six-field expressions (seconds first).
//
// # Available Jobs
//
// 1. StaffSalesSummaryJob - logs every active account's paid revenue, by default at 23:55 each day
// 2. StaleOrderJob - warns about delivered orders left unpaid past a threshold, by default every 15 minutes
//
// # Usage
//
//	jobManager := jobs.NewJobManager(staffSalesHandler, orderRepository, jobs.Schedules{
//		StaffSalesSummary: "0 55 23 * * *",
//		StaleOrders:       "0 */15 * * * *",
//		StaleOrderAfter:   2 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and carry on; the next tick retries. Failed job
// starts stop any already running jobs.
package jobs
