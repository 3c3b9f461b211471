package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules configures when the jobs run. Expressions have six fields,
// seconds first.
type Schedules struct {
	StaffSalesSummary string
	StaleOrders       string
	StaleOrderAfter   time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staffSalesSummaryJob *StaffSalesSummaryJob
	staleOrderJob        *StaleOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staffSales StaffSalesComputer,
	staleOrders StaleOrderFinder,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staffSalesSummaryJob: NewStaffSalesSummaryJob(staffSales, schedules.StaffSalesSummary, logger),
		staleOrderJob:        NewStaleOrderJob(staleOrders, schedules.StaleOrders, schedules.StaleOrderAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staffSalesSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start staff sales summary job: %w", err)
	}

	if err := jm.staleOrderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staffSalesSummaryJob.Stop()
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
	jm.staffSalesSummaryJob.Stop()
}
