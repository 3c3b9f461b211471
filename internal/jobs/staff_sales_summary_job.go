package jobs

import (
	"context"
	"log/slog"

	"hotelpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaffSalesComputer builds the staff sales report without an authorization check.
type StaffSalesComputer interface {
	Compute(ctx context.Context) (queries.StaffSalesReport, error)
}

// StaffSalesSummaryJob logs each active account's paid revenue on a schedule,
// giving the night manager a trail of the day's takings in the service logs.
type StaffSalesSummaryJob struct {
	computer StaffSalesComputer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaffSalesSummaryJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewStaffSalesSummaryJob(computer StaffSalesComputer, schedule string, logger *slog.Logger) *StaffSalesSummaryJob {
	return &StaffSalesSummaryJob{
		computer: computer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "staff_sales_summary_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaffSalesSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Staff sales summary job started", "schedule", j.schedule)
	return nil
}

// Run computes the report once and logs one line per account plus a total.
func (j *StaffSalesSummaryJob) Run(ctx context.Context) error {
	report, err := j.computer.Compute(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Staff sales summary failed", "error", err)
		return err
	}

	var today int64
	for _, s := range report.Staff {
		today += s.TodayRevenue.Int64()
		j.logger.InfoContext(ctx, "Staff sales",
			"admin_id", s.AdminID.String(),
			"name", s.Name,
			"role", s.Role.String(),
			"total_orders", s.TotalOrders,
			"total_revenue", s.TotalRevenue.Int64(),
			"today_revenue", s.TodayRevenue.Int64(),
		)
	}
	j.logger.InfoContext(ctx, "Staff sales summary",
		"day", report.Day.Format("2006-01-02"),
		"staff", len(report.Staff),
		"today_revenue", today,
	)

	return nil
}

// Stop stops the scheduler. A run in progress is not interrupted.
func (j *StaffSalesSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Staff sales summary job stopped")
}
