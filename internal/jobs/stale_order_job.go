package jobs

import (
	"context"
	"log/slog"
	"time"

	"hotelpos/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StaleOrderFinder returns orders that have sat in a status since before olderThan.
type StaleOrderFinder interface {
	ListStale(ctx context.Context, status order.Status, olderThan time.Time) ([]*order.Order, error)
}

// StaleOrderJob warns about orders delivered longer than a threshold ago that
// still have no payment.
type StaleOrderJob struct {
	finder    StaleOrderFinder
	schedule  string
	threshold time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates the job. schedule is a six-field cron expression
// (seconds first).
func NewStaleOrderJob(finder StaleOrderFinder, schedule string, threshold time.Duration, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		finder:    finder,
		schedule:  schedule,
		threshold: threshold,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started",
		"schedule", j.schedule,
		"threshold", j.threshold.String(),
	)
	return nil
}

// Run logs a warning for every stale order and returns how many it found.
func (j *StaleOrderJob) Run(ctx context.Context) (int, error) {
	now := j.now()

	orders, err := j.finder.ListStale(ctx, order.Delivered, now.Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order check failed", "error", err)
		return 0, err
	}

	for _, o := range orders {
		j.logger.WarnContext(ctx, "Order delivered but not paid",
			"order_id", o.ID().String(),
			"type", o.Type().String(),
			"location", o.LocationLabel(),
			"total", o.Total().Int64(),
			"created_by", o.CreatedBy().String(),
			"age", now.Sub(o.CreatedAt()).Truncate(time.Minute).String(),
		)
	}

	return len(orders), nil
}

// Stop stops the scheduler. A run in progress is not interrupted.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
