package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report once a minute.
const DefaultStatusReportSchedule = "@every 1m"

type orderStatusCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) ([]queries.CountOrdersByStatusQueryResponse, error)
}

type orderStatusGauge interface {
	SetOrdersByStatus(counts map[string]int64)
}

// OrderStatusReportJob periodically counts stored orders per status,
// publishes the counts to the gauge and logs them.
type OrderStatusReportJob struct {
	counter  orderStatusCounter
	gauge    orderStatusGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusReportJob creates the job. An empty schedule means
// DefaultStatusReportSchedule.
func NewOrderStatusReportJob(
	counter orderStatusCounter,
	gauge orderStatusGauge,
	schedule string,
	logger *slog.Logger,
) *OrderStatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}
	return &OrderStatusReportJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_status_report_job"),
	}
}

// Run produces one report.
func (j *OrderStatusReportJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return err
	}

	byStatus := make(map[string]int64, len(counts))
	var total int64
	for _, count := range counts {
		byStatus[count.Status] = count.Count
		total += count.Count
	}

	j.gauge.SetOrdersByStatus(byStatus)
	j.logger.InfoContext(ctx, "Order status report", "total", total, "by_status", byStatus)
	return nil
}

// Start schedules the report.
func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}
