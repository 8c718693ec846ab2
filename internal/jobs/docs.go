// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 and are managed through JobManager:
//
//	reportJob := jobs.NewOrderStatusReportJob(countHandler, metrics, "@every 1m", logger)
//	jobManager := jobs.NewJobManager(reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderStatusReportJob counts stored orders per status, refreshes the
// orders_by_status gauge and logs the totals. A failed run is logged and the
// next run proceeds normally.
package jobs
