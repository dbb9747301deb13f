// Package jobs provides scheduled background tasks for shippix.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// HandoffSweepJob removes handoffs whose TTL passed before a page redeemed
// them. The schedule comes from HANDOFF_SWEEP_SCHEDULE and defaults to the top
// of every minute ("0 * * * * *").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.HandoffSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A schedule that does
// not parse makes StartAll fail.
package jobs
