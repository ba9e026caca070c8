// Package jobs provides scheduled background tasks for the parcel tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. OverdueParcelJob - Sweeps active parcels past their estimated delivery
// time and flags each one with a DELIVERY_DELAYED event
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagOverdueHandler, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue sweep takes a six-field cron expression (with seconds); the
// default configuration runs it once a minute. A parcel already carrying a
// DELIVERY_DELAYED event is skipped, so repeated sweeps stay idempotent.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
