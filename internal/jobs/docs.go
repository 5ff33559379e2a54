// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to deliver the payment notifications
// queued by the payment status workflow
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	queue := dispatch.NewQueueDispatcher(notifier, logger, dispatch.DefaultQueueSize)
//	jobManager := jobs.NewJobManager(jobs.NewNotificationDispatchJob(queue, logger))
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
// The dispatch job uses the cron expression "* * * * * *" (every second). A run
// that is still delivering when the next tick fires causes that tick to be skipped.
//
// # Error Handling
//
// - Delivery failures are logged by the dispatcher and never stop the job
// - Stopping the dispatch job delivers whatever is still queued
// - Failed job starts will stop any already running jobs
package jobs
