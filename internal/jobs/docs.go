// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Drains the transactional outbox to the message bus on a schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, bus, schedule, batchSize, logger)
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
// The relay defaults to the cron expression "* * * * * *", once per second,
// keeping event delivery close to commit time without coupling publishing to
// the request path.
//
// # Error Handling
//
// A failed publish stops the current batch so insertion order is preserved;
// the affected row stays unpublished and is retried on the next run.
package jobs
