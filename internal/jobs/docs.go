// Package jobs provides the background tasks of the ordering service.
//
// Jobs are scheduled with github.com/robfig/cron/v3 using a seconds field.
//
// # Available Jobs
//
// 1. OutboxRelayJob - drains the order_events outbox into the event bus every
// second and immediately whenever Trigger is called after a committed write.
// 2. OutboxCleanupJob - purges published outbox rows past their retention.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, purgeHandler, jobs.Config{}, logger)
//	uowFactory.OnCommit(jobManager.Relay().Trigger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. Overlapping ticks are
// skipped. Failed job starts stop any already running jobs.
package jobs
