// Package jobs runs the background work of the sales service on a
// robfig/cron scheduler with second precision.
//
// OutboxRelayJob fires every second and hands pending outbox messages to the
// broker in the order they were written. Overlapping ticks are skipped, so a
// slow broker delays the relay instead of reordering it. A failed pass is
// logged and the remaining messages wait for the next tick.
//
// OutboxPurgeJob fires at the top of every hour and removes messages that
// were published longer ago than the configured retention.
//
//	jobManager := jobs.NewJobManager(relayHandler, purgeHandler, jobs.JobSettings{
//		RelayBatchSize:  100,
//		OutboxRetention: 7 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// StartAll stops the jobs it already started when a later one fails.
package jobs
