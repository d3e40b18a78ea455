package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	outboxPurgeJob *OutboxPurgeJob
}

// JobSettings tunes the scheduled jobs.
type JobSettings struct {
	RelayBatchSize  int
	OutboxRetention time.Duration
}

func NewJobManager(
	relayHandler outboxRelayer,
	purgeHandler outboxPurger,
	settings JobSettings,
	logger *zap.SugaredLogger,
) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayHandler, settings.RelayBatchSize, logger),
		outboxPurgeJob: NewOutboxPurgeJob(purgeHandler, settings.OutboxRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.outboxPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.outboxPurgeJob.Stop()
	jm.outboxRelayJob.Stop()
}
