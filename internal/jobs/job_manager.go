package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultRelaySchedule   = "* * * * * *"
	DefaultCleanupSchedule = "0 */10 * * * *"
	DefaultRelayBatchSize  = 100
	DefaultRetention       = 24 * time.Hour
)

// Config tunes the jobs. Zero fields take the defaults above.
type Config struct {
	RelayBatchSize  int
	RelaySchedule   string
	CleanupSchedule string
	Retention       time.Duration
}

func (c Config) withDefaults() Config {
	if c.RelayBatchSize <= 0 {
		c.RelayBatchSize = DefaultRelayBatchSize
	}
	if c.RelaySchedule == "" {
		c.RelaySchedule = DefaultRelaySchedule
	}
	if c.CleanupSchedule == "" {
		c.CleanupSchedule = DefaultCleanupSchedule
	}
	if c.Retention <= 0 {
		c.Retention = DefaultRetention
	}
	return c
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	relayJob   *OutboxRelayJob
	cleanupJob *OutboxCleanupJob
}

func NewJobManager(
	relayer OrderEventRelayer,
	purger PublishedEventsPurger,
	cfg Config,
	logger *zap.Logger,
) *JobManager {
	cfg = cfg.withDefaults()
	return &JobManager{
		relayJob:   NewOutboxRelayJob(relayer, cfg.RelayBatchSize, cfg.RelaySchedule, logger),
		cleanupJob: NewOutboxCleanupJob(purger, cfg.Retention, cfg.CleanupSchedule, logger),
	}
}

// Relay exposes the relay job so committed writes can trigger it.
func (jm *JobManager) Relay() *OutboxRelayJob {
	return jm.relayJob
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.relayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.cleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.relayJob.Stop()
		return fmt.Errorf("failed to start outbox cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cleanupJob.Stop()
	jm.relayJob.Stop()
}
