package jobs

import (
	"context"
	"time"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type PublishedEventsPurger interface {
	Handle(ctx context.Context, cmd commands.PurgePublishedEventsCommand) (int, error)
}

// OutboxCleanupJob deletes published outbox rows older than the retention.
type OutboxCleanupJob struct {
	purger    PublishedEventsPurger
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOutboxCleanupJob(purger PublishedEventsPurger, retention time.Duration, schedule string, log *zap.Logger) *OutboxCleanupJob {
	log = log.Named("outbox_cleanup_job")
	return &OutboxCleanupJob{
		purger:    purger,
		retention: retention,
		schedule:  schedule,
		cron: cron.New(cron.WithSeconds(), cron.WithChain(
			cron.SkipIfStillRunning(logger.NewCronLogger(log)),
		)),
		logger: log,
	}
}

func (j *OutboxCleanupJob) Start() error {
	cmd, err := commands.NewPurgePublishedEventsCommand(j.retention)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, runErr := j.purger.Handle(ctx, cmd)
		if runErr != nil {
			j.logger.Error("Outbox cleanup failed", zap.Error(runErr))
			return
		}
		if n > 0 {
			j.logger.Info("Purged published order events", zap.Int("deleted", n))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox cleanup job started", zap.String("schedule", j.schedule), zap.Duration("retention", j.retention))
	return nil
}

func (j *OutboxCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox cleanup job stopped")
}
