package jobs

import (
	"context"
	"sync"
	"time"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type OrderEventRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OutboxRelayJob moves committed order events to the bus. A single worker
// goroutine runs the relay; the cron tick and Trigger only wake it, so runs
// never overlap inside one process. A run that fills a whole batch is
// repeated at once until the outbox is drained.
type OutboxRelayJob struct {
	relayer   OrderEventRelayer
	batchSize int
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger

	wake   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelayJob(relayer OrderEventRelayer, batchSize int, schedule string, log *zap.Logger) *OutboxRelayJob {
	log = log.Named("outbox_relay_job")
	return &OutboxRelayJob{
		relayer:   relayer,
		batchSize: batchSize,
		schedule:  schedule,
		timeout:   10 * time.Second,
		cron:      cron.New(cron.WithSeconds(), cron.WithLogger(logger.NewCronLogger(log))),
		logger:    log,
		wake:      make(chan struct{}, 1),
	}
}

// Trigger asks for a run as soon as possible. It never blocks; triggers that
// arrive while a run is pending collapse into that run.
func (j *OutboxRelayJob) Trigger() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOrderEventsCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, j.Trigger); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.loop(ctx, cmd)
	}()

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule), zap.Int("batch_size", j.batchSize))
	return nil
}

func (j *OutboxRelayJob) loop(ctx context.Context, cmd commands.RelayOrderEventsCommand) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-j.wake:
		}

		for ctx.Err() == nil {
			n, err := j.runOnce(ctx, cmd)
			if err != nil {
				j.logger.Error("Outbox relay failed", zap.Int("published", n), zap.Error(err))
				break
			}
			if n > 0 {
				j.logger.Debug("Relayed order events", zap.Int("published", n))
			}
			if n < j.batchSize {
				break
			}
		}
	}
}

func (j *OutboxRelayJob) runOnce(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	return j.relayer.Handle(ctx, cmd)
}

// Stop halts the schedule and waits for a run in progress to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
	j.logger.Info("Outbox relay job stopped")
}
