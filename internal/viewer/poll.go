package viewer

import (
	"context"
	"sync"
	"time"

	"qrave/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultOrderPollInterval = 3 * time.Second
	DefaultListPollInterval  = 5 * time.Second
)

// PollWatcher re-fetches full snapshots on a fixed interval. Every
// subscription owns its scheduler, so closing one never affects another.
type PollWatcher struct {
	source        Source
	orderInterval time.Duration
	listInterval  time.Duration
	fetchTimeout  time.Duration
	logger        *zap.Logger
}

type PollOption func(*PollWatcher)

// WithOrderInterval sets how often a single order is re-fetched.
func WithOrderInterval(d time.Duration) PollOption {
	return func(w *PollWatcher) {
		if d > 0 {
			w.orderInterval = d
		}
	}
}

// WithListInterval sets how often a restaurant's order list is re-fetched.
func WithListInterval(d time.Duration) PollOption {
	return func(w *PollWatcher) {
		if d > 0 {
			w.listInterval = d
		}
	}
}

func NewPollWatcher(source Source, log *zap.Logger, opts ...PollOption) *PollWatcher {
	w := &PollWatcher{
		source:        source,
		orderInterval: DefaultOrderPollInterval,
		listInterval:  DefaultListPollInterval,
		fetchTimeout:  10 * time.Second,
		logger:        log.Named("poll_watcher"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ Watcher = (*PollWatcher)(nil)

// Watch fetches once right away and then on every tick. A tick that comes
// while the previous fetch is still running is skipped. The subscription
// closes itself when ctx ends.
func (w *PollWatcher) Watch(ctx context.Context, interest Interest) (Subscription, error) {
	if err := interest.Validate(); err != nil {
		return nil, err
	}

	interval := w.listInterval
	if interest.OrderID != nil {
		interval = w.orderInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &pollSubscription{
		feed:   newFeed(),
		cancel: cancel,
	}
	s.cron = cron.New(
		cron.WithLogger(logger.NewCronLogger(w.logger)),
		cron.WithChain(cron.SkipIfStillRunning(logger.NewCronLogger(w.logger))),
	)
	poll := cron.FuncJob(func() { w.poll(ctx, s.feed, interest) })
	first := s.cron.Entry(s.cron.Schedule(every(interval), poll))

	s.cron.Start()
	go first.WrappedJob.Run()
	go func() {
		<-ctx.Done()
		s.Close()
	}()

	w.logger.Debug("Polling started", zap.Duration("interval", interval))
	return s, nil
}

func (w *PollWatcher) poll(ctx context.Context, f *feed, interest Interest) {
	if ctx.Err() != nil {
		return
	}
	fetchCtx, cancel := context.WithTimeout(ctx, w.fetchTimeout)
	defer cancel()

	orders, err := snapshot(fetchCtx, w.source, interest)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		w.logger.Warn("Poll failed", zap.Error(err))
		return
	}
	f.putSnapshot(orders)
}

type pollSubscription struct {
	*feed
	cron   *cron.Cron
	cancel context.CancelFunc
	once   sync.Once
}

func (s *pollSubscription) Next(ctx context.Context) (Update, error) {
	return s.feed.next(ctx)
}

// Close stops the scheduler and cancels a fetch in flight. The result of
// that fetch is dropped.
func (s *pollSubscription) Close() {
	s.once.Do(func() {
		s.cancel()
		s.feed.close()
		<-s.cron.Stop().Done()
	})
}

// every is a fixed-delay schedule. Unlike cron.Every it keeps sub-second
// precision.
type every time.Duration

func (d every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}
