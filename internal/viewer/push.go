package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// EventStream is one open connection to the server's order event stream.
// Recv blocks until the next event; it fails once the connection is gone.
type EventStream interface {
	Recv() (order.Event, error)
	Close() error
}

// StreamSource is a Source that can also follow order events.
type StreamSource interface {
	Source
	StreamOrderEvents(ctx context.Context, interest Interest) (EventStream, error)
}

// PushWatcher follows the server's event stream. Each connection starts
// with a fresh snapshot, so events missed while disconnected are never
// lost: the snapshot already reflects them.
type PushWatcher struct {
	source     StreamSource
	resync     time.Duration
	newBackOff func() backoff.BackOff
	logger     *zap.Logger
}

type PushOption func(*PushWatcher)

// WithResync re-fetches a snapshot every d while connected. Zero disables
// it.
func WithResync(d time.Duration) PushOption {
	return func(w *PushWatcher) {
		w.resync = d
	}
}

// WithBackOff replaces the reconnect policy. When the policy gives up the
// subscription fails with the last connection error.
func WithBackOff(newBackOff func() backoff.BackOff) PushOption {
	return func(w *PushWatcher) {
		w.newBackOff = newBackOff
	}
}

func NewPushWatcher(source StreamSource, log *zap.Logger, opts ...PushOption) *PushWatcher {
	w := &PushWatcher{
		source:     source,
		newBackOff: defaultBackOff,
		logger:     log.Named("push_watcher"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 0
	return b
}

var _ Watcher = (*PushWatcher)(nil)

func (w *PushWatcher) Watch(ctx context.Context, interest Interest) (Subscription, error) {
	if err := interest.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &pushSubscription{
		feed:   newFeed(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		w.run(ctx, s.feed, interest)
	}()
	go func() {
		<-ctx.Done()
		s.Close()
	}()
	return s, nil
}

func (w *PushWatcher) run(ctx context.Context, f *feed, interest Interest) {
	b := backoff.WithContext(w.newBackOff(), ctx)
	for {
		connected, err := w.follow(ctx, f, interest)
		if ctx.Err() != nil {
			return
		}
		if connected {
			b.Reset()
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			w.logger.Warn("Giving up on order event stream", zap.Error(err))
			f.fail(err)
			return
		}
		w.logger.Warn("Order event stream lost, reconnecting", zap.Error(err), zap.Duration("in", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// follow runs one connection. It reports whether the stream was opened and
// returns why it ended.
func (w *PushWatcher) follow(ctx context.Context, f *feed, interest Interest) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := w.source.StreamOrderEvents(ctx, interest)
	if err != nil {
		return false, err
	}
	defer stream.Close()

	// The snapshot is taken after the stream is open so that no change can
	// fall between the two.
	orders, err := snapshot(ctx, w.source, interest)
	if err != nil {
		return true, err
	}
	f.putSnapshot(orders)

	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()
	if w.resync > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.resyncLoop(ctx, f, interest)
		}()
	}

	for {
		e, recvErr := stream.Recv()
		if recvErr != nil {
			return true, recvErr
		}
		if e.Kind != order.EventPlaced {
			f.put(statusUpdate(e))
			continue
		}

		o, getErr := w.source.GetOrder(ctx, e.OrderID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			// Deleted since; its removal event follows.
		case getErr != nil:
			return true, getErr
		default:
			f.put(placedUpdate(o))
		}
	}
}

func (w *PushWatcher) resyncLoop(ctx context.Context, f *feed, interest Interest) {
	ticker := time.NewTicker(w.resync)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		orders, err := snapshot(ctx, w.source, interest)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			w.logger.Warn("Resync failed", zap.Error(err))
			continue
		}
		f.putSnapshot(orders)
	}
}

type pushSubscription struct {
	*feed
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *pushSubscription) Next(ctx context.Context) (Update, error) {
	return s.feed.next(ctx)
}

// Close ends the stream and waits until the connection is released.
func (s *pushSubscription) Close() {
	s.once.Do(func() {
		s.cancel()
		s.feed.close()
		<-s.done
	})
}
