package viewer

import (
	"context"
	"sync"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

// feed is the mailbox behind a subscription. It holds at most one pending
// snapshot and one pending update per order; Next hands out the snapshot
// first, then per-order updates in arrival order.
type feed struct {
	mu       sync.Mutex
	snapshot *Update
	pending  map[kernel.UUID]Update
	queue    []kernel.UUID
	err      error
	closed   bool

	wake chan struct{}
	done chan struct{}
}

func newFeed() *feed {
	return &feed{
		pending: make(map[kernel.UUID]Update),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (f *feed) putSnapshot(orders []queries.OrderView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	u := snapshotUpdate(orders)
	f.snapshot = &u
	f.signal()
}

func (f *feed) put(u Update) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	id := u.orderID()
	prev, ok := f.pending[id]
	if !ok {
		f.pending[id] = u
		f.queue = append(f.queue, id)
		f.signal()
		return
	}
	f.pending[id] = merge(prev, u)
}

// merge keeps the newer of two pending updates for one order. A pending
// full record absorbs later status changes so the order is never lost to
// a viewer that has not seen it yet.
func merge(prev, next Update) Update {
	switch {
	case next.Kind == UpdateRemoved:
		if next.version() >= prev.version() {
			return next
		}
		return prev
	case next.Kind == UpdatePlaced && prev.Kind == UpdateStatus && next.version() >= prev.version():
		return next
	case next.version() <= prev.version():
		return prev
	case prev.Kind == UpdatePlaced && next.Kind == UpdateStatus:
		o := prev.Orders[0]
		o.Status = next.Event.Status
		o.Version = next.Event.Version
		return placedUpdate(o)
	default:
		return next
	}
}

// fail ends the feed with err once everything pending has been read.
func (f *feed) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.err != nil {
		return
	}
	f.err = err
	f.signal()
}

func (f *feed) next(ctx context.Context) (Update, error) {
	for {
		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			return Update{}, ErrClosed
		}
		if f.snapshot != nil {
			u := *f.snapshot
			f.snapshot = nil
			f.mu.Unlock()
			return u, nil
		}
		if len(f.queue) > 0 {
			id := f.queue[0]
			f.queue = f.queue[1:]
			u := f.pending[id]
			delete(f.pending, id)
			f.mu.Unlock()
			return u, nil
		}
		if f.err != nil {
			err := f.err
			f.mu.Unlock()
			return Update{}, err
		}
		f.mu.Unlock()

		select {
		case <-ctx.Done():
			return Update{}, ctx.Err()
		case <-f.done:
		case <-f.wake:
		}
	}
}

// close drops whatever is pending. It reports whether this call closed
// the feed.
func (f *feed) close() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	f.closed = true
	f.snapshot = nil
	f.pending = nil
	f.queue = nil
	close(f.done)
	return true
}

func (f *feed) signal() {
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// statusUpdate turns a bus event into the matching update kind.
func statusUpdate(e order.Event) Update {
	if e.Kind == order.EventDeleted {
		return Update{Kind: UpdateRemoved, Event: e}
	}
	return Update{Kind: UpdateStatus, Event: e}
}
