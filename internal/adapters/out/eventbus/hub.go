package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var ErrSubscriptionClosed = errors.New("subscription closed")

// ErrListenerReset is returned by a listener whose connection was
// re-established. Events published in between were not received.
var ErrListenerReset = errors.New("event listener reconnected")

// Interest selects the events a subscription receives: every order of a
// restaurant, or a single order. Exactly one of the ids is set.
type Interest struct {
	OrderID      *kernel.UUID
	RestaurantID *kernel.UUID
}

func OrderInterest(id kernel.UUID) Interest {
	return Interest{OrderID: &id}
}

func RestaurantInterest(id kernel.UUID) Interest {
	return Interest{RestaurantID: &id}
}

func (i Interest) matches(e order.Event) bool {
	if i.OrderID != nil {
		return i.OrderID.IsEqual(e.OrderID)
	}
	if i.RestaurantID != nil {
		return i.RestaurantID.IsEqual(e.RestaurantID)
	}
	return false
}

// Hub dispatches events received from a bus to local subscriptions.
type Hub struct {
	log *zap.Logger

	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{log: log.Named("hub"), subs: map[*Subscription]struct{}{}}
}

// Run feeds the hub from listener until ctx is done, reconnecting with
// exponential backoff whenever Listen returns. Every listener gap may have
// lost events, so open subscriptions are closed after it and again before
// the next Listen; their readers reconnect and start from a fresh snapshot.
func (h *Hub) Run(ctx context.Context, listener ports.EventListener) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0

	for {
		started := time.Now()
		err := listener.Listen(ctx, h.Dispatch)
		if ctx.Err() != nil {
			return
		}
		dropped := h.reset()
		if time.Since(started) > b.MaxInterval || errors.Is(err, ErrListenerReset) {
			b.Reset()
		}
		wait := b.NextBackOff()
		h.log.Warn("event listener stopped, reconnecting",
			zap.Error(err), zap.Duration("in", wait), zap.Int("closedSubscriptions", dropped))

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		h.reset()
	}
}

// reset closes every open subscription but keeps accepting new ones.
func (h *Hub) reset() int {
	h.mu.Lock()
	subs := h.subs
	h.subs = map[*Subscription]struct{}{}
	h.mu.Unlock()

	for s := range subs {
		s.close()
	}
	return len(subs)
}

// Subscribe registers a subscription. It is removed by Subscription.Close or
// by Hub.Close.
func (h *Hub) Subscribe(interest Interest) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrSubscriptionClosed
	}
	s := newSubscription(h, interest)
	h.subs[s] = struct{}{}
	return s, nil
}

// Dispatch offers e to every matching subscription. It never blocks on a
// slow subscriber.
func (h *Hub) Dispatch(e order.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if s.interest.matches(e) {
			s.offer(e)
		}
	}
}

// Subscribers reports the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.reset()
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

// Subscription buffers at most one event per order. It remembers the last
// version handed out per order until that order's deletion is handed out. A newer event for an
// order that is still pending replaces the older one in place, so a slow
// reader skips intermediate states but never falls behind the latest.
type Subscription struct {
	hub      *Hub
	interest Interest

	mu      sync.Mutex
	queue   []kernel.UUID
	pending map[kernel.UUID]order.Event
	seen    map[kernel.UUID]int
	closed  bool

	ready chan struct{}
	done  chan struct{}
}

func newSubscription(h *Hub, interest Interest) *Subscription {
	return &Subscription{
		hub:      h,
		interest: interest,
		pending:  map[kernel.UUID]order.Event{},
		seen:     map[kernel.UUID]int{},
		ready:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// supersedes reports whether next should replace prev. A deletion carries
// the last known version, so it wins a tie.
func supersedes(next order.Event, prevVersion int) bool {
	if next.Version > prevVersion {
		return true
	}
	return next.Version == prevVersion && next.Kind == order.EventDeleted
}

func (s *Subscription) offer(e order.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if v, ok := s.seen[e.OrderID]; ok && !supersedes(e, v) {
		return
	}
	if prev, ok := s.pending[e.OrderID]; ok {
		if supersedes(e, prev.Version) {
			s.pending[e.OrderID] = e
		}
		return
	}
	s.pending[e.OrderID] = e
	s.queue = append(s.queue, e.OrderID)

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Next blocks until an event is available, ctx is done or the subscription
// is closed.
func (s *Subscription) Next(ctx context.Context) (order.Event, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return order.Event{}, ErrSubscriptionClosed
		}
		if len(s.queue) > 0 {
			id := s.queue[0]
			s.queue = s.queue[1:]
			e := s.pending[id]
			delete(s.pending, id)
			if e.Kind == order.EventDeleted {
				delete(s.seen, id)
			} else {
				s.seen[id] = e.Version
			}
			more := len(s.queue) > 0
			s.mu.Unlock()
			if more {
				select {
				case s.ready <- struct{}{}:
				default:
				}
			}
			return e, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return order.Event{}, ctx.Err()
		case <-s.done:
			return order.Event{}, ErrSubscriptionClosed
		case <-s.ready:
		}
	}
}

// Done is closed when the subscription is closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Close() {
	s.hub.remove(s)
	s.close()
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = nil
	s.pending = nil
	s.seen = nil
	close(s.done)
}
