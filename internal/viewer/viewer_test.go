package viewer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
	"qrave/internal/viewer"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func view(id kernel.UUID, status order.Status, version int, minute int) queries.OrderView {
	return queries.OrderView{
		ID:          id,
		TableNumber: 1,
		Status:      status,
		Version:     version,
		Total:       kernel.MustMoney(1000),
		CreatedAt:   epoch.Add(time.Duration(minute) * time.Minute),
	}
}

func statusEvent(id kernel.UUID, status order.Status, version int) order.Event {
	return order.Event{Kind: order.EventStatusChanged, OrderID: id, Status: status, Version: version, OccurredAt: epoch}
}

func ids(orders []queries.OrderView) []kernel.UUID {
	out := make([]kernel.UUID, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func nextUpdate(t *testing.T, sub viewer.Subscription) viewer.Update {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	u, err := sub.Next(ctx)
	require.NoError(t, err)
	return u
}

// fakeSource serves records from memory and counts fetches.
type fakeSource struct {
	mu     sync.Mutex
	orders map[kernel.UUID]queries.OrderView
	list   []queries.OrderView
	err    error
	gets   int
	lists  int

	// onGet, when set, replaces the stored record for every GetOrder call.
	onGet func(call int) queries.OrderView
}

func newFakeSource(orders ...queries.OrderView) *fakeSource {
	s := &fakeSource{orders: map[kernel.UUID]queries.OrderView{}}
	for _, o := range orders {
		s.orders[o.ID] = o
		s.list = append(s.list, o)
	}
	return s
}

func (s *fakeSource) GetOrder(_ context.Context, id kernel.UUID) (queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.err != nil {
		return queries.OrderView{}, s.err
	}
	if s.onGet != nil {
		return s.onGet(s.gets), nil
	}
	o, ok := s.orders[id]
	if !ok {
		return queries.OrderView{}, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (s *fakeSource) ListOrders(_ context.Context, _ kernel.UUID) ([]queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.err != nil {
		return nil, s.err
	}
	return append([]queries.OrderView(nil), s.list...), nil
}

func (s *fakeSource) put(o queries.OrderView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	for i := range s.list {
		if s.list[i].ID.IsEqual(o.ID) {
			s.list[i] = o
			return
		}
	}
	s.list = append(s.list, o)
}

func (s *fakeSource) fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets + s.lists
}
