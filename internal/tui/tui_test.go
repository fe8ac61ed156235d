package tui

import (
	"context"
	"sync"
	"time"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func orderView(id kernel.UUID, status order.Status, version, minute int) queries.OrderView {
	return queries.OrderView{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  4,
		Items: []queries.OrderItemView{{
			Name:      "Masala Dosa",
			Quantity:  2,
			UnitPrice: kernel.MustMoney(1000),
			Subtotal:  kernel.MustMoney(2000),
		}},
		Total:     kernel.MustMoney(2000),
		Status:    status,
		Version:   version,
		CreatedAt: epoch.Add(time.Duration(minute) * time.Minute),
	}
}

var restaurantID = kernel.NewUUID()

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// stubSubscription hands out whatever the test pushes into updates.
type stubSubscription struct {
	updates chan viewer.Update
	closed  chan struct{}
	once    sync.Once
}

func newStubSubscription(updates ...viewer.Update) *stubSubscription {
	s := &stubSubscription{
		updates: make(chan viewer.Update, len(updates)+4),
		closed:  make(chan struct{}),
	}
	for _, u := range updates {
		s.updates <- u
	}
	return s
}

func (s *stubSubscription) Next(ctx context.Context) (viewer.Update, error) {
	select {
	case <-s.closed:
		return viewer.Update{}, viewer.ErrClosed
	default:
	}
	select {
	case u := <-s.updates:
		return u, nil
	case <-s.closed:
		return viewer.Update{}, viewer.ErrClosed
	case <-ctx.Done():
		return viewer.Update{}, ctx.Err()
	}
}

func (s *stubSubscription) Close() {
	s.once.Do(func() { close(s.closed) })
}

func (s *stubSubscription) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

type stubWatcher struct {
	sub      *stubSubscription
	err      error
	interest viewer.Interest
}

func (w *stubWatcher) Watch(_ context.Context, interest viewer.Interest) (viewer.Subscription, error) {
	w.interest = interest
	if w.err != nil {
		return nil, w.err
	}
	return w.sub, nil
}

type actionsMock struct {
	mock.Mock
}

func (m *actionsMock) ChangeOrderStatus(ctx context.Context, id kernel.UUID, target order.Status) (queries.OrderView, error) {
	args := m.Called(ctx, id, target)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

func (m *actionsMock) DeleteOrder(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *actionsMock) DeleteCompletedOrders(ctx context.Context, restaurantID kernel.UUID) (int, error) {
	args := m.Called(ctx, restaurantID)
	return args.Int(0), args.Error(1)
}
