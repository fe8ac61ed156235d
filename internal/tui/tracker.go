package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
	"qrave/internal/viewer"
)

type (
	orderChangedMsg struct {
		view queries.OrderView
	}

	trackFinishedMsg struct {
		view queries.OrderView
		err  error
	}
)

// progress is the happy path a diner sees.
var progress = []order.Status{order.Pending, order.Preparing, order.Ready, order.Completed}

// OrderTracker shows a diner the live state of one order until it is
// completed or cancelled.
type OrderTracker struct {
	ctx     context.Context
	cancel  context.CancelFunc
	orderID kernel.UUID
	tracker *viewer.Tracker
	changes chan queries.OrderView

	current queries.OrderView
	known   bool
	done    bool
	err     error

	help help.Model
	keys trackerKeys
}

func NewOrderTracker(ctx context.Context, watcher viewer.Watcher, orderID kernel.UUID) *OrderTracker {
	ctx, cancel := context.WithCancel(ctx)
	return &OrderTracker{
		ctx:     ctx,
		cancel:  cancel,
		orderID: orderID,
		tracker: viewer.NewTracker(watcher, orderID),
		changes: make(chan queries.OrderView, 8),
		help:    help.New(),
		keys:    defaultTrackerKeys(),
	}
}

func (t *OrderTracker) Init() tea.Cmd {
	return tea.Batch(t.run(), t.waitForChange())
}

func (t *OrderTracker) run() tea.Cmd {
	tracker, ctx, changes := t.tracker, t.ctx, t.changes
	return func() tea.Msg {
		final, err := tracker.Run(ctx, func(v queries.OrderView) {
			select {
			case changes <- v:
			case <-ctx.Done():
			}
		})
		return trackFinishedMsg{view: final, err: err}
	}
}

func (t *OrderTracker) waitForChange() tea.Cmd {
	ctx, changes := t.ctx, t.changes
	return func() tea.Msg {
		select {
		case v := <-changes:
			return orderChangedMsg{view: v}
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *OrderTracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.help.Width = msg.Width
		return t, nil

	case orderChangedMsg:
		t.observe(msg.view)
		if t.done {
			return t, nil
		}
		return t, t.waitForChange()

	case trackFinishedMsg:
		t.done = true
		if msg.err == nil {
			t.observe(msg.view)
		} else if !errors.Is(msg.err, context.Canceled) {
			t.err = msg.err
		}
		t.cancel()
		return t, nil

	case tea.KeyMsg:
		if key.Matches(msg, t.keys.Quit) {
			t.cancel()
			return t, tea.Quit
		}
	}
	return t, nil
}

// observe keeps the newest state; the final state and the last change can
// arrive in either order.
func (t *OrderTracker) observe(v queries.OrderView) {
	if t.known && v.Version < t.current.Version {
		return
	}
	t.current = v
	t.known = true
}

// Result returns the last known state and the error that ended tracking,
// if any.
func (t *OrderTracker) Result() (queries.OrderView, bool, error) {
	return t.current, t.known, t.err
}

func (t *OrderTracker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order "+shortID(t.orderID)) + "\n")

	switch {
	case errors.Is(t.err, errs.ErrObjectNotFound):
		b.WriteString(errorStyle.Render("This order no longer exists.") + "\n")
	case t.err != nil:
		b.WriteString(errorStyle.Render("error: "+t.err.Error()) + "\n")
	case !t.known:
		b.WriteString(subtleStyle.Render("Looking up your order...") + "\n")
	}

	if t.known {
		b.WriteString(t.render(t.current) + "\n")
	}
	if t.done && t.err == nil {
		b.WriteString(subtleStyle.Render("Tracking finished.") + "\n")
	}

	b.WriteString(t.help.View(t.keys))
	return b.String()
}

func (t *OrderTracker) render(o queries.OrderView) string {
	lines := []string{
		fmt.Sprintf("Table %d  %s", o.TableNumber, statusBadge(o.Status)),
		progressLine(o.Status),
		"",
	}
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("%d × %-24s %10s", it.Quantity, it.Name, it.Subtotal))
	}
	lines = append(lines, fmt.Sprintf("%-28s %10s", "Total", o.Total))
	if o.CustomerNote != "" {
		lines = append(lines, subtleStyle.Render("note: "+o.CustomerNote))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func progressLine(current order.Status) string {
	if current == order.Cancelled {
		return statusBadge(order.Cancelled)
	}
	steps := make([]string, len(progress))
	for i, s := range progress {
		if s.Priority() <= current.Priority() {
			steps[i] = statusBadge(s)
		} else {
			steps[i] = subtleStyle.Render(s.String())
		}
	}
	return strings.Join(steps, subtleStyle.Render(" → "))
}
