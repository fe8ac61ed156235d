// Package tui holds the terminal screens of the console client.
//
// Screens are bubbletea models and follow the Elm architecture: all state
// lives in the model, Update folds one message into it and returns the
// next command, View renders the state. Anything that blocks (waiting for
// the next viewer update, calling the API) runs inside a tea.Cmd and comes
// back as a message.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/viewer"
)

// OrderActions are the staff operations the dashboard triggers.
// *client.Client implements it.
type OrderActions interface {
	ChangeOrderStatus(ctx context.Context, id kernel.UUID, target order.Status) (queries.OrderView, error)
	DeleteOrder(ctx context.Context, id kernel.UUID) error
	DeleteCompletedOrders(ctx context.Context, restaurantID kernel.UUID) (int, error)
}

type (
	subscribedMsg struct {
		sub viewer.Subscription
	}

	boardUpdateMsg struct {
		update viewer.Update
	}

	// watchEndedMsg means the subscription will not deliver anything else.
	watchEndedMsg struct {
		err error
	}

	statusChangedMsg struct {
		view queries.OrderView
	}

	orderDeletedMsg struct {
		id kernel.UUID
	}

	completedClearedMsg struct {
		ids   []kernel.UUID
		count int
	}

	actionFailedMsg struct {
		err error
	}
)

var columns = []table.Column{
	{Title: "Order", Width: 8},
	{Title: "Table", Width: 5},
	{Title: "Status", Width: 10},
	{Title: "Items", Width: 40},
	{Title: "Total", Width: 10},
	{Title: "Placed", Width: 6},
}

// Kitchen is the staff dashboard of one restaurant: a live order board
// plus the keys that move orders through their lifecycle.
type Kitchen struct {
	ctx          context.Context
	restaurantID kernel.UUID
	title        string

	watcher viewer.Watcher
	actions OrderActions
	sub     viewer.Subscription

	board *viewer.Board
	rows  []queries.OrderView
	table table.Model
	help  help.Model
	keys  kitchenKeys

	notice string
	err    error
	live   bool
}

// KitchenOption customizes a Kitchen.
type KitchenOption func(*Kitchen)

// WithTitle replaces the restaurant id in the header.
func WithTitle(title string) KitchenOption {
	return func(k *Kitchen) {
		if title != "" {
			k.title = title
		}
	}
}

func NewKitchen(
	ctx context.Context,
	restaurantID kernel.UUID,
	watcher viewer.Watcher,
	actions OrderActions,
	opts ...KitchenOption,
) *Kitchen {
	k := &Kitchen{
		ctx:          ctx,
		restaurantID: restaurantID,
		title:        restaurantID.String(),
		watcher:      watcher,
		actions:      actions,
		board:        viewer.NewBoard(),
		table: table.New(
			table.WithColumns(columns),
			table.WithFocused(true),
			table.WithHeight(15),
			table.WithStyles(tableStyles()),
		),
		help: help.New(),
		keys: defaultKitchenKeys(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kitchen) Init() tea.Cmd {
	watcher, ctx, interest := k.watcher, k.ctx, viewer.RestaurantInterest(k.restaurantID)
	return func() tea.Msg {
		sub, err := watcher.Watch(ctx, interest)
		if err != nil {
			return watchEndedMsg{err: err}
		}
		return subscribedMsg{sub: sub}
	}
}

func (k *Kitchen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		k.help.Width = msg.Width
		if h := msg.Height - 8; h > 3 {
			k.table.SetHeight(h)
		}
		return k, nil

	case subscribedMsg:
		k.sub = msg.sub
		k.live = true
		return k, k.waitForUpdate()

	case boardUpdateMsg:
		if k.board.Apply(msg.update) {
			k.refreshRows()
		}
		return k, k.waitForUpdate()

	case watchEndedMsg:
		k.live = false
		if msg.err != nil && !errors.Is(msg.err, viewer.ErrClosed) && !errors.Is(msg.err, context.Canceled) {
			k.err = msg.err
		}
		return k, nil

	case statusChangedMsg:
		v := msg.view
		k.board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: order.Event{
			Kind:         order.EventStatusChanged,
			OrderID:      v.ID,
			RestaurantID: v.RestaurantID,
			Status:       v.Status,
			Version:      v.Version,
		}})
		k.refreshRows()
		k.setNotice(fmt.Sprintf("order %s is now %s", shortID(v.ID), v.Status))
		return k, nil

	case orderDeletedMsg:
		k.board.Dismiss(msg.id)
		k.refreshRows()
		k.setNotice(fmt.Sprintf("order %s deleted", shortID(msg.id)))
		return k, nil

	case completedClearedMsg:
		for _, id := range msg.ids {
			k.board.Dismiss(id)
		}
		k.refreshRows()
		k.setNotice(fmt.Sprintf("cleared %d completed orders", msg.count))
		return k, nil

	case actionFailedMsg:
		k.err = msg.err
		k.notice = ""
		return k, nil

	case tea.KeyMsg:
		return k.handleKey(msg)
	}
	return k, nil
}

func (k *Kitchen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, k.keys.Quit):
		k.close()
		return k, tea.Quit
	case key.Matches(msg, k.keys.Help):
		k.help.ShowAll = !k.help.ShowAll
		return k, nil
	case key.Matches(msg, k.keys.Accept):
		return k, k.transition(order.Preparing)
	case key.Matches(msg, k.keys.Ready):
		return k, k.transition(order.Ready)
	case key.Matches(msg, k.keys.Complete):
		return k, k.transition(order.Completed)
	case key.Matches(msg, k.keys.Cancel):
		return k, k.transition(order.Cancelled)
	case key.Matches(msg, k.keys.Delete):
		return k, k.deleteSelected()
	case key.Matches(msg, k.keys.ClearCompleted):
		return k, k.clearCompleted()
	}

	var cmd tea.Cmd
	k.table, cmd = k.table.Update(msg)
	return k, cmd
}

// waitForUpdate blocks on the subscription inside a command; every
// delivered update schedules the next wait.
func (k *Kitchen) waitForUpdate() tea.Cmd {
	sub, ctx := k.sub, k.ctx
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		u, err := sub.Next(ctx)
		if err != nil {
			return watchEndedMsg{err: err}
		}
		return boardUpdateMsg{update: u}
	}
}

func (k *Kitchen) transition(target order.Status) tea.Cmd {
	selected, ok := k.selected()
	if !ok {
		return nil
	}
	if !selected.Status.CanTransitionTo(target) {
		k.err = fmt.Errorf("order %s cannot move %s -> %s", shortID(selected.ID), selected.Status, target)
		k.notice = ""
		return nil
	}

	actions, ctx, id := k.actions, k.ctx, selected.ID
	return func() tea.Msg {
		v, err := actions.ChangeOrderStatus(ctx, id, target)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return statusChangedMsg{view: v}
	}
}

func (k *Kitchen) deleteSelected() tea.Cmd {
	selected, ok := k.selected()
	if !ok {
		return nil
	}
	actions, ctx, id := k.actions, k.ctx, selected.ID
	return func() tea.Msg {
		if err := actions.DeleteOrder(ctx, id); err != nil {
			return actionFailedMsg{err: err}
		}
		return orderDeletedMsg{id: id}
	}
}

func (k *Kitchen) clearCompleted() tea.Cmd {
	var completed []kernel.UUID
	for _, o := range k.rows {
		if o.Status == order.Completed {
			completed = append(completed, o.ID)
		}
	}
	actions, ctx, rid := k.actions, k.ctx, k.restaurantID
	return func() tea.Msg {
		n, err := actions.DeleteCompletedOrders(ctx, rid)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return completedClearedMsg{ids: completed, count: n}
	}
}

func (k *Kitchen) selected() (queries.OrderView, bool) {
	i := k.table.Cursor()
	if i < 0 || i >= len(k.rows) {
		return queries.OrderView{}, false
	}
	return k.rows[i], true
}

// refreshRows rebuilds the table from the board and keeps the cursor on
// the order it pointed at.
func (k *Kitchen) refreshRows() {
	prev, hadSelection := k.selected()

	k.rows = k.board.Orders()
	rows := make([]table.Row, len(k.rows))
	for i, o := range k.rows {
		rows[i] = table.Row{
			shortID(o.ID),
			strconv.Itoa(o.TableNumber),
			o.Status.String(),
			itemsSummary(o.Items),
			o.Total.String(),
			o.CreatedAt.Local().Format("15:04"),
		}
	}
	k.table.SetRows(rows)

	cursor := 0
	if hadSelection {
		for i, o := range k.rows {
			if o.ID.IsEqual(prev.ID) {
				cursor = i
				break
			}
		}
	}
	k.table.SetCursor(cursor)
}

func (k *Kitchen) setNotice(s string) {
	k.notice = s
	k.err = nil
}

func (k *Kitchen) close() {
	if k.sub != nil {
		k.sub.Close()
	}
	k.live = false
}

func (k *Kitchen) View() string {
	var b strings.Builder

	state := subtleStyle.Render("connecting")
	if k.live {
		state = noticeStyle.Render("live")
	} else if k.sub != nil {
		state = errorStyle.Render("offline")
	}
	b.WriteString(titleStyle.Render("Kitchen · "+k.title) + "  " + state + "\n")

	if len(k.rows) == 0 {
		b.WriteString(panelStyle.Render(subtleStyle.Render("No orders yet.")) + "\n")
	} else {
		b.WriteString(k.table.View() + "\n")
		if o, ok := k.selected(); ok {
			b.WriteString(k.detail(o) + "\n")
		}
	}

	switch {
	case k.err != nil:
		b.WriteString(errorStyle.Render("error: "+k.err.Error()) + "\n")
	case k.notice != "":
		b.WriteString(noticeStyle.Render(k.notice) + "\n")
	}

	b.WriteString(k.help.View(k.keys))
	return b.String()
}

func (k *Kitchen) detail(o queries.OrderView) string {
	lines := []string{
		fmt.Sprintf("Order %s  table %d  %s", shortID(o.ID), o.TableNumber, statusBadge(o.Status)),
	}
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("  %d × %-24s %10s", it.Quantity, it.Name, it.Subtotal))
	}
	if o.CustomerNote != "" {
		lines = append(lines, subtleStyle.Render("  note: "+o.CustomerNote))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Orders returns the board in display order.
func (k *Kitchen) Orders() []queries.OrderView {
	return k.board.Orders()
}

func shortID(id kernel.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func itemsSummary(items []queries.OrderItemView) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d× %s", it.Quantity, it.Name)
	}
	return strings.Join(parts, ", ")
}
