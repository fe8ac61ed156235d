package viewer_test

import (
	"testing"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_SnapshotIsSortedForDisplay(t *testing.T) {
	// Given
	board := viewer.NewBoard()
	oldPending := view(kernel.NewUUID(), order.Pending, 1, 1)
	newPending := view(kernel.NewUUID(), order.Pending, 1, 5)
	ready := view(kernel.NewUUID(), order.Ready, 3, 9)
	cancelled := view(kernel.NewUUID(), order.Cancelled, 2, 10)

	// When
	changed := board.Apply(viewer.Update{
		Kind:   viewer.UpdateSnapshot,
		Orders: []queries.OrderView{ready, cancelled, oldPending, newPending},
	})

	// Then
	assert.True(t, changed)
	assert.Equal(t, []kernel.UUID{newPending.ID, oldPending.ID, ready.ID, cancelled.ID}, ids(board.Orders()))
}

func TestBoard_StatusUpdates(t *testing.T) {
	setup := func() (*viewer.Board, queries.OrderView, queries.OrderView) {
		board := viewer.NewBoard()
		a := view(kernel.NewUUID(), order.Pending, 1, 1)
		b := view(kernel.NewUUID(), order.Preparing, 2, 2)
		board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{a, b}})
		return board, a, b
	}

	t.Run("newer version replaces status and resorts", func(t *testing.T) {
		board, a, b := setup()

		changed := board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(a.ID, order.Preparing, 2)})

		assert.True(t, changed)
		got, ok := board.Get(a.ID)
		require.True(t, ok)
		assert.Equal(t, order.Preparing, got.Status)
		assert.Equal(t, 2, got.Version)
		assert.Equal(t, a.TableNumber, got.TableNumber)
		assert.Equal(t, []kernel.UUID{b.ID, a.ID}, ids(board.Orders()))
	})

	t.Run("stale version is ignored", func(t *testing.T) {
		board, _, b := setup()

		changed := board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(b.ID, order.Pending, 1)})

		assert.False(t, changed)
		got, _ := board.Get(b.ID)
		assert.Equal(t, order.Preparing, got.Status)
	})

	t.Run("terminal order never regresses", func(t *testing.T) {
		board, a, _ := setup()
		require.True(t, board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(a.ID, order.Cancelled, 2)}))

		changed := board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(a.ID, order.Preparing, 3)})

		assert.False(t, changed)
		got, _ := board.Get(a.ID)
		assert.Equal(t, order.Cancelled, got.Status)
	})

	t.Run("unknown order is not invented from a status change", func(t *testing.T) {
		board, _, _ := setup()

		changed := board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(kernel.NewUUID(), order.Ready, 3)})

		assert.False(t, changed)
		assert.Equal(t, 2, board.Len())
	})
}

func TestBoard_Removal(t *testing.T) {
	t.Run("removed order never comes back", func(t *testing.T) {
		// Given
		board := viewer.NewBoard()
		done := view(kernel.NewUUID(), order.Completed, 4, 1)
		board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{done}})

		// When
		removed := board.Apply(viewer.Update{Kind: viewer.UpdateRemoved, Event: order.NewDeletedEvent(done.ID, kernel.NewUUID(), order.Completed, 4)})
		stale := board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{done}})
		placed := board.Apply(viewer.Update{Kind: viewer.UpdatePlaced, Orders: []queries.OrderView{done}})

		// Then
		assert.True(t, removed)
		assert.False(t, stale)
		assert.False(t, placed)
		assert.Zero(t, board.Len())
	})

	t.Run("dismissed order is ignored afterwards", func(t *testing.T) {
		board := viewer.NewBoard()
		o := view(kernel.NewUUID(), order.Pending, 1, 1)
		board.Apply(viewer.Update{Kind: viewer.UpdatePlaced, Orders: []queries.OrderView{o}})

		assert.True(t, board.Dismiss(o.ID))
		assert.False(t, board.Apply(viewer.Update{Kind: viewer.UpdateStatus, Event: statusEvent(o.ID, order.Preparing, 2)}))
		assert.False(t, board.Apply(viewer.Update{Kind: viewer.UpdatePlaced, Orders: []queries.OrderView{o}}))
		assert.False(t, board.Dismiss(o.ID))
	})

	t.Run("snapshot drops orders it no longer lists", func(t *testing.T) {
		board := viewer.NewBoard()
		kept := view(kernel.NewUUID(), order.Pending, 1, 1)
		dropped := view(kernel.NewUUID(), order.Ready, 3, 2)
		board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{kept, dropped}})

		changed := board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{kept}})

		assert.True(t, changed)
		assert.Equal(t, []kernel.UUID{kept.ID}, ids(board.Orders()))
	})
}

func TestBoard_PlacedInsertsFullRecord(t *testing.T) {
	board := viewer.NewBoard()
	first := view(kernel.NewUUID(), order.Pending, 1, 1)
	board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{first}})

	newer := view(kernel.NewUUID(), order.Pending, 1, 7)
	newer.TableNumber = 12
	newer.CustomerNote = "extra napkins"
	assert.True(t, board.Apply(viewer.Update{Kind: viewer.UpdatePlaced, Orders: []queries.OrderView{newer}}))

	orders := board.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, newer, orders[0])
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestBoard_OrdersIsACopy(t *testing.T) {
	board := viewer.NewBoard()
	o := view(kernel.NewUUID(), order.Pending, 1, 1)
	board.Apply(viewer.Update{Kind: viewer.UpdateSnapshot, Orders: []queries.OrderView{o}})

	orders := board.Orders()
	orders[0].Status = order.Ready

	got, _ := board.Get(o.ID)
	assert.Equal(t, order.Pending, got.Status)
}
