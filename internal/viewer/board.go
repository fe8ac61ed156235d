package viewer

import (
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

// Board is a restaurant's order list as the kitchen sees it. It is not safe
// for concurrent use; the owner serializes Apply and Dismiss.
//
// Rules applied to every update:
//   - a known order only takes the incoming status and version, and only
//     from a newer version
//   - a terminal order never changes again
//   - an order that was removed or dismissed never comes back
//   - a snapshot inserts unseen orders and drops orders it no longer lists
//
// The list is kept in display order after every change.
type Board struct {
	orders  []queries.OrderView
	removed map[kernel.UUID]struct{}
}

func NewBoard() *Board {
	return &Board{removed: make(map[kernel.UUID]struct{})}
}

// Apply folds u into the board and reports whether anything changed.
func (b *Board) Apply(u Update) bool {
	var changed bool
	switch u.Kind {
	case UpdateSnapshot:
		changed = b.applySnapshot(u.Orders)
	case UpdatePlaced:
		for _, o := range u.Orders {
			changed = b.upsert(o) || changed
		}
	case UpdateStatus:
		changed = b.applyStatus(u.Event)
	case UpdateRemoved:
		changed = b.remove(u.Event.OrderID)
	}
	if changed {
		order.SortForDisplay(b.orders, queries.OrderView.Key)
	}
	return changed
}

// Dismiss removes an order locally, e.g. after staff deleted it. Later
// updates for it are ignored.
func (b *Board) Dismiss(id kernel.UUID) bool {
	changed := b.remove(id)
	if changed {
		order.SortForDisplay(b.orders, queries.OrderView.Key)
	}
	return changed
}

// Orders returns a copy of the list in display order.
func (b *Board) Orders() []queries.OrderView {
	out := make([]queries.OrderView, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *Board) Get(id kernel.UUID) (queries.OrderView, bool) {
	if i := b.index(id); i >= 0 {
		return b.orders[i], true
	}
	return queries.OrderView{}, false
}

func (b *Board) Len() int {
	return len(b.orders)
}

func (b *Board) applySnapshot(orders []queries.OrderView) bool {
	listed := make(map[kernel.UUID]struct{}, len(orders))
	changed := false
	for _, o := range orders {
		listed[o.ID] = struct{}{}
		changed = b.upsert(o) || changed
	}

	kept := b.orders[:0]
	for _, o := range b.orders {
		if _, ok := listed[o.ID]; ok {
			kept = append(kept, o)
		} else {
			changed = true
		}
	}
	clear(b.orders[len(kept):])
	b.orders = kept
	return changed
}

func (b *Board) upsert(o queries.OrderView) bool {
	if _, gone := b.removed[o.ID]; gone {
		return false
	}
	i := b.index(o.ID)
	if i < 0 {
		b.orders = append(b.orders, o)
		return true
	}
	return b.setStatus(i, o.Status, o.Version)
}

func (b *Board) applyStatus(e order.Event) bool {
	i := b.index(e.OrderID)
	if i < 0 {
		return false
	}
	return b.setStatus(i, e.Status, e.Version)
}

func (b *Board) setStatus(i int, status order.Status, version int) bool {
	next, ok := advance(b.orders[i], status, version)
	if ok {
		b.orders[i] = next
	}
	return ok
}

func (b *Board) remove(id kernel.UUID) bool {
	b.removed[id] = struct{}{}
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.orders = append(b.orders[:i], b.orders[i+1:]...)
	return true
}

func (b *Board) index(id kernel.UUID) int {
	for i := range b.orders {
		if b.orders[i].ID.IsEqual(id) {
			return i
		}
	}
	return -1
}
