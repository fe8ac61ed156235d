package order_test

import (
	"strings"
	"testing"
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, qty int, price int64) order.Item {
	t.Helper()
	it, err := order.NewItem(kernel.NewUUID(), name, qty, kernel.MustMoney(price))
	require.NoError(t, err)
	return it
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 4,
		[]order.Item{mustItem(t, "Dal Makhani", 1, 18000)}, "")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should compute 2 x 10.00 + 1 x 5.00 = 25.00", func(t *testing.T) {
		// Given
		a := mustItem(t, "A", 2, 1000)
		b := mustItem(t, "B", 1, 500)

		// When
		o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 7, []order.Item{a, b}, "no onions")

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(2500), o.Total().Minor())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, 7, o.TableNumber())
		assert.Equal(t, "no onions", o.CustomerNote())
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Len(t, o.Items(), 2)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should record a placed event", func(t *testing.T) {
		o := newPendingOrder(t)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventPlaced, events[0].Kind)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.Equal(t, order.Pending, events[0].Status)
		assert.Equal(t, 1, events[0].Version)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, 0, nil, strings.Repeat("x", order.MaxNoteLength+1))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "restaurant id")
		assert.Contains(t, err.Error(), "table number")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "customer note length")
	})

	t.Run("should accept a note of exactly the maximum length in runes", func(t *testing.T) {
		note := strings.Repeat("é", order.MaxNoteLength)

		o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 1, []order.Item{mustItem(t, "Chai", 1, 100)}, note)

		require.NoError(t, err)
		assert.Equal(t, note, o.CustomerNote())
	})

	t.Run("should reject zero value items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), restaurantID, 1, []order.Item{{}}, "")

		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should not share the items slice with the caller", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Naan", 2, 300)}
		o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 1, items, "")
		require.NoError(t, err)

		items[0] = mustItem(t, "Roti", 9, 100)

		assert.Equal(t, "Naan", o.Items()[0].Name())
		assert.Equal(t, int64(600), o.Total().Minor())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should reject PENDING -> READY and keep the order untouched", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		err := o.MarkReady()

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should walk the full happy path bumping the version", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Complete())

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 4, o.Version())

		events := o.DomainEvents()
		require.Len(t, events, 3)
		for i, want := range []order.Status{order.Preparing, order.Ready, order.Completed} {
			assert.Equal(t, order.EventStatusChanged, events[i].Kind)
			assert.Equal(t, want, events[i].Status)
			assert.Equal(t, i+2, events[i].Version)
		}
	})

	t.Run("should reject PREPARING after COMPLETED", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Complete())

		err := o.ChangeStatus(order.Preparing)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("should cancel from every non-terminal state", func(t *testing.T) {
		for steps := range 3 {
			o := newPendingOrder(t)
			if steps > 0 {
				require.NoError(t, o.Accept())
			}
			if steps > 1 {
				require.NoError(t, o.MarkReady())
			}

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.Cancelled, o.Status())
			assert.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		}
	})

	t.Run("should keep the total across transitions", func(t *testing.T) {
		o := newPendingOrder(t)
		before := o.Total()

		require.NoError(t, o.Accept())
		require.NoError(t, o.Cancel())

		assert.True(t, before.IsEqual(o.Total()))
	})
}

func TestRestoreOrder(t *testing.T) {
	item, err := order.RestoreItem(kernel.NewUUID(), "Biryani", 2, kernel.MustMoney(1000))
	require.NoError(t, err)

	valid := order.State{
		ID:           kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		TableNumber:  3,
		Items:        []order.Item{item},
		Total:        kernel.MustMoney(1999),
		Status:       order.Ready,
		Version:      3,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("should restore the stored total verbatim without events", func(t *testing.T) {
		o, err := order.RestoreOrder(valid)

		require.NoError(t, err)
		assert.Equal(t, int64(1999), o.Total().Minor())
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.Empty(t, o.DomainEvents())
		assert.Equal(t, valid, o.State())
	})

	t.Run("should reject invalid status and version", func(t *testing.T) {
		s := valid
		s.Status = order.Unknown
		s.Version = 0

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status")
		assert.Contains(t, err.Error(), "version")
	})

	t.Run("should continue versioning from the stored value", func(t *testing.T) {
		o, err := order.RestoreOrder(valid)
		require.NoError(t, err)

		require.NoError(t, o.Complete())

		assert.Equal(t, 4, o.Version())
		require.Len(t, o.DomainEvents(), 1)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())

	assert.NoError(t, newPendingOrder(t).Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a := newPendingOrder(t)
	b := newPendingOrder(t)
	restored, err := order.RestoreOrder(a.State())
	require.NoError(t, err)

	assert.True(t, a.IsEqual(restored))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestNewDeletedEvent(t *testing.T) {
	id, rid := kernel.NewUUID(), kernel.NewUUID()

	ev := order.NewDeletedEvent(id, rid, order.Completed, 4)

	assert.Equal(t, order.EventDeleted, ev.Kind)
	assert.True(t, ev.OrderID.IsEqual(id))
	assert.True(t, ev.RestaurantID.IsEqual(rid))
	assert.Equal(t, 4, ev.Version)
}
