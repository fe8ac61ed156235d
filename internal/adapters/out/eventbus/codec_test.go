package eventbus_test

import (
	"testing"
	"time"

	"qrave/internal/adapters/out/eventbus"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusEvent(orderID, restaurantID kernel.UUID, status order.Status, version int) order.Event {
	return order.Event{
		Kind:         order.EventStatusChanged,
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       status,
		Version:      version,
		OccurredAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCodec(t *testing.T) {
	t.Run("round trip keeps every field", func(t *testing.T) {
		e := statusEvent(kernel.NewUUID(), kernel.NewUUID(), order.Ready, 3)

		payload, err := eventbus.Encode(e)
		require.NoError(t, err)
		got, err := eventbus.Decode(payload)

		require.NoError(t, err)
		assert.Equal(t, e.Kind, got.Kind)
		assert.True(t, e.OrderID.IsEqual(got.OrderID))
		assert.True(t, e.RestaurantID.IsEqual(got.RestaurantID))
		assert.Equal(t, order.Ready, got.Status)
		assert.Equal(t, 3, got.Version)
		assert.True(t, e.OccurredAt.Equal(got.OccurredAt))
	})

	t.Run("status travels by name", func(t *testing.T) {
		payload, err := eventbus.Encode(statusEvent(kernel.NewUUID(), kernel.NewUUID(), order.Preparing, 2))

		require.NoError(t, err)
		assert.Contains(t, string(payload), `"status":"PREPARING"`)
		assert.Contains(t, string(payload), `"kind":"order.status_changed"`)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		for _, payload := range []string{
			`not json`,
			`{"orderId":"nope","restaurantId":"` + kernel.NewUUID().String() + `","status":"READY"}`,
			`{"orderId":"` + kernel.NewUUID().String() + `","restaurantId":"` + kernel.NewUUID().String() + `","status":"LOST"}`,
		} {
			_, err := eventbus.Decode([]byte(payload))
			assert.Error(t, err, payload)
		}
	})
}
