package http

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qrave/internal/adapters/out/eventbus"
	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/generated/servers"
	"qrave/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerMock[Q any, R any] struct {
	mock.Mock
}

func (m *handlerMock[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	args := m.Called(ctx, q)
	var r R
	if v := args.Get(0); v != nil {
		r = v.(R)
	}
	return r, args.Error(1)
}

type execMock[C any] struct {
	mock.Mock
}

func (m *execMock[C]) Handle(ctx context.Context, c C) error {
	return m.Called(ctx, c).Error(0)
}

type fixture struct {
	e   *echo.Echo
	hub *eventbus.Hub

	createOrder       *handlerMock[commands.CreateOrderCommand, *order.Order]
	changeStatus      *handlerMock[commands.ChangeOrderStatusCommand, *order.Order]
	deleteOrder       *execMock[commands.DeleteOrderCommand]
	deleteCompleted   *handlerMock[commands.DeleteCompletedOrdersCommand, int]
	createRestaurant  *handlerMock[commands.CreateRestaurantCommand, *restaurant.Restaurant]
	getOrder          *handlerMock[queries.GetOrderQuery, queries.OrderView]
	listOrders        *handlerMock[queries.ListOrdersQuery, []queries.OrderView]
	getRestaurant     *handlerMock[queries.GetRestaurantQuery, queries.RestaurantMenuView]
	listRestaurants   *handlerMock[queries.ListRestaurantsQuery, []queries.RestaurantSummary]
	login             *handlerMock[queries.LoginQuery, queries.RestaurantView]
	deleteRestaurant  *execMock[commands.DeleteRestaurantCommand]
	deleteMenuItemCmd *execMock[commands.DeleteMenuItemCommand]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		hub:               eventbus.NewHub(zap.NewNop()),
		createOrder:       &handlerMock[commands.CreateOrderCommand, *order.Order]{},
		changeStatus:      &handlerMock[commands.ChangeOrderStatusCommand, *order.Order]{},
		deleteOrder:       &execMock[commands.DeleteOrderCommand]{},
		deleteCompleted:   &handlerMock[commands.DeleteCompletedOrdersCommand, int]{},
		createRestaurant:  &handlerMock[commands.CreateRestaurantCommand, *restaurant.Restaurant]{},
		getOrder:          &handlerMock[queries.GetOrderQuery, queries.OrderView]{},
		listOrders:        &handlerMock[queries.ListOrdersQuery, []queries.OrderView]{},
		getRestaurant:     &handlerMock[queries.GetRestaurantQuery, queries.RestaurantMenuView]{},
		listRestaurants:   &handlerMock[queries.ListRestaurantsQuery, []queries.RestaurantSummary]{},
		login:             &handlerMock[queries.LoginQuery, queries.RestaurantView]{},
		deleteRestaurant:  &execMock[commands.DeleteRestaurantCommand]{},
		deleteMenuItemCmd: &execMock[commands.DeleteMenuItemCommand]{},
	}
	server := NewServer(Handlers{
		CreateOrder:           f.createOrder,
		ChangeOrderStatus:     f.changeStatus,
		DeleteOrder:           f.deleteOrder,
		DeleteCompletedOrders: f.deleteCompleted,
		CreateRestaurant:      f.createRestaurant,
		DeleteRestaurant:      f.deleteRestaurant,
		DeleteMenuItem:        f.deleteMenuItemCmd,
		GetOrder:              f.getOrder,
		ListOrders:            f.listOrders,
		GetRestaurant:         f.getRestaurant,
		ListRestaurants:       f.listRestaurants,
		Login:                 f.login,
	}, f.hub, 50*time.Millisecond, zap.NewNop())

	e, err := NewEcho(server, zap.NewNop())
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func placedOrder(t *testing.T, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Masala Dosa", 2, kernel.MustMoney(1000))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 4, []order.Item{item}, "no onions")
	require.NoError(t, err)
	return o
}

func TestHealthAndDocs(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = f.do(http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "qrave ordering API")
}

func TestCreateOrder(t *testing.T) {
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	body := `{"restaurantId":"` + restaurantID.String() + `","tableNumber":4,` +
		`"items":[{"id":"` + menuItemID.String() + `","quantity":2,"price":1000}],"total":2000,"note":"no onions"}`

	t.Run("created", func(t *testing.T) {
		// Given
		f := newFixture(t)
		placed := placedOrder(t, restaurantID)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			lines := cmd.Lines()
			return cmd.RestaurantID().IsEqual(restaurantID) &&
				cmd.TableNumber() == 4 &&
				cmd.Note() == "no onions" &&
				len(lines) == 1 &&
				lines[0].MenuItemID.IsEqual(menuItemID) &&
				lines[0].Price != nil && lines[0].Price.Minor() == 1000
		})).Return(placed, nil).Once()

		// When
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		// Then
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decode[servers.Order](t, rec)
		assert.Equal(t, placed.ID().String(), got.Id.String())
		assert.Equal(t, servers.PENDING, got.Status)
		assert.Equal(t, int64(2000), got.Total)
		assert.Equal(t, 1, got.Version)
		require.Len(t, got.Items, 1)
		assert.Equal(t, int64(2000), got.Items[0].Subtotal)
		f.createOrder.AssertExpectations(t)
	})

	t.Run("schema violations never reach the handler", func(t *testing.T) {
		f := newFixture(t)
		for _, invalid := range []string{
			`{"restaurantId":"` + restaurantID.String() + `","tableNumber":4,"items":[]}`,
			`{"restaurantId":"` + restaurantID.String() + `","tableNumber":0,"items":[{"id":"` + menuItemID.String() + `","quantity":1}]}`,
			`{"restaurantId":"` + restaurantID.String() + `","tableNumber":1,"items":[{"id":"` + menuItemID.String() + `","quantity":0}]}`,
			`{"tableNumber":1}`,
		} {
			rec := f.do(http.MethodPost, "/api/v1/orders", invalid)
			assert.Equal(t, http.StatusBadRequest, rec.Code, invalid)
		}
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("maps domain errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"unknown menu item", errs.NewObjectNotFoundError("menu item", menuItemID), http.StatusNotFound},
			{"price mismatch", errs.NewValueIsInvalidError("price"), http.StatusBadRequest},
			{"storage down", assert.AnError, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

				rec := f.do(http.MethodPost, "/api/v1/orders", body)

				assert.Equal(t, tc.code, rec.Code)
				got := decode[servers.Error](t, rec)
				assert.Equal(t, tc.code, got.Code)
				if tc.code == http.StatusInternalServerError {
					assert.Equal(t, "Internal server error", got.Message)
				}
			})
		}
	})
}

func TestChangeOrderStatus(t *testing.T) {
	orderID := kernel.NewUUID()
	target := "/api/v1/orders/" + orderID.String() + "/status"

	t.Run("applies the transition", func(t *testing.T) {
		f := newFixture(t)
		o := placedOrder(t, kernel.NewUUID())
		require.NoError(t, o.Accept())
		f.changeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
			return cmd.OrderID().IsEqual(orderID) && cmd.Target() == order.Preparing
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPatch, target, `{"status":"PREPARING"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[servers.Order](t, rec)
		assert.Equal(t, servers.PREPARING, got.Status)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("illegal transition is a conflict naming both states", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewInvalidTransitionError("COMPLETED", "PENDING")).Once()

		rec := f.do(http.MethodPatch, target, `{"status":"PENDING"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		got := decode[servers.Error](t, rec)
		require.NotNil(t, got.Current)
		require.NotNil(t, got.Target)
		assert.Equal(t, servers.COMPLETED, *got.Current)
		assert.Equal(t, servers.PENDING, *got.Target)
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewVersionIsInvalidError("order version")).Once()

		rec := f.do(http.MethodPatch, target, `{"status":"READY"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown status name is rejected by the schema", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, target, `{"status":"EATEN"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.changeStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/orders/not-a-uuid/status", `{"status":"READY"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderQueries(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("get missing order", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", id)).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list keeps handler order and deleted menu items", func(t *testing.T) {
		f := newFixture(t)
		views := []queries.OrderView{
			{ID: kernel.NewUUID(), RestaurantID: restaurantID, Status: order.Pending, Version: 1, Total: kernel.MustMoney(500),
				Items: []queries.OrderItemView{{Name: "Chai", Quantity: 1, UnitPrice: kernel.MustMoney(500), Subtotal: kernel.MustMoney(500)}}},
			{ID: kernel.NewUUID(), RestaurantID: restaurantID, Status: order.Ready, Version: 3},
		}
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.RestaurantID().IsEqual(restaurantID)
		})).Return(views, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders?restaurantId="+restaurantID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[[]servers.Order](t, rec)
		require.Len(t, got, 2)
		assert.Equal(t, servers.PENDING, got[0].Status)
		assert.Equal(t, servers.READY, got[1].Status)
		assert.Nil(t, got[0].Items[0].MenuItemId)
		assert.Contains(t, rec.Body.String(), `"menuItemId":null`)
	})

	t.Run("list requires a restaurant", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete completed returns the count", func(t *testing.T) {
		f := newFixture(t)
		f.deleteCompleted.On("Handle", mock.Anything, mock.Anything).Return(2, nil).Once()

		rec := f.do(http.MethodDelete, "/api/v1/orders/completed?restaurantId="+restaurantID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decode[servers.DeletedOrders](t, rec).Deleted)
		f.deleteOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("delete one", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.deleteOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteOrderCommand) bool {
			return cmd.OrderID().IsEqual(id)
		})).Return(nil).Once()

		rec := f.do(http.MethodDelete, "/api/v1/orders/"+id.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.deleteOrder.AssertExpectations(t)
	})
}

func TestRestaurants(t *testing.T) {
	t.Run("duplicate slug", func(t *testing.T) {
		f := newFixture(t)
		f.createRestaurant.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectAlreadyExistsError("slug", "parmar-hotel")).Once()

		rec := f.do(http.MethodPost, "/api/v1/restaurants",
			`{"slug":"parmar-hotel","name":"Parmar Hotel","password":"secret-pass"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad slug is rejected before the handler", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/restaurants",
			`{"slug":"Parmar Hotel","name":"Parmar Hotel","password":"secret-pass"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.createRestaurant.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.login.On("Handle", mock.Anything, mock.Anything).
			Return(queries.RestaurantView{}, restaurant.ErrInvalidCredentials).Once()

		rec := f.do(http.MethodPost, "/api/v1/login", `{"slug":"parmar-hotel","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("get by slug includes the menu", func(t *testing.T) {
		f := newFixture(t)
		view := queries.RestaurantMenuView{
			RestaurantView: queries.RestaurantView{ID: kernel.NewUUID(), Slug: "parmar-hotel", Name: "Parmar Hotel"},
			Menu: []queries.MenuItemView{{ID: kernel.NewUUID(), Name: "Samosa", Price: kernel.MustMoney(300),
				Category: "Snacks", Available: true}},
		}
		f.getRestaurant.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetRestaurantQuery) bool {
			return q.Slug().String() == "parmar-hotel"
		})).Return(view, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/restaurants/parmar-hotel", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[servers.RestaurantWithMenu](t, rec)
		require.Len(t, got.Menu, 1)
		assert.Equal(t, int64(300), got.Menu[0].Price)
	})

	t.Run("delete needs an id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodDelete, "/api/v1/restaurants/parmar-hotel", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.deleteRestaurant.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("list with counts", func(t *testing.T) {
		f := newFixture(t)
		f.listRestaurants.On("Handle", mock.Anything, mock.Anything).Return([]queries.RestaurantSummary{{
			RestaurantView: queries.RestaurantView{ID: kernel.NewUUID(), Slug: "parmar-hotel", Name: "Parmar Hotel"},
			MenuItemCount:  7,
			OrderCount:     3,
		}}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/restaurants", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]servers.RestaurantSummary](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, 7, got[0].MenuItemCount)
		assert.Equal(t, 3, got[0].OrderCount)
	})

	t.Run("delete menu item", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.deleteMenuItemCmd.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("menu item", id)).Once()

		rec := f.do(http.MethodDelete, "/api/v1/menu-items/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStreamOrderEvents(t *testing.T) {
	t.Run("requires exactly one target", func(t *testing.T) {
		f := newFixture(t)

		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/order-events", "").Code)
		both := "/api/v1/order-events?orderId=" + kernel.NewUUID().String() + "&restaurantId=" + kernel.NewUUID().String()
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, both, "").Code)
	})

	t.Run("streams matching events and releases the subscription", func(t *testing.T) {
		// Given
		f := newFixture(t)
		srv := httptest.NewServer(f.e)
		defer srv.Close()
		orderID, restaurantID := kernel.NewUUID(), kernel.NewUUID()

		ctx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			srv.URL+"/api/v1/order-events?orderId="+orderID.String(), nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))
		require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

		// When
		f.hub.Dispatch(order.Event{Kind: order.EventStatusChanged, OrderID: kernel.NewUUID(), RestaurantID: restaurantID,
			Status: order.Ready, Version: 3, OccurredAt: time.Now()})
		f.hub.Dispatch(order.Event{Kind: order.EventStatusChanged, OrderID: orderID, RestaurantID: restaurantID,
			Status: order.Preparing, Version: 2, OccurredAt: time.Now()})

		// Then
		reader := bufio.NewReader(resp.Body)
		var eventLine, dataLine string
		keepAlives := 0
		for dataLine == "" {
			line, readErr := reader.ReadString('\n')
			require.NoError(t, readErr)
			switch {
			case strings.HasPrefix(line, ": keep-alive"):
				keepAlives++
			case strings.HasPrefix(line, "event: "):
				eventLine = strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			case strings.HasPrefix(line, "data: "):
				dataLine = strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
		assert.Equal(t, string(order.EventStatusChanged), eventLine)
		var got servers.OrderEvent
		require.NoError(t, json.Unmarshal([]byte(dataLine), &got))
		assert.Equal(t, orderID.String(), got.OrderId.String())
		assert.Equal(t, servers.PREPARING, got.Status)
		assert.Equal(t, 2, got.Version)

		for keepAlives == 0 {
			line, readErr := reader.ReadString('\n')
			require.NoError(t, readErr)
			if strings.HasPrefix(line, ": keep-alive") {
				keepAlives++
			}
		}

		cancel()
		assert.Eventually(t, func() bool { return f.hub.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("ends the stream when the event listener reconnects", func(t *testing.T) {
		// Given
		f := newFixture(t)
		listener := &resettingListener{reset: make(chan struct{})}
		runCtx, stopHub := context.WithCancel(context.Background())
		defer stopHub()
		go f.hub.Run(runCtx, listener)

		srv := httptest.NewServer(f.e)
		defer srv.Close()
		resp, err := http.Get(srv.URL + "/api/v1/order-events?orderId=" + kernel.NewUUID().String())
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

		// When
		close(listener.reset)

		// Then the server closes the stream so the client re-snapshots
		drained := make(chan error, 1)
		go func() {
			_, readErr := io.Copy(io.Discard, resp.Body)
			drained <- readErr
		}()
		select {
		case err = <-drained:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("stream stayed open after the listener reconnected")
		}
		assert.Equal(t, 0, f.hub.Subscribers())
	})
}

// resettingListener blocks until reset is closed, then reports a reconnect.
type resettingListener struct {
	reset chan struct{}
}

func (l *resettingListener) Listen(ctx context.Context, _ func(order.Event)) error {
	select {
	case <-l.reset:
		return eventbus.ErrListenerReset
	case <-ctx.Done():
		return nil
	}
}
