// Package client talks to the qrave REST API. It is what the console and
// other Go tools use; it implements viewer.StreamSource so watchers can run
// against a live server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/generated/servers"
	"qrave/internal/viewer"

	"go.uber.org/zap"
)

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	stream  *http.Client
	logger  *zap.Logger
}

var _ viewer.StreamSource = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the client used for plain requests. Event streams
// always use a client without a timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		stream:  &http.Client{},
		logger:  log.Named("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListRestaurants(ctx context.Context) ([]servers.RestaurantSummary, error) {
	var out []servers.RestaurantSummary
	err := c.do(ctx, http.MethodGet, "/restaurants", nil, nil, &out)
	return out, err
}

func (c *Client) GetRestaurant(ctx context.Context, slug string) (servers.RestaurantWithMenu, error) {
	var out servers.RestaurantWithMenu
	err := c.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(slug), nil, nil, &out)
	return out, err
}

func (c *Client) CreateRestaurant(ctx context.Context, body servers.NewRestaurant) (servers.Restaurant, error) {
	var out servers.Restaurant
	err := c.do(ctx, http.MethodPost, "/restaurants", nil, body, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, slug, password string) (servers.Restaurant, error) {
	var out servers.Restaurant
	err := c.do(ctx, http.MethodPost, "/login", nil, servers.Credentials{Slug: slug, Password: password}, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, body servers.NewMenuItem) (servers.MenuItem, error) {
	var out servers.MenuItem
	err := c.do(ctx, http.MethodPost, "/menu-items", nil, body, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, body servers.NewOrder) (queries.OrderView, error) {
	var out servers.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, body, &out); err != nil {
		return queries.OrderView{}, err
	}
	return OrderView(out)
}

func (c *Client) GetOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	var out servers.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, nil, &out); err != nil {
		return queries.OrderView{}, err
	}
	return OrderView(out)
}

func (c *Client) ListOrders(ctx context.Context, restaurantID kernel.UUID) ([]queries.OrderView, error) {
	var out []servers.Order
	query := url.Values{"restaurantId": {restaurantID.String()}}
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &out); err != nil {
		return nil, err
	}
	views := make([]queries.OrderView, len(out))
	for i, o := range out {
		v, err := OrderView(o)
		if err != nil {
			return nil, err
		}
		views[i] = v
	}
	return views, nil
}

func (c *Client) ChangeOrderStatus(ctx context.Context, id kernel.UUID, target order.Status) (queries.OrderView, error) {
	var out servers.Order
	body := servers.StatusChange{Status: servers.OrderStatus(target.String())}
	if err := c.do(ctx, http.MethodPatch, "/orders/"+id.String()+"/status", nil, body, &out); err != nil {
		return queries.OrderView{}, err
	}
	return OrderView(out)
}

func (c *Client) DeleteOrder(ctx context.Context, id kernel.UUID) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+id.String(), nil, nil, nil)
}

func (c *Client) DeleteCompletedOrders(ctx context.Context, restaurantID kernel.UUID) (int, error) {
	var out servers.DeletedOrders
	query := url.Values{"restaurantId": {restaurantID.String()}}
	err := c.do(ctx, http.MethodDelete, "/orders/completed", query, nil, &out)
	return out.Deleted, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
