package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"qrave/internal/core/domain/model/order"
	"qrave/internal/generated/servers"
	"qrave/internal/viewer"

	"go.uber.org/zap"
)

// StreamOrderEvents opens the server-sent event stream for interest. The
// stream ends when ctx ends, Close is called or the server goes away.
func (c *Client) StreamOrderEvents(ctx context.Context, interest viewer.Interest) (viewer.EventStream, error) {
	if err := interest.Validate(); err != nil {
		return nil, err
	}
	query := url.Values{}
	if interest.OrderID != nil {
		query.Set("orderId", interest.OrderID.String())
	} else {
		query.Set("restaurantId", interest.RestaurantID.String())
	}

	ctx, cancel := context.WithCancel(ctx)
	req, err := c.newRequest(ctx, http.MethodGet, "/order-events", query, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.stream.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open order event stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return &eventStream{
		body:   resp.Body,
		reader: bufio.NewReader(resp.Body),
		cancel: cancel,
		logger: c.logger,
	}, nil
}

// eventStream reads SSE messages. Comments and unknown event types are
// skipped; only complete messages are returned.
type eventStream struct {
	body   io.ReadCloser
	reader *bufio.Reader
	cancel context.CancelFunc
	logger *zap.Logger
}

func (s *eventStream) Recv() (order.Event, error) {
	for {
		kind, data, err := s.readMessage()
		if err != nil {
			return order.Event{}, err
		}
		if data == "" {
			continue
		}

		var payload servers.OrderEvent
		if err = json.Unmarshal([]byte(data), &payload); err != nil {
			s.logger.Warn("Skipping malformed order event", zap.String("event", kind), zap.Error(err))
			continue
		}
		e, err := Event(payload)
		if err != nil {
			s.logger.Warn("Skipping invalid order event", zap.String("event", kind), zap.Error(err))
			continue
		}
		return e, nil
	}
}

// readMessage collects lines up to the blank line that ends a message.
func (s *eventStream) readMessage() (kind, data string, err error) {
	var lines []string
	for {
		line, readErr := s.reader.ReadString('\n')
		if readErr != nil {
			if errors.Is(readErr, io.EOF) && line == "" && len(lines) == 0 {
				return "", "", io.EOF
			}
			if !errors.Is(readErr, io.EOF) {
				return "", "", readErr
			}
			return "", "", io.ErrUnexpectedEOF
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			kind = value
		case "data":
			lines = append(lines, value)
		}
	}
	return kind, strings.Join(lines, "\n"), nil
}

func (s *eventStream) Close() error {
	s.cancel()
	return s.body.Close()
}
