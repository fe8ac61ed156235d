package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"qrave/internal/adapters/out/eventbus"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StreamOrderEvents handles GET /api/v1/order-events. It subscribes to the
// hub for one order or one restaurant and writes every event as an SSE
// message until the client goes away. Idle periods are filled with comment
// lines so proxies keep the connection open.
func (s *Server) StreamOrderEvents(ctx echo.Context, params servers.StreamOrderEventsParams) error {
	interest, err := interestFrom(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	sub, err := s.hub.Subscribe(interest)
	if err != nil {
		return errorJSON(ctx, http.StatusServiceUnavailable, "Event stream is shutting down")
	}
	defer sub.Close()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if _, err = fmt.Fprintf(w, "retry: 3000\n: connected\n\n"); err != nil {
		return nil
	}
	w.Flush()

	reqCtx := ctx.Request().Context()
	for {
		waitCtx, cancel := context.WithTimeout(reqCtx, s.keepAlive)
		e, nextErr := sub.Next(waitCtx)
		cancel()

		switch {
		case reqCtx.Err() != nil, errors.Is(nextErr, eventbus.ErrSubscriptionClosed):
			return nil
		case errors.Is(nextErr, context.DeadlineExceeded):
			if _, err = fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
		case nextErr != nil:
			s.logger.Warn("order event stream failed", zap.Error(nextErr))
			return nil
		default:
			payload, marshalErr := json.Marshal(orderEvent(e))
			if marshalErr != nil {
				s.logger.Error("failed to encode order event", zap.Error(marshalErr))
				continue
			}
			if _, err = fmt.Fprintf(w, "id: %s:%d\nevent: %s\ndata: %s\n\n", e.OrderID, e.Version, e.Kind, payload); err != nil {
				return nil
			}
		}
		w.Flush()
	}
}

func interestFrom(params servers.StreamOrderEventsParams) (eventbus.Interest, error) {
	switch {
	case params.OrderId != nil && params.RestaurantId == nil:
		id, err := kernel.UUIDFrom(*params.OrderId)
		if err != nil {
			return eventbus.Interest{}, err
		}
		return eventbus.OrderInterest(id), nil
	case params.RestaurantId != nil && params.OrderId == nil:
		id, err := kernel.UUIDFrom(*params.RestaurantId)
		if err != nil {
			return eventbus.Interest{}, err
		}
		return eventbus.RestaurantInterest(id), nil
	default:
		return eventbus.Interest{}, errTargetRequired
	}
}
