package http

import (
	"context"
	"errors"
	"net/http"

	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/generated/servers"
	"qrave/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// fail writes err as an Error body with the matching status. Internal
// failures are logged and answered with a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	var transition *errs.InvalidTransitionError
	switch {
	case errors.As(err, &transition):
		body := servers.Error{Code: http.StatusConflict, Message: err.Error()}
		if from, parseErr := order.ParseStatus(transition.From); parseErr == nil {
			current := servers.OrderStatus(from.String())
			body.Current = &current
		}
		if to, parseErr := order.ParseStatus(transition.To); parseErr == nil {
			target := servers.OrderStatus(to.String())
			body.Target = &target
		}
		return ctx.JSON(http.StatusConflict, body)
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrObjectAlreadyExists):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, restaurant.ErrInvalidCredentials):
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	case isValidation(err):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		s.logger.Debug("request cancelled", zap.String("path", ctx.Path()))
		return nil
	default:
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err))
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsRequired)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

// ErrorHandler renders errors that escape handlers, such as binding and
// validation failures, in the API's Error shape.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", zap.String("path", ctx.Path()), zap.Error(err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = errorJSON(ctx, code, message)
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}

var errTargetRequired = errs.NewValueIsInvalidErrorWithCause("order events",
	errors.New("exactly one of orderId and restaurantId is required"))
