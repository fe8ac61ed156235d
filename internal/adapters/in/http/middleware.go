package http

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestValidator rejects requests that do not match the OpenAPI document
// before they reach a handler. Request bodies are restored after reading.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			switch {
			case errors.Is(findErr, routers.ErrMethodNotAllowed):
				return echo.NewHTTPError(http.StatusMethodNotAllowed, findErr.Error())
			case findErr != nil:
				return echo.NewHTTPError(http.StatusNotFound, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(validationErr))
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return err.Error()
}

// RequestLogger logs one line per request with zap.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.Named("access")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}

// Recover turns panics into 500 responses and logs the stack.
func Recover(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("path", c.Path()),
				zap.Error(err),
				zap.ByteString("stack", stack))
			return err
		},
	})
}
