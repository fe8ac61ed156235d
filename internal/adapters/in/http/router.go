package http

import (
	"net/http"

	"qrave/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const BaseURL = "/api/v1"

// NewEcho builds the HTTP stack: request ids, panic recovery and access
// logging for everything, OpenAPI validation for the API group, plus the
// health probe and the swagger UI.
func NewEcho(server *Server, logger *zap.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(Recover(logger))
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL, validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
