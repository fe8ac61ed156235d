package http

import (
	"net/http"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body servers.CreateMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFrom(body.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := menuDetails(servers.MenuItemUpdate{
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		Category:     body.Category,
		ImageUrl:     body.ImageUrl,
		IsVegetarian: body.IsVegetarian,
		IsSpicy:      body.IsSpicy,
		Available:    body.Available,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), restaurantID, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, menuItemFromAggregate(created))
}

// UpdateMenuItem handles PUT /api/v1/menu-items/{menuItemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateMenuItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := menuDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, menuItemFromAggregate(updated))
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
