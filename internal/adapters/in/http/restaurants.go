package http

import (
	"net/http"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	summaries, err := s.h.ListRestaurants.Handle(ctx.Request().Context(), queries.NewListRestaurantsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.RestaurantSummary, len(summaries))
	for i, sum := range summaries {
		r := restaurantFromView(sum.RestaurantView)
		response[i] = servers.RestaurantSummary{
			Id:            r.Id,
			Slug:          r.Slug,
			Name:          r.Name,
			Address:       r.Address,
			CreatedAt:     r.CreatedAt,
			MenuItemCount: sum.MenuItemCount,
			OrderCount:    sum.OrderCount,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body servers.CreateRestaurantJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), body.Slug, body.Name, deref(body.Address, ""), body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, restaurantFromAggregate(created))
}

// GetRestaurant handles GET /api/v1/restaurants/{slug}.
func (s *Server) GetRestaurant(ctx echo.Context, restaurantKey string) error {
	query, err := queries.NewGetRestaurantQuery(restaurantKey)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	r := restaurantFromView(view.RestaurantView)
	items := make([]servers.MenuItem, len(view.Menu))
	for i, it := range view.Menu {
		items[i] = menuItemFromView(it)
	}
	return ctx.JSON(http.StatusOK, servers.RestaurantWithMenu{
		Id:        r.Id,
		Slug:      r.Slug,
		Name:      r.Name,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		Menu:      items,
	})
}

// UpdateRestaurant handles PUT /api/v1/restaurants/{restaurantId}.
func (s *Server) UpdateRestaurant(ctx echo.Context, restaurantKey string) error {
	id, err := kernel.UUIDFromString(restaurantKey)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	var body servers.UpdateRestaurantJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRestaurantCommand(id, body.Name, deref(body.Address, ""))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, restaurantFromAggregate(updated))
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{restaurantId}.
func (s *Server) DeleteRestaurant(ctx echo.Context, restaurantKey string) error {
	id, err := kernel.UUIDFromString(restaurantKey)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	cmd, err := commands.NewDeleteRestaurantCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewLoginQuery(body.Slug, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.Login.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, restaurantFromView(view))
}
