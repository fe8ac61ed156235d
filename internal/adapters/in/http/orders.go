package http

import (
	"net/http"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/services"
	"qrave/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/orders?restaurantId=.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	restaurantID, err := kernel.UUIDFrom(params.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. Names and prices are taken from
// the menu; client prices and total are only checked against it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFrom(body.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]services.RequestedLine, len(body.Items))
	for i, item := range body.Items {
		menuItemID, idErr := kernel.UUIDFrom(item.Id)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		lines[i] = services.RequestedLine{MenuItemID: menuItemID, Quantity: item.Quantity}
		if item.Price != nil {
			price, priceErr := kernel.NewMoney(*item.Price)
			if priceErr != nil {
				return s.fail(ctx, priceErr)
			}
			lines[i].Price = &price
		}
	}

	var claimedTotal *kernel.Money
	if body.Total != nil {
		total, totalErr := kernel.NewMoney(*body.Total)
		if totalErr != nil {
			return s.fail(ctx, totalErr)
		}
		claimedTotal = &total
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), restaurantID, body.TableNumber, lines, claimedTotal, deref(body.Note, ""),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// DeleteCompletedOrders handles DELETE /api/v1/orders/completed?restaurantId=.
func (s *Server) DeleteCompletedOrders(ctx echo.Context, params servers.DeleteCompletedOrdersParams) error {
	restaurantID, err := kernel.UUIDFrom(params.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCompletedOrdersCommand(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	n, err := s.h.DeleteCompletedOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.DeletedOrders{Deleted: n})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}
