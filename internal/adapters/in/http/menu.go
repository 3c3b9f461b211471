package http

import (
	"net/http"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetMenu handles GET /api/v1/menu - the orderable items, served from the catalog cache.
func (s *Server) GetMenu(ctx echo.Context, params servers.GetMenuParams) error {
	query := queries.NewListAvailableMenuQuery(value(params.Category))

	items, err := s.h.ListAvailableMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// ListMenuItems handles GET /api/v1/menu/items - every item, for menu administration.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMenuItemsQuery(actor, value(params.Category), params.Available)
	if err != nil {
		return err
	}

	items, err := s.h.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// CreateMenuItem handles POST /api/v1/menu/items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateMenuItemJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(actor, kernel.NewUUID(), body.Name, body.Category, price)
	if err != nil {
		return err
	}
	available := true
	if body.Available != nil {
		available = *body.Available
	}
	cmd = cmd.WithDetails(value(body.Description), value(body.ImageUrl), available)

	if err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, menuItemFromCommand(cmd))
}

// SetMenuItemAvailability handles PUT /api/v1/menu/items/{itemId}/availability.
func (s *Server) SetMenuItemAvailability(ctx echo.Context, itemId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	itemID, err := toKernelID("item_id", itemId)
	if err != nil {
		return err
	}

	var body servers.SetMenuItemAvailabilityJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(actor, itemID, body.Available)
	if err != nil {
		return err
	}
	if err := s.h.SetMenuItemAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
