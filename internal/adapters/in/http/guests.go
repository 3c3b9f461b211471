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

// ListGuests handles GET /api/v1/guests.
func (s *Server) ListGuests(ctx echo.Context, params servers.ListGuestsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListGuestsQuery(actor, value(params.Search))
	if err != nil {
		return err
	}

	guests, err := s.h.ListGuests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toGuests(guests))
}

// RegisterGuest handles POST /api/v1/guests.
func (s *Server) RegisterGuest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.RegisterGuestJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterGuestCommand(actor, kernel.NewUUID(), body.Name, body.RoomNumber, body.CheckIn, body.CheckOut)
	if err != nil {
		return err
	}
	cmd = cmd.WithContact(value(body.Email), value(body.Phone))

	if err := s.h.SaveGuest.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, guestFromCommand(cmd))
}

// UpdateGuest handles PUT /api/v1/guests/{guestId} - replaces the stay details.
func (s *Server) UpdateGuest(ctx echo.Context, guestId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	guestID, err := toKernelID("guest_id", guestId)
	if err != nil {
		return err
	}

	var body servers.UpdateGuestJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateGuestCommand(actor, guestID, body.Name, body.RoomNumber, body.CheckIn, body.CheckOut)
	if err != nil {
		return err
	}
	cmd = cmd.WithContact(value(body.Email), value(body.Phone))

	if err := s.h.SaveGuest.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, guestFromCommand(cmd))
}

// RemoveGuest handles DELETE /api/v1/guests/{guestId}.
func (s *Server) RemoveGuest(ctx echo.Context, guestId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	guestID, err := toKernelID("guest_id", guestId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveGuestCommand(actor, guestID)
	if err != nil {
		return err
	}
	if err := s.h.RemoveGuest.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
