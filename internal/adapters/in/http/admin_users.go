package http

import (
	"net/http"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListAdminUsers handles GET /api/v1/admin-users.
func (s *Server) ListAdminUsers(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListAdminUsersQuery(actor)
	if err != nil {
		return err
	}

	users, err := s.h.ListAdminUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAdminUsers(users))
}

// CreateAdminUser handles POST /api/v1/admin-users.
func (s *Server) CreateAdminUser(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateAdminUserJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	role, err := staff.ParseRole(string(body.Role))
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateAdminUserCommand(actor, kernel.NewUUID(), body.Name, body.Email, role)
	if err != nil {
		return err
	}
	cmd = cmd.WithPhone(value(body.Phone))

	if err := s.h.CreateAdminUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.AdminUserRef{Id: cmd.ID().Bytes()})
}

// DeactivateAdminUser handles POST /api/v1/admin-users/{userId}/deactivate.
func (s *Server) DeactivateAdminUser(ctx echo.Context, userId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	userID, err := toKernelID("user_id", userId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeactivateAdminUserCommand(actor, userID)
	if err != nil {
		return err
	}
	if err := s.h.DeactivateAdminUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
