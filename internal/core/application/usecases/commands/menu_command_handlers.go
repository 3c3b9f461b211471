package commands

import (
	"context"
	"log/slog"

	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/staff"
)

// CreateMenuItemCommandHandler stores a new menu item and drops the cached
// catalog so order entry sees it at once.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	catalog    CatalogInvalidator
	logger     *slog.Logger
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory, catalog CatalogInvalidator, logger *slog.Logger) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     logger,
	}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanManageMenu(), staff.CapManageMenu); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ID(), cmd.Name(), cmd.Category(), cmd.Price())
	if err != nil {
		return err
	}
	item.SetDescription(cmd.Description())
	item.SetImageURL(cmd.ImageURL())
	if !cmd.Available() {
		item.MarkUnavailable()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateCatalog(ctx, h.catalog, h.logger)
	return nil
}

// SetMenuItemAvailabilityCommandHandler toggles availability. Orders already
// holding the item keep their lines.
type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
	catalog    CatalogInvalidator
	logger     *slog.Logger
}

func NewSetMenuItemAvailabilityCommandHandler(
	uowFactory MenuUoWFactory,
	catalog CatalogInvalidator,
	logger *slog.Logger,
) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     logger,
	}
}

func (h SetMenuItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMenuItemAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanManageMenu(), staff.CapManageMenu); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if cmd.Available() {
		item.MarkAvailable()
	} else {
		item.MarkUnavailable()
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateCatalog(ctx, h.catalog, h.logger)
	return nil
}

// invalidateCatalog runs after commit. Failures are logged only; cached
// listings also expire on their TTL.
func invalidateCatalog(ctx context.Context, catalog CatalogInvalidator, logger *slog.Logger) {
	if err := catalog.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "menu catalog invalidation failed", "error", err)
	}
}
