package commands

import (
	"context"

	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/staff"
)

// SaveGuestCommandHandler registers or updates a guest.
type SaveGuestCommandHandler struct {
	uowFactory GuestUoWFactory
}

func NewSaveGuestCommandHandler(uowFactory GuestUoWFactory) SaveGuestCommandHandler {
	return SaveGuestCommandHandler{uowFactory: uowFactory}
}

func (h SaveGuestCommandHandler) Handle(ctx context.Context, cmd SaveGuestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanManageGuests(), staff.CapManageGuests); err != nil {
		return err
	}

	g, err := guest.NewGuest(cmd.ID(), cmd.Name(), cmd.RoomNumber(), cmd.CheckIn(), cmd.CheckOut())
	if err != nil {
		return err
	}
	g.SetContact(cmd.Email(), cmd.Phone())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	guestRepo := uow.GuestRepository()
	if cmd.IsUpdate() {
		err = guestRepo.Update(ctx, g)
	} else {
		err = guestRepo.Add(ctx, g)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemoveGuestCommandHandler deletes a guest. Orders keep their guest id.
type RemoveGuestCommandHandler struct {
	uowFactory GuestUoWFactory
}

func NewRemoveGuestCommandHandler(uowFactory GuestUoWFactory) RemoveGuestCommandHandler {
	return RemoveGuestCommandHandler{uowFactory: uowFactory}
}

func (h RemoveGuestCommandHandler) Handle(ctx context.Context, cmd RemoveGuestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanManageGuests(), staff.CapManageGuests); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.GuestRepository().Remove(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
