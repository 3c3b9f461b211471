package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is the cause returned when an account with the
// same email exists.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// ErrCannotDeactivateSelf is the cause returned when users try to lock themselves out.
var ErrCannotDeactivateSelf = errors.New("cannot deactivate your own account")

// CreateAdminUserCommandHandler opens accounts. Admin and super-admin accounts
// may only be opened by a super-admin.
type CreateAdminUserCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewCreateAdminUserCommandHandler(uowFactory StaffUoWFactory) CreateAdminUserCommandHandler {
	return CreateAdminUserCommandHandler{uowFactory: uowFactory}
}

func (h CreateAdminUserCommandHandler) Handle(ctx context.Context, cmd CreateAdminUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanAssign(cmd.Role()), staff.CapAssignRolePrefix+cmd.Role().String()); err != nil {
		return err
	}

	u, err := staff.NewAdminUser(cmd.ID(), cmd.Name(), cmd.Email(), cmd.Role(), time.Now())
	if err != nil {
		return err
	}
	u.SetPhone(cmd.Phone())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminUserRepository()
	_, err = repo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, u.Email()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeactivateAdminUserCommandHandler disables an account. Deactivating an
// admin or super-admin takes a super-admin.
type DeactivateAdminUserCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewDeactivateAdminUserCommandHandler(uowFactory StaffUoWFactory) DeactivateAdminUserCommandHandler {
	return DeactivateAdminUserCommandHandler{uowFactory: uowFactory}
}

func (h DeactivateAdminUserCommandHandler) Handle(ctx context.Context, cmd DeactivateAdminUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanManageStaff(), staff.CapManageStaff); err != nil {
		return err
	}
	if actor.ID().IsEqual(cmd.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("id", ErrCannotDeactivateSelf)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminUserRepository()
	target, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if err = actor.Require(actor.CanAssign(target.Role()), staff.CapAssignRolePrefix+target.Role().String()); err != nil {
		return err
	}

	target.Deactivate()
	if err = repo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
