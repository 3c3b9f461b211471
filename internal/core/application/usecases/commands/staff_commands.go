package commands

import (
	"errors"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var (
	ErrCreateAdminUserCommandIsNotConstructed = errors.New(
		"CreateAdminUserCommand must be created via NewCreateAdminUserCommand constructor",
	)
	ErrDeactivateAdminUserCommandIsNotConstructed = errors.New(
		"DeactivateAdminUserCommand must be created via NewDeactivateAdminUserCommand constructor",
	)
)

// CreateAdminUserCommand opens a staff account.
type CreateAdminUserCommand struct {
	actor *staff.AdminUser
	id    kernel.UUID
	name  string
	email string
	phone string
	role  staff.Role

	guard guard.ConstructorGuard
}

func NewCreateAdminUserCommand(
	actor *staff.AdminUser,
	id kernel.UUID,
	name string,
	email string,
	role staff.Role,
) (CreateAdminUserCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate(), role.Validate()); err != nil {
		return CreateAdminUserCommand{}, err
	}

	return CreateAdminUserCommand{
		actor: actor,
		id:    id,
		name:  name,
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAdminUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminUserCommandIsNotConstructed)
}

func (c CreateAdminUserCommand) Actor() *staff.AdminUser { return c.actor }
func (c CreateAdminUserCommand) ID() kernel.UUID         { return c.id }
func (c CreateAdminUserCommand) Name() string            { return c.name }
func (c CreateAdminUserCommand) Email() string           { return c.email }
func (c CreateAdminUserCommand) Phone() string           { return c.phone }
func (c CreateAdminUserCommand) Role() staff.Role        { return c.role }

func (c CreateAdminUserCommand) WithPhone(phone string) CreateAdminUserCommand {
	c.phone = strings.TrimSpace(phone)
	return c
}

// DeactivateAdminUserCommand disables an account without deleting its history.
type DeactivateAdminUserCommand struct {
	actor *staff.AdminUser
	id    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateAdminUserCommand(actor *staff.AdminUser, id kernel.UUID) (DeactivateAdminUserCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate()); err != nil {
		return DeactivateAdminUserCommand{}, err
	}

	return DeactivateAdminUserCommand{actor: actor, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateAdminUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateAdminUserCommandIsNotConstructed)
}

func (c DeactivateAdminUserCommand) Actor() *staff.AdminUser { return c.actor }
func (c DeactivateAdminUserCommand) ID() kernel.UUID         { return c.id }
