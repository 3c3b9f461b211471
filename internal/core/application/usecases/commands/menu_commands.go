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
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
		"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
	)
)

// CreateMenuItemCommand adds a dish or drink to the menu. Field rules are
// enforced by menu.NewMenuItem in the handler.
type CreateMenuItemCommand struct {
	actor       *staff.AdminUser
	id          kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money
	imageURL    string
	available   bool

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	actor *staff.AdminUser,
	id kernel.UUID,
	name string,
	category string,
	price kernel.Money,
) (CreateMenuItemCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate()); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		actor:     actor,
		id:        id,
		name:      name,
		category:  category,
		price:     price,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Actor() *staff.AdminUser { return c.actor }
func (c CreateMenuItemCommand) ID() kernel.UUID         { return c.id }
func (c CreateMenuItemCommand) Name() string            { return c.name }
func (c CreateMenuItemCommand) Description() string     { return c.description }
func (c CreateMenuItemCommand) Category() string        { return c.category }
func (c CreateMenuItemCommand) Price() kernel.Money     { return c.price }
func (c CreateMenuItemCommand) ImageURL() string        { return c.imageURL }
func (c CreateMenuItemCommand) Available() bool         { return c.available }

func (c CreateMenuItemCommand) WithDetails(description string, imageURL string, available bool) CreateMenuItemCommand {
	c.description = strings.TrimSpace(description)
	c.imageURL = strings.TrimSpace(imageURL)
	c.available = available
	return c
}

// SetMenuItemAvailabilityCommand takes an item off the menu or puts it back.
type SetMenuItemAvailabilityCommand struct {
	actor     *staff.AdminUser
	id        kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemAvailabilityCommand(actor *staff.AdminUser, id kernel.UUID, available bool) (SetMenuItemAvailabilityCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate()); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return SetMenuItemAvailabilityCommand{
		actor:     actor,
		id:        id,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetMenuItemAvailabilityCommand) Actor() *staff.AdminUser { return c.actor }
func (c SetMenuItemAvailabilityCommand) ID() kernel.UUID         { return c.id }
func (c SetMenuItemAvailabilityCommand) Available() bool         { return c.available }
