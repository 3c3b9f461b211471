package commands

import (
	"errors"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var (
	ErrSaveGuestCommandIsNotConstructed = errors.New(
		"SaveGuestCommand must be created via NewRegisterGuestCommand or NewUpdateGuestCommand",
	)
	ErrRemoveGuestCommandIsNotConstructed = errors.New(
		"RemoveGuestCommand must be created via NewRemoveGuestCommand constructor",
	)
)

// SaveGuestCommand carries a full guest record. It registers a new guest or
// replaces an existing one depending on the constructor used.
type SaveGuestCommand struct {
	actor      *staff.AdminUser
	id         kernel.UUID
	name       string
	roomNumber string
	checkIn    time.Time
	checkOut   time.Time
	email      string
	phone      string
	isUpdate   bool

	guard guard.ConstructorGuard
}

// NewRegisterGuestCommand builds a command for a new stay.
func NewRegisterGuestCommand(
	actor *staff.AdminUser,
	id kernel.UUID,
	name string,
	roomNumber string,
	checkIn time.Time,
	checkOut time.Time,
) (SaveGuestCommand, error) {
	return newSaveGuestCommand(actor, id, name, roomNumber, checkIn, checkOut, false)
}

// NewUpdateGuestCommand builds a command that replaces the stored guest id.
func NewUpdateGuestCommand(
	actor *staff.AdminUser,
	id kernel.UUID,
	name string,
	roomNumber string,
	checkIn time.Time,
	checkOut time.Time,
) (SaveGuestCommand, error) {
	return newSaveGuestCommand(actor, id, name, roomNumber, checkIn, checkOut, true)
}

func newSaveGuestCommand(
	actor *staff.AdminUser,
	id kernel.UUID,
	name string,
	roomNumber string,
	checkIn time.Time,
	checkOut time.Time,
	isUpdate bool,
) (SaveGuestCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate()); err != nil {
		return SaveGuestCommand{}, err
	}

	return SaveGuestCommand{
		actor:      actor,
		id:         id,
		name:       name,
		roomNumber: roomNumber,
		checkIn:    checkIn,
		checkOut:   checkOut,
		isUpdate:   isUpdate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SaveGuestCommand) Validate() error {
	return c.guard.Validate(ErrSaveGuestCommandIsNotConstructed)
}

func (c SaveGuestCommand) Actor() *staff.AdminUser { return c.actor }
func (c SaveGuestCommand) ID() kernel.UUID         { return c.id }
func (c SaveGuestCommand) Name() string            { return c.name }
func (c SaveGuestCommand) RoomNumber() string      { return c.roomNumber }
func (c SaveGuestCommand) CheckIn() time.Time      { return c.checkIn }
func (c SaveGuestCommand) CheckOut() time.Time     { return c.checkOut }
func (c SaveGuestCommand) Email() string           { return c.email }
func (c SaveGuestCommand) Phone() string           { return c.phone }
func (c SaveGuestCommand) IsUpdate() bool          { return c.isUpdate }

func (c SaveGuestCommand) WithContact(email string, phone string) SaveGuestCommand {
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	return c
}

// RemoveGuestCommand deletes a guest record.
type RemoveGuestCommand struct {
	actor *staff.AdminUser
	id    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveGuestCommand(actor *staff.AdminUser, id kernel.UUID) (RemoveGuestCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, id.Validate()); err != nil {
		return RemoveGuestCommand{}, err
	}

	return RemoveGuestCommand{actor: actor, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveGuestCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGuestCommandIsNotConstructed)
}

func (c RemoveGuestCommand) Actor() *staff.AdminUser { return c.actor }
func (c RemoveGuestCommand) ID() kernel.UUID         { return c.id }
