// Package guest models a hotel guest staying in a room for a date range.
package guest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"
)

var ErrGuestIsNotConstructed = errors.New("Guest must be created via NewGuest constructor")

// Guest is a registered hotel guest. Room-service orders and room charges are
// matched to guests by room number.
type Guest struct {
	id         kernel.UUID
	name       string
	roomNumber string
	checkIn    time.Time
	checkOut   time.Time
	email      string
	phone      string

	isConstructed bool
}

// NewGuest registers a stay. Check-out may not be before check-in.
func NewGuest(id kernel.UUID, name string, roomNumber string, checkIn time.Time, checkOut time.Time) (*Guest, error) {
	g := &Guest{isConstructed: true}

	if err := errors.Join(
		g.setID(id),
		g.SetName(name),
		g.SetRoomNumber(roomNumber),
		g.SetStay(checkIn, checkOut),
	); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Guest) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGuestIsNotConstructed
	}
	return nil
}

func (g *Guest) ID() kernel.UUID     { return g.id }
func (g *Guest) Name() string        { return g.name }
func (g *Guest) RoomNumber() string  { return g.roomNumber }
func (g *Guest) CheckIn() time.Time  { return g.checkIn }
func (g *Guest) CheckOut() time.Time { return g.checkOut }
func (g *Guest) Email() string       { return g.email }
func (g *Guest) Phone() string       { return g.phone }

// IsInHouse reports whether at falls within the stay.
func (g *Guest) IsInHouse(at time.Time) bool {
	return !at.Before(g.checkIn) && !at.After(g.checkOut)
}

func (g *Guest) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	g.name = name
	return nil
}

func (g *Guest) SetRoomNumber(roomNumber string) error {
	room, err := kernel.NewRoomLocation(roomNumber)
	if err != nil {
		return err
	}
	g.roomNumber = room.Number()
	return nil
}

// SetStay replaces both dates; check-out equal to check-in is a day use.
func (g *Guest) SetStay(checkIn time.Time, checkOut time.Time) error {
	if checkIn.IsZero() {
		return errs.NewValueIsRequiredError("check in")
	}
	if checkOut.IsZero() {
		return errs.NewValueIsRequiredError("check out")
	}
	if checkOut.Before(checkIn) {
		return errs.NewValueIsInvalidErrorWithCause("check out",
			fmt.Errorf("%s is before check in %s", checkOut.Format(time.DateOnly), checkIn.Format(time.DateOnly)))
	}
	g.checkIn = checkIn.UTC()
	g.checkOut = checkOut.UTC()
	return nil
}

func (g *Guest) SetContact(email string, phone string) {
	g.email = strings.TrimSpace(email)
	g.phone = strings.TrimSpace(phone)
}

func (g *Guest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}
