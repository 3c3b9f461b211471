package kernel

import (
	"fmt"
	"strings"

	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

// LocationKind tells whether an order goes to a hotel room or a restaurant table.
type LocationKind int

const (
	UnknownLocation LocationKind = iota
	RoomLocation
	TableLocation
)

func (k LocationKind) String() string {
	switch k {
	case RoomLocation:
		return "room"
	case TableLocation:
		return "table"
	default:
		return "unknown"
	}
}

const maxLocationNumberLength = 20

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewRoomLocation or NewTableLocation constructors")

// Location is where an order is served: a room number for room service, a
// table number for the restaurant and the bar.
//
// Example:
//
//	loc, err := kernel.NewRoomLocation("205")
//	fmt.Println(loc) // Room 205
type Location struct { //nolint:recvcheck //using for validation
	kind   LocationKind
	number string
	guard  guard.ConstructorGuard
}

// NewRoomLocation builds a room location. The number is trimmed and must be
// non-empty and at most 20 characters.
func NewRoomLocation(number string) (Location, error) {
	return newLocation(RoomLocation, number)
}

// NewTableLocation builds a table location with the same rules as NewRoomLocation.
func NewTableLocation(number string) (Location, error) {
	return newLocation(TableLocation, number)
}

func newLocation(kind LocationKind, number string) (Location, error) {
	loc := Location{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}
	if err := loc.setNumber(number); err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Kind() LocationKind {
	return l.kind
}

func (l Location) Number() string {
	return l.number
}

func (l Location) IsRoom() bool {
	return l.kind == RoomLocation
}

func (l Location) IsTable() bool {
	return l.kind == TableLocation
}

func (l Location) String() string {
	switch l.kind {
	case RoomLocation:
		return "Room " + l.number
	case TableLocation:
		return "Table " + l.number
	default:
		return "Location()"
	}
}

func (l *Location) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError(l.kind.String() + " number")
	}
	if len(number) > maxLocationNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			l.kind.String()+" number",
			fmt.Errorf("%q is longer than %d characters", number, maxLocationNumberLength),
		)
	}

	l.number = number
	return nil
}
