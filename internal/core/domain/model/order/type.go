package order

import (
	"fmt"
	"strings"

	"hotelpos/internal/pkg/errs"
)

// Type is the outlet an order belongs to.
type Type int

const (
	UnknownType Type = iota
	RoomService
	Restaurant
	Bar
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		RoomService: "room-service",
		Restaurant:  "restaurant",
		Bar:         "bar",
	}
}

// AllTypes lists the valid order types.
func AllTypes() []Type {
	return []Type{RoomService, Restaurant, Bar}
}

// ParseType converts "room-service", "restaurant" or "bar" into a Type.
func ParseType(s string) (Type, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, name := range getTypeStrings() {
		if name == needle {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a valid order type", s))
}

func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// RequiresRoom reports whether orders of this type are delivered to a room.
func (t Type) RequiresRoom() bool {
	return t == RoomService
}
