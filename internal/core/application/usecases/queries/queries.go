// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the API and read with raw SQL,
// bypassing the aggregates.
package queries

import (
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"github.com/google/uuid"
)

func validateActor(actor *staff.AdminUser) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}

func uuidFromDB(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func nullableUUIDFromDB(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := uuidFromDB(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// locationLabel renders a stored location the way the domain does,
// "Room 101" or "Table 4". An empty kind renders as "".
func locationLabel(kind string, number string) string {
	var (
		loc kernel.Location
		err error
	)
	switch kind {
	case kernel.RoomLocation.String():
		loc, err = kernel.NewRoomLocation(number)
	case kernel.TableLocation.String():
		loc, err = kernel.NewTableLocation(number)
	default:
		return ""
	}
	if err != nil {
		return number
	}
	return loc.String()
}
