package queries

import (
	"errors"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrListGuestsQueryIsNotConstructed = errors.New(
	"ListGuestsQuery must be created via NewListGuestsQuery constructor",
)

// ListGuestsQuery lists registered guests, optionally matching search
// against the name or the room number, case-insensitively.
type ListGuestsQuery struct {
	actor  *staff.AdminUser
	search string
	guard  guard.ConstructorGuard
}

func NewListGuestsQuery(actor *staff.AdminUser, search string) (ListGuestsQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListGuestsQuery{}, err
	}

	return ListGuestsQuery{
		actor:  actor,
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListGuestsQuery) Validate() error {
	return q.guard.Validate(ErrListGuestsQueryIsNotConstructed)
}

func (q ListGuestsQuery) Actor() *staff.AdminUser { return q.actor }
func (q ListGuestsQuery) Search() string          { return q.search }

type GuestResponse struct {
	ID         kernel.UUID
	Name       string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Email      string
	Phone      string
}
