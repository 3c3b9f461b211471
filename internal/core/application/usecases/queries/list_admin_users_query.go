package queries

import (
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrListAdminUsersQueryIsNotConstructed = errors.New(
	"ListAdminUsersQuery must be created via NewListAdminUsersQuery constructor",
)

// ListAdminUsersQuery lists staff accounts, inactive ones included.
type ListAdminUsersQuery struct {
	actor *staff.AdminUser
	guard guard.ConstructorGuard
}

func NewListAdminUsersQuery(actor *staff.AdminUser) (ListAdminUsersQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListAdminUsersQuery{}, err
	}

	return ListAdminUsersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListAdminUsersQuery) Validate() error {
	return q.guard.Validate(ErrListAdminUsersQueryIsNotConstructed)
}

func (q ListAdminUsersQuery) Actor() *staff.AdminUser { return q.actor }

type AdminUserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Role      staff.Role
	IsActive  bool
	CreatedAt time.Time
	LastLogin *time.Time
}
