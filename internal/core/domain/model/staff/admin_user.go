package staff

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"
)

var ErrAdminUserIsNotConstructed = errors.New("AdminUser must be created via NewAdminUser constructor")

// Capability names, used in authorization errors and logs.
const (
	CapViewAllOrders    = "view all orders"
	CapViewReports      = "view reports"
	CapManageMenu       = "manage the menu"
	CapManageStaff      = "manage staff"
	CapManageGuests     = "manage guests"
	CapTakeOrders       = "take orders"
	CapProcessPayments  = "process payments"
	CapAssignRolePrefix = "assign role "
)

// AdminUser is an employee account. Inactive accounts hold no capability.
type AdminUser struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role      Role
	isActive  bool
	createdAt time.Time
	lastLogin *time.Time

	isConstructed bool
}

// NewAdminUser creates an active account.
func NewAdminUser(id kernel.UUID, name string, email string, role Role, createdAt time.Time) (*AdminUser, error) {
	u := &AdminUser{
		isActive:      true,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

// RestoreAdminUser rebuilds an account from persisted state.
func RestoreAdminUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	isActive bool,
	createdAt time.Time,
	lastLogin *time.Time,
) (*AdminUser, error) {
	u, err := NewAdminUser(id, name, email, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.phone = phone
	u.isActive = isActive
	u.lastLogin = lastLogin
	return u, nil
}

func (u *AdminUser) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrAdminUserIsNotConstructed
	}
	return nil
}

func (u *AdminUser) ID() kernel.UUID       { return u.id }
func (u *AdminUser) Name() string          { return u.name }
func (u *AdminUser) Email() string         { return u.email }
func (u *AdminUser) Phone() string         { return u.phone }
func (u *AdminUser) Role() Role            { return u.role }
func (u *AdminUser) IsActive() bool        { return u.isActive }
func (u *AdminUser) CreatedAt() time.Time  { return u.createdAt }
func (u *AdminUser) LastLogin() *time.Time { return u.lastLogin }

func (u *AdminUser) SetPhone(phone string) {
	u.phone = strings.TrimSpace(phone)
}

// RecordLogin stamps the time of the latest successful sign-in.
func (u *AdminUser) RecordLogin(at time.Time) {
	at = at.UTC()
	u.lastLogin = &at
}

func (u *AdminUser) Deactivate() {
	u.isActive = false
}

func (u *AdminUser) Activate() {
	u.isActive = true
}

func (u *AdminUser) CanViewAllOrders() bool   { return u.active() && u.role.CanViewAllOrders() }
func (u *AdminUser) CanViewReports() bool     { return u.active() && u.role.CanViewReports() }
func (u *AdminUser) CanManageMenu() bool      { return u.active() && u.role.CanManageMenu() }
func (u *AdminUser) CanManageStaff() bool     { return u.active() && u.role.CanManageStaff() }
func (u *AdminUser) CanManageGuests() bool    { return u.active() }
func (u *AdminUser) CanTakeOrders() bool      { return u.active() }
func (u *AdminUser) CanProcessPayments() bool { return u.active() }

func (u *AdminUser) CanAssign(role Role) bool {
	return u.active() && u.role.CanAssign(role)
}

// Require returns an *errs.UnauthorizedError naming capability unless allowed is true.
//
//	if err := user.Require(user.CanViewReports(), staff.CapViewReports); err != nil {
//	    return nil, err
//	}
func (u *AdminUser) Require(allowed bool, capability string) error {
	if allowed {
		return nil
	}
	actor := "anonymous"
	if u != nil {
		actor = fmt.Sprintf("%s (%s)", u.email, u.role)
	}
	return errs.NewUnauthorizedError(actor, capability)
}

func (u *AdminUser) active() bool {
	return u != nil && u.isConstructed && u.isActive
}

func (u *AdminUser) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *AdminUser) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *AdminUser) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}
