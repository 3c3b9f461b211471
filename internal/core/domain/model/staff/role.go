package staff

import (
	"fmt"
	"strings"

	"hotelpos/internal/pkg/errs"
)

// Role is an access level. Higher values include the rights of lower ones.
type Role int

const (
	UnknownRole Role = iota
	Staff
	Manager
	Admin
	SuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Staff:      "staff",
		Manager:    "manager",
		Admin:      "admin",
		SuperAdmin: "super-admin",
	}
}

func AllRoles() []Role {
	return []Role{Staff, Manager, Admin, SuperAdmin}
}

func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for r, name := range getRoleStrings() {
		if name == needle {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// AtLeast reports whether r grants everything other grants.
func (r Role) AtLeast(other Role) bool {
	return r.Validate() == nil && r >= other
}

func (r Role) CanViewAllOrders() bool { return r.AtLeast(Manager) }
func (r Role) CanViewReports() bool   { return r.AtLeast(Manager) }
func (r Role) CanManageMenu() bool    { return r.AtLeast(Admin) }
func (r Role) CanManageStaff() bool   { return r.AtLeast(Admin) }

// CanAssign reports whether a user holding r may create an account with role
// target. Admin and super-admin accounts are created by super-admins only.
func (r Role) CanAssign(target Role) bool {
	if !r.CanManageStaff() || target.Validate() != nil {
		return false
	}
	if target >= Admin {
		return r == SuperAdmin
	}
	return true
}
