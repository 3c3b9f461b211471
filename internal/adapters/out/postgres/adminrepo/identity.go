package adminrepo

import (
	"context"
	"errors"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"gorm.io/gorm"
)

const capabilitySignIn = "sign in"

var (
	// ErrUnknownPrincipal is the cause returned when no account matches a principal.
	ErrUnknownPrincipal = errors.New("principal does not match any account")

	// ErrAccountInactive is the cause returned for deactivated accounts.
	ErrAccountInactive = errors.New("account is deactivated")
)

// GormIdentityProvider implements ports.IdentityProvider. A principal is an
// account id or an email address, as asserted by the upstream sign-in.
type GormIdentityProvider struct {
	users *GormAdminUserRepository
}

func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{users: NewGormAdminUserRepository(db)}
}

// Resolve returns the active account behind principal. Unknown or
// deactivated accounts yield *errs.UnauthorizedError.
func (p *GormIdentityProvider) Resolve(ctx context.Context, principal string) (*staff.AdminUser, error) {
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return nil, errs.NewUnauthorizedErrorWithCause("anonymous", capabilitySignIn, ErrUnknownPrincipal)
	}

	var (
		u   *staff.AdminUser
		err error
	)
	if id, parseErr := kernel.UUIDFromString(principal); parseErr == nil {
		u, err = p.users.Get(ctx, id)
	} else {
		u, err = p.users.GetByEmail(ctx, principal)
	}
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewUnauthorizedErrorWithCause(principal, capabilitySignIn, ErrUnknownPrincipal)
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errs.NewUnauthorizedErrorWithCause(u.Email(), capabilitySignIn, ErrAccountInactive)
	}

	return u, nil
}
