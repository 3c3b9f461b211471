package ports

import (
	"context"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
)

// IdentityProvider turns an authenticated principal (account id or email, as
// asserted by the upstream sign-in) into the acting user.
//
// Returns *errs.UnauthorizedError for unknown principals.
type IdentityProvider interface {
	Resolve(ctx context.Context, principal string) (*staff.AdminUser, error)
}

// EventPublisher delivers domain events to other systems after a commit.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
