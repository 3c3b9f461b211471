package ports

import (
	"context"

	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
)

// MenuRepository stores menu items for administration and order entry.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get returns *errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany returns the items found among ids, keyed by id string.
	// Missing ids are simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[string]*menu.MenuItem, error)
}

// PaymentRepository stores payments. Add runs in the same unit of work as the
// status update of the paid order. At most one completed payment is stored per
// order; a second one fails with *errs.InvalidTransitionError.
type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error

	// Update saves the status and transaction reference of a stored payment.
	Update(ctx context.Context, p *payment.Payment) error

	// Get locks the payment until the unit of work ends.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}

type GuestRepository interface {
	Add(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
	Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

type AdminUserRepository interface {
	Add(ctx context.Context, u *staff.AdminUser) error
	Update(ctx context.Context, u *staff.AdminUser) error
	Get(ctx context.Context, id kernel.UUID) (*staff.AdminUser, error)

	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*staff.AdminUser, error)
}
