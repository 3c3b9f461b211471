// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management and persistence.
package commands

import (
	"context"

	"hotelpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it writes to.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	GuestRepoFactory interface {
		GuestRepository() ports.GuestRepository
	}

	AdminUserRepoFactory interface {
		AdminUserRepository() ports.AdminUserRepository
	}

	// OrderUoW is used by order entry: menu lookups and order writes share
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.MenuRepository().GetMany(ctx, ids)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW inserts a payment and flips its order to paid atomically.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	GuestUoW interface {
		TxManager
		GuestRepoFactory
	}

	GuestUoWFactory interface {
		Create() GuestUoW
	}

	StaffUoW interface {
		TxManager
		AdminUserRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// CatalogInvalidator drops cached menu listings after menu writes.
	CatalogInvalidator interface {
		Invalidate(ctx context.Context) error
	}
)
