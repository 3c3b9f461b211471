package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it after Begin share one transaction.
// Domain events of aggregates written through it are published after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the domain
	// events of every tracked aggregate.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
	MenuRepository() MenuRepository
	GuestRepository() GuestRepository
	AdminUserRepository() AdminUserRepository
}
