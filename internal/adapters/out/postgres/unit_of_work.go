// Package postgres provides the GORM-based Unit of Work of the POS.
// A unit of work hands out repositories bound to one transaction and, once
// that transaction commits, publishes the domain events raised by the
// aggregates written through it.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.PaymentRepository().Add(ctx, p); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().UpdateStatus(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for one goroutine and one business operation.
package postgres

import (
	"context"
	"log/slog"

	"hotelpos/internal/adapters/out/postgres/adminrepo"
	"hotelpos/internal/adapters/out/postgres/guestrepo"
	"hotelpos/internal/adapters/out/postgres/menurepo"
	"hotelpos/internal/adapters/out/postgres/orderrepo"
	"hotelpos/internal/adapters/out/postgres/paymentrepo"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that raise domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, amqpPublisher, logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction and then publishes the domain events of
// every tracked aggregate. Publication failures are logged and do not undo
// the commit.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) GuestRepository() ports.GuestRepository {
	return guestrepo.NewGormGuestRepository(uow.conn())
}

func (uow *GormUnitOfWork) AdminUserRepository() ports.AdminUserRepository {
	return adminrepo.NewGormAdminUserRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it; the same aggregate may be tracked more than once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[kernel.UUID]bool, len(tracked))
	for _, t := range tracked {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true

		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		events := source.DomainEvents()
		if len(events) == 0 {
			continue
		}

		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.ErrorContext(ctx, "publishing domain events failed",
				"aggregate_id", t.ID.String(),
				"events", len(events),
				"error", err,
			)
			continue
		}
		source.ClearDomainEvents()
	}
}
