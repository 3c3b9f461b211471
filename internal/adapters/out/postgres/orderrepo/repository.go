package orderrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"
	"hotelpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and all of its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AppendItems inserts lines that were added to a stored order and refreshes
// its totals. Each line keeps its position within the aggregate.
func (r *GormOrderRepository) AppendItems(ctx context.Context, aggregate *order.Order, lines []order.LineItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	positions := make(map[kernel.UUID]int, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		positions[line.ID()] = i
	}

	dtos := make([]LineItemDTO, 0, len(lines))
	for _, line := range lines {
		position, ok := positions[line.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order line", line.ID().String())
		}
		dtos = append(dtos, lineFromDomain(aggregate.ID(), position, line))
	}

	if err := r.updateColumns(ctx, aggregate); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus saves the order's status and totals. Lines are not touched.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.updateColumns(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) updateColumns(ctx context.Context, aggregate *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":   aggregate.Status().String(),
			"subtotal": aggregate.Subtotal().Int64(),
			"tax":      aggregate.Tax().Int64(),
			"total":    aggregate.Total().Int64(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order with its lines. Inside a unit of work the order row
// stays locked until commit or rollback, so writers of the same order queue
// behind each other and always read the last committed status.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.preloadLines(ctx)
	if r.inTransaction() {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListForViewer returns the orders viewer may see, newest first.
//
// Example:
//
//	ready := order.Ready
//	orders, err := repo.ListForViewer(ctx, waiter, ports.OrderFilter{Status: &ready})
//	// a waiter gets the ready orders they took; a manager gets every ready order
func (r *GormOrderRepository) ListForViewer(
	ctx context.Context,
	viewer *staff.AdminUser,
	filter ports.OrderFilter,
) ([]*order.Order, error) {
	if err := viewer.Validate(); err != nil {
		return nil, err
	}

	query := r.preloadLines(ctx)
	if !viewer.CanViewAllOrders() {
		query = query.Where("created_by = ?", viewer.ID().Bytes())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.RoomNumber != "" {
		query = query.Where("location_kind = ? AND location_number = ?", kernel.RoomLocation.String(), filter.RoomNumber)
	}
	if filter.TableNumber != "" {
		query = query.Where("location_kind = ? AND location_number = ?", kernel.TableLocation.String(), filter.TableNumber)
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where("(customer_name ILIKE ? OR location_number ILIKE ? OR notes ILIKE ?)", pattern, pattern, pattern)
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ListStale returns orders in status created before olderThan, oldest first.
func (r *GormOrderRepository) ListStale(ctx context.Context, status order.Status, olderThan time.Time) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloadLines(ctx).
		Where("status = ? AND created_at < ?", status.String(), olderThan.UTC()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) inTransaction() bool {
	_, ok := r.db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *GormOrderRepository) preloadLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.position")
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
