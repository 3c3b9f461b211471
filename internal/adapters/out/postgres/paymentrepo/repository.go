// Package paymentrepo persists payments with GORM.
package paymentrepo

import (
	"context"
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentDTO represents the database structure of a payment.
type PaymentDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_payments_one_completed_per_order,where:status = 'completed'"`
	Amount               int64     `gorm:"not null"`
	Method               string    `gorm:"type:varchar(20);not null;index"`
	Status               string    `gorm:"type:varchar(20);not null;index"`
	TransactionReference string    `gorm:"type:varchar(100)"`
	Notes                string
	CreatedAt            time.Time `gorm:"not null;index"`
	ProcessedBy          uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := PaymentDTO{
		ID:                   p.ID().Bytes(),
		OrderID:              p.OrderID().Bytes(),
		Amount:               p.Amount().Int64(),
		Method:               p.Method().String(),
		Status:               p.Status().String(),
		TransactionReference: p.TransactionReference(),
		Notes:                p.Notes(),
		CreatedAt:            p.CreatedAt(),
		ProcessedBy:          p.ProcessedBy().Bytes(),
	}
	return translate(r.db.WithContext(ctx).Create(&dto).Error, p)
}

func (r *GormPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", p.ID().Bytes()).
		Updates(map[string]any{
			"status":                p.Status().String(),
			"transaction_reference": p.TransactionReference(),
		})
	if err := translate(result.Error, p); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", p.ID().String())
	}

	return nil
}

func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if _, inTx := r.db.Statement.ConnPool.(gorm.TxCommitter); inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto PaymentDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// translate reports a clash on idx_payments_one_completed_per_order as a
// second payment of a paid order. The session must be opened with
// gorm.Config.TranslateError.
func translate(err error, p *payment.Payment) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) && p.IsCompleted() {
		return errs.NewInvalidTransitionErrorWithCause("order", order.Paid.String(), order.Paid.String(), order.ErrOrderIsPaid)
	}
	return err
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	processedBy, err := kernel.UUIDFromBytes(dto.ProcessedBy[:])
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(id, orderID, kernel.Money(dto.Amount), method, status, processedBy, dto.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.SetTransactionReference(dto.TransactionReference)
	p.SetNotes(dto.Notes)

	return p, nil
}
