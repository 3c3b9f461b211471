// Package guestrepo persists registered hotel guests with GORM.
package guestrepo

import (
	"context"
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestDTO represents the database structure of a guest.
type GuestDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;index"`
	RoomNumber string    `gorm:"type:varchar(20);not null;index"`
	CheckIn    time.Time `gorm:"not null"`
	CheckOut   time.Time `gorm:"not null"`
	Email      string    `gorm:"type:varchar(255)"`
	Phone      string    `gorm:"type:varchar(50)"`
}

func (GuestDTO) TableName() string {
	return "guests"
}

// GormGuestRepository implements ports.GuestRepository using GORM.
type GormGuestRepository struct {
	db *gorm.DB
}

func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

func (r *GormGuestRepository) Add(ctx context.Context, g *guest.Guest) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dto := fromDomain(g)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormGuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dto := fromDomain(g)
	result := r.db.WithContext(ctx).Model(&GuestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("guest", g.ID().String())
	}

	return nil
}

func (r *GormGuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GuestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("guest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormGuestRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&GuestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("guest", id.String())
	}

	return nil
}

func fromDomain(g *guest.Guest) GuestDTO {
	return GuestDTO{
		ID:         g.ID().Bytes(),
		Name:       g.Name(),
		RoomNumber: g.RoomNumber(),
		CheckIn:    g.CheckIn(),
		CheckOut:   g.CheckOut(),
		Email:      g.Email(),
		Phone:      g.Phone(),
	}
}

func toDomain(dto GuestDTO) (*guest.Guest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	g, err := guest.NewGuest(id, dto.Name, dto.RoomNumber, dto.CheckIn, dto.CheckOut)
	if err != nil {
		return nil, err
	}
	g.SetContact(dto.Email, dto.Phone)

	return g, nil
}
