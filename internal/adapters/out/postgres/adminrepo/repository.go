// Package adminrepo persists staff accounts with GORM and resolves signed-in
// principals to them.
package adminrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUserDTO represents the database structure of a staff account.
type AdminUserDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string     `gorm:"type:varchar(50)"`
	Role      string     `gorm:"type:varchar(20);not null;index"`
	IsActive  bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
	LastLogin *time.Time `gorm:"index"`
}

func (AdminUserDTO) TableName() string {
	return "admin_users"
}

// GormAdminUserRepository implements ports.AdminUserRepository using GORM.
// Emails are stored lowercased, so lookups compare lowercased input.
type GormAdminUserRepository struct {
	db *gorm.DB
}

func NewGormAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

func (r *GormAdminUserRepository) Add(ctx context.Context, u *staff.AdminUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAdminUserRepository) Update(ctx context.Context, u *staff.AdminUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).Model(&AdminUserDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("admin user", u.ID().String())
	}

	return nil
}

func (r *GormAdminUserRepository) Get(ctx context.Context, id kernel.UUID) (*staff.AdminUser, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, id.String(), "id = ?", id.Bytes())
}

func (r *GormAdminUserRepository) GetByEmail(ctx context.Context, email string) (*staff.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return r.first(ctx, email, "email = ?", email)
}

func (r *GormAdminUserRepository) first(ctx context.Context, key string, query string, args ...any) (*staff.AdminUser, error) {
	var dto AdminUserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin user", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(u *staff.AdminUser) AdminUserDTO {
	return AdminUserDTO{
		ID:        u.ID().Bytes(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		LastLogin: u.LastLogin(),
	}
}

func toDomain(dto AdminUserDTO) (*staff.AdminUser, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreAdminUser(id, dto.Name, dto.Email, dto.Phone, role, dto.IsActive, dto.CreatedAt, dto.LastLogin)
}
