package menurepo

import (
	"context"
	"errors"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites every column of a stored item, including empty ones.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads all requested items with a single query.
func (r *GormMenuRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[string]*menu.MenuItem, error) {
	result := make(map[string]*menu.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items, err := toDomainList(dtos)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ID().String()] = item
	}

	return result, nil
}
