package menurepo

import (
	"context"

	"hotelpos/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuCatalog reads the orderable menu directly from the database. It
// has nothing to invalidate; a caching decorator sits in front of it in
// production.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// ListAvailable returns available items ordered by category then name.
func (c *GormMenuCatalog) ListAvailable(ctx context.Context, category string) ([]*menu.MenuItem, error) {
	query := c.db.WithContext(ctx).Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var dtos []MenuItemDTO
	if err := query.Order("category").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (c *GormMenuCatalog) Invalidate(_ context.Context) error {
	return nil
}
