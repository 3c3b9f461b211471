// Package menurepo persists menu items and serves the menu catalog straight
// from PostgreSQL.
package menurepo

import (
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure of a menu item.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string
	Category    string `gorm:"type:varchar(100);not null;index"`
	Price       int64  `gorm:"not null"`
	Available   bool   `gorm:"not null;index"`
	ImageURL    string `gorm:"type:varchar(500)"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
		Price:       item.Price().Int64(),
		Available:   item.IsAvailable(),
		ImageURL:    item.ImageURL(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Description,
		dto.Category,
		kernel.Money(dto.Price),
		dto.Available,
		dto.ImageURL,
	)
}

func toDomainList(dtos []MenuItemDTO) ([]*menu.MenuItem, error) {
	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
