package queries

import (
	"context"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableMenuQueryHandler serves order entry from the menu catalog,
// which is cached.
type ListAvailableMenuQueryHandler struct {
	catalog ports.MenuCatalog
}

func NewListAvailableMenuQueryHandler(catalog ports.MenuCatalog) ListAvailableMenuQueryHandler {
	return ListAvailableMenuQueryHandler{catalog: catalog}
}

func (h ListAvailableMenuQueryHandler) Handle(ctx context.Context, query ListAvailableMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.catalog.ListAvailable(ctx, query.Category())
	if err != nil {
		return nil, err
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponse(item))
	}
	return response, nil
}

// ListMenuItemsQueryHandler reads the full menu for administrators.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanManageMenu(), staff.CapManageMenu); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.Category() != "" {
		where = append(where, "category = ?")
		args = append(args, query.Category())
	}
	if available := query.Available(); available != nil {
		where = append(where, "available = ?")
		args = append(args, *available)
	}

	stmt := `
		SELECT id, name, description, category, price, available, image_url
		FROM menu_items`
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			item  MenuItemResponse
			id    uuid.UUID
			price int64
		)
		if err = rows.Scan(&id, &item.Name, &item.Description, &item.Category, &price, &item.Available, &item.ImageURL); err != nil {
			return nil, err
		}

		if item.ID, err = uuidFromDB(id); err != nil {
			return nil, err
		}
		item.Price = kernel.Money(price)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
