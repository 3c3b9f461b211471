package queries

import (
	"errors"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var (
	ErrListAvailableMenuQueryIsNotConstructed = errors.New(
		"ListAvailableMenuQuery must be created via NewListAvailableMenuQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

// ListAvailableMenuQuery lists what can be ordered right now, optionally
// within one category.
//
// Example:
//
//	query := NewListAvailableMenuQuery("Beverages")
//	items, err := handler.Handle(ctx, query)
type ListAvailableMenuQuery struct {
	category string
	guard    guard.ConstructorGuard
}

func NewListAvailableMenuQuery(category string) ListAvailableMenuQuery {
	return ListAvailableMenuQuery{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q ListAvailableMenuQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableMenuQueryIsNotConstructed)
}

func (q ListAvailableMenuQuery) Category() string { return q.category }

// ListMenuItemsQuery is the administrative listing: unavailable items
// included unless filtered out.
type ListMenuItemsQuery struct {
	actor     *staff.AdminUser
	category  string
	available *bool
	guard     guard.ConstructorGuard
}

func NewListMenuItemsQuery(actor *staff.AdminUser, category string, available *bool) (ListMenuItemsQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListMenuItemsQuery{}, err
	}

	return ListMenuItemsQuery{
		actor:     actor,
		category:  strings.TrimSpace(category),
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Actor() *staff.AdminUser { return q.actor }
func (q ListMenuItemsQuery) Category() string        { return q.category }
func (q ListMenuItemsQuery) Available() *bool        { return q.available }

// MenuItemResponse is the read model of a menu item.
type MenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       kernel.Money
	Available   bool
	ImageURL    string
}

func menuItemResponse(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
		Price:       item.Price(),
		Available:   item.IsAvailable(),
		ImageURL:    item.ImageURL(),
	}
}
