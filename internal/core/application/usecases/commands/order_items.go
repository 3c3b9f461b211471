package commands

import (
	"context"
	"fmt"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"
	"hotelpos/internal/pkg/errs"
)

// OrderItem is one requested line: a menu item, how many, and kitchen notes.
type OrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

func validateOrderItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].menu_item_id", i), err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i), item.Quantity, 1, "unbounded")
		}
	}
	return nil
}

// addItems looks the requested menu items up and adds one line per item to o.
// Unknown items fail with *errs.ObjectNotFoundError, unavailable ones with
// *errs.ValueIsInvalidError. Returns the lines that were added.
func addItems(ctx context.Context, menuRepo ports.MenuRepository, o *order.Order, items []OrderItem) ([]order.LineItem, error) {
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuItemID)
	}

	found, err := menuRepo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	menuItems := make([]*menu.MenuItem, 0, len(items))
	for _, item := range items {
		menuItem, ok := found[item.MenuItemID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", item.MenuItemID.String())
		}
		if !menuItem.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu item",
				fmt.Errorf("%s is not available", menuItem.Name()))
		}
		menuItems = append(menuItems, menuItem)
	}

	added := make([]order.LineItem, 0, len(items))
	for i, item := range items {
		lineID, ok := o.AddLine(menuItems[i], item.Quantity, item.Notes)
		if !ok {
			return nil, errs.NewInvalidTransitionErrorWithCause("order", o.Status().String(), o.Status().String(), order.ErrOrderIsPaid)
		}
		line, _ := o.Line(lineID)
		added = append(added, line)
	}

	return added, nil
}

// requireOrderAccess rejects users who neither see all orders nor created o.
func requireOrderAccess(actor *staff.AdminUser, o *order.Order) error {
	return actor.Require(actor.CanViewAllOrders() || o.CreatedBy().IsEqual(actor.ID()), "access order "+o.ID().String())
}
