package order

import (
	"errors"
	"fmt"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"
)

// LineItem is one line of an order. Name and unit price are copied from the
// menu item when the line is added, so later menu edits never change an
// existing order.
type LineItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	notes      string
}

// RestoreLineItem rebuilds a persisted line. Quantity must be at least 1.
func RestoreLineItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	notes string,
) (LineItem, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := menuItemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("line name"))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%d is negative", unitPrice)))
	}
	if quantity < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:         id,
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   quantity,
		notes:      notes,
	}, nil
}

func (l LineItem) ID() kernel.UUID {
	return l.id
}

func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) Notes() string {
	return l.notes
}

// Amount is unit price × quantity.
func (l LineItem) Amount() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
