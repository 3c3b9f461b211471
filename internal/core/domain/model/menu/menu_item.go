package menu

import (
	"errors"
	"fmt"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not built by
// NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

const maxNameLength = 200

// MenuItem is a dish, drink or room-service package offered by the hotel.
//
// Invariants:
//   - name and category are non-empty
//   - price is a positive amount of minor currency units
//
// Example:
//
//	coffee, err := menu.NewMenuItem(kernel.NewUUID(), "Freshly Brewed Coffee", "Beverages", 350)
//	if err != nil {
//	    return err
//	}
//	coffee.SetDescription("Premium coffee blend")
type MenuItem struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	available   bool
	imageURL    string

	isConstructed bool
}

// NewMenuItem creates an available menu item.
func NewMenuItem(id kernel.UUID, name string, category string, price kernel.Money) (*MenuItem, error) {
	item := &MenuItem{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a menu item from persisted state.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	available bool,
	imageURL string,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, category, price)
	if err != nil {
		return nil, err
	}
	item.description = description
	item.available = available
	item.imageURL = imageURL
	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID     { return m.id }
func (m *MenuItem) Name() string        { return m.name }
func (m *MenuItem) Description() string { return m.description }
func (m *MenuItem) Price() kernel.Money { return m.price }
func (m *MenuItem) Category() string    { return m.category }
func (m *MenuItem) IsAvailable() bool   { return m.available }
func (m *MenuItem) ImageURL() string    { return m.imageURL }

func (m *MenuItem) SetDescription(description string) {
	m.description = strings.TrimSpace(description)
}

func (m *MenuItem) SetImageURL(url string) {
	m.imageURL = strings.TrimSpace(url)
}

// MarkAvailable puts the item back on the menu.
func (m *MenuItem) MarkAvailable() {
	m.available = true
}

// MarkUnavailable takes the item off the menu. Existing orders keep their lines.
func (m *MenuItem) MarkUnavailable() {
	m.available = false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("longer than %d characters", maxNameLength))
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	m.price = price
	return nil
}
