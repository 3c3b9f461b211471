package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsPaid is returned when something tries to change a paid order.
	ErrOrderIsPaid = errors.New("order is already paid")
)

// Order is the aggregate root of one restaurant, bar or room-service order.
// It owns its line items and keeps subtotal, tax and total consistent with them.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, type and creating staff member
//   - Room-service orders go to a room; restaurant and bar orders to a table or nowhere
//   - Subtotal, tax and total are derived and recomputed after every line mutation
//   - Line quantities are at least 1
//   - Status only moves forward (see Status)
//   - A paid order accepts no further line mutations
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	orderType    Type
	location     *kernel.Location
	customerName string
	guestID      *kernel.UUID
	notes        string

	// lines keeps insertion order; repeated adds of one menu item stay separate lines
	lines []LineItem

	taxRate  kernel.TaxRate
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	status    Status
	createdAt time.Time
	createdBy kernel.UUID

	events []kernel.DomainEvent

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an empty pending order with zero totals.
//
// Parameters:
//   - id: Unique identifier for the order
//   - orderType: RoomService, Restaurant or Bar
//   - location: the room (required for RoomService) or the table (optional otherwise)
//   - createdBy: the staff member taking the order
//   - createdAt: creation time
//   - taxRate: the rate in force; it stays with the order for its whole life
//
// Example:
//
//	room, _ := kernel.NewRoomLocation("101")
//	o, err := order.NewOrder(kernel.NewUUID(), order.RoomService, &room, staffID, time.Now(), kernel.DefaultTaxRate)
//	if err != nil {
//	    // Handle validation error
//	}
//	o.AddLine(breakfast, 1, "")
//	o.AddLine(coffee, 2, "no sugar")
//	o.Total() // 2484
func NewOrder(
	id kernel.UUID,
	orderType Type,
	location *kernel.Location,
	createdBy kernel.UUID,
	createdAt time.Time,
	taxRate kernel.TaxRate,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		taxRate:       taxRate,
		createdAt:     createdAt.UTC(),
		lines:         make([]LineItem, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTypeAndLocation(orderType, location),
		o.setCreatedBy(createdBy),
		o.setTaxRate(taxRate),
	); err != nil {
		return nil, err
	}

	o.raise(Placed{
		ID:        kernel.NewUUID(),
		OrderID:   o.id,
		OrderType: o.orderType,
		Location:  o.LocationLabel(),
		CreatedBy: o.createdBy,
		At:        o.createdAt,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Totals are recomputed
// from the lines rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	location *kernel.Location,
	createdBy kernel.UUID,
	createdAt time.Time,
	taxRate kernel.TaxRate,
	status Status,
	lines []LineItem,
) (*Order, error) {
	o, err := NewOrder(id, orderType, location, createdBy, createdAt, taxRate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.lines = append(o.lines, lines...)
	o.recalculate()
	o.events = nil

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

// Location returns the room or table, or nil when none was given.
func (o *Order) Location() *kernel.Location {
	return o.location
}

// LocationLabel returns "Room 101", "Table 4" or "".
func (o *Order) LocationLabel() string {
	if o.location == nil {
		return ""
	}
	return o.location.String()
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// GuestID returns the registered guest the order is billed to, or nil.
func (o *Order) GuestID() *kernel.UUID {
	return o.guestID
}

func (o *Order) Notes() string {
	return o.notes
}

// Lines returns a copy of the line items in insertion order.
func (o *Order) Lines() []LineItem {
	return slices.Clone(o.lines)
}

// Line finds a line by id.
func (o *Order) Line(lineID kernel.UUID) (LineItem, bool) {
	if i := o.indexOf(lineID); i >= 0 {
		return o.lines[i], true
	}
	return LineItem{}, false
}

func (o *Order) TaxRate() kernel.TaxRate {
	return o.taxRate
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) Tax() kernel.Money {
	return o.tax
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsPaid() bool {
	return o.status == Paid
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// SetCustomerName records who the order is for (walk-in name, guest name).
func (o *Order) SetCustomerName(name string) {
	o.customerName = strings.TrimSpace(name)
}

// AttachGuest links the order to a registered guest.
func (o *Order) AttachGuest(guestID kernel.UUID) error {
	if err := guestID.Validate(); err != nil {
		return err
	}
	o.guestID = &guestID
	return nil
}

func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// AddLine appends a new line for the menu item, copying its name and current
// price. Adding the same menu item twice yields two independent lines.
//
// It is a no-op, returning false, when quantity is below 1, when item is not a
// valid menu item reference, or when the order is already paid.
func (o *Order) AddLine(item *menu.MenuItem, quantity int, notes string) (kernel.UUID, bool) {
	if quantity < 1 || o.IsPaid() || item.Validate() != nil {
		return kernel.UUID{}, false
	}

	line := LineItem{
		id:         kernel.NewUUID(),
		menuItemID: item.ID(),
		name:       item.Name(),
		unitPrice:  item.Price(),
		quantity:   quantity,
		notes:      strings.TrimSpace(notes),
	}
	o.lines = append(o.lines, line)
	o.recalculate()

	return line.id, true
}

// SetQuantity replaces the quantity of a line. A quantity below 1 or an
// unknown line id leaves the order untouched and returns false.
func (o *Order) SetQuantity(lineID kernel.UUID, quantity int) bool {
	if quantity < 1 || o.IsPaid() {
		return false
	}
	i := o.indexOf(lineID)
	if i < 0 {
		return false
	}

	o.lines[i].quantity = quantity
	o.recalculate()
	return true
}

// DecrementLine takes one unit off a line, removing the line when its last
// unit goes. Unknown ids are a no-op.
func (o *Order) DecrementLine(lineID kernel.UUID) bool {
	if o.IsPaid() {
		return false
	}
	i := o.indexOf(lineID)
	if i < 0 {
		return false
	}

	if o.lines[i].quantity == 1 {
		return o.RemoveLine(lineID)
	}
	o.lines[i].quantity--
	o.recalculate()
	return true
}

// RemoveLine deletes a line. An unknown id is not an error; the result
// reports whether anything was removed.
func (o *Order) RemoveLine(lineID kernel.UUID) bool {
	if o.IsPaid() {
		return false
	}
	i := o.indexOf(lineID)
	if i < 0 {
		return false
	}

	o.lines = slices.Delete(o.lines, i, i+1)
	o.recalculate()
	return true
}

// Advance moves the order one step along the lifecycle.
//
// Returns an *errs.InvalidTransitionError when to is not the immediate
// successor of the current status; the status is never coerced.
//
// Example:
//
//	if err := o.Advance(order.Preparing); err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition)
//	}
func (o *Order) Advance(to Status) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.changeStatus(newStatus)
	return nil
}

// MarkPaid is the payment side channel of the lifecycle: it moves an order
// from any unpaid stage straight to Paid. A second payment is rejected with
// an *errs.InvalidTransitionError wrapping ErrOrderIsPaid.
//
// Only the payment domain service calls this; staff-driven status changes go
// through Advance.
func (o *Order) MarkPaid() error {
	if o.IsPaid() {
		return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), Paid.String(), ErrOrderIsPaid)
	}
	if err := o.status.Validate(); err != nil {
		return err
	}

	o.changeStatus(Paid)
	return nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) changeStatus(to Status) {
	from := o.status
	o.status = to
	o.raise(StatusChanged{
		ID:      kernel.NewUUID(),
		OrderID: o.id,
		From:    from,
		To:      to,
		At:      time.Now().UTC(),
	})
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

// recalculate derives subtotal, tax and total from the lines. It depends on
// nothing but the lines and the tax rate, so running it twice changes nothing.
func (o *Order) recalculate() {
	var subtotal kernel.Money
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Amount())
	}
	o.subtotal = subtotal
	o.tax = o.taxRate.Apply(subtotal)
	o.total = o.subtotal.Add(o.tax)
}

func (o *Order) indexOf(lineID kernel.UUID) int {
	return slices.IndexFunc(o.lines, func(l LineItem) bool {
		return l.id.IsEqual(lineID)
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTypeAndLocation(orderType Type, location *kernel.Location) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType

	if location == nil {
		if orderType.RequiresRoom() {
			return errs.NewValueIsRequiredError("room number")
		}
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if orderType.RequiresRoom() != location.IsRoom() {
		return errs.NewValueIsInvalidErrorWithCause(
			"location is invalid",
			fmt.Errorf("%s orders cannot go to a %s", orderType, location.Kind()),
		)
	}

	loc := *location
	o.location = &loc
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setTaxRate(rate kernel.TaxRate) error {
	if _, err := kernel.NewTaxRate(rate.BasisPoints()); err != nil {
		return err
	}
	o.taxRate = rate
	return nil
}
