package commands

import (
	"errors"
	"slices"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order with its first lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(waiter, kernel.NewUUID(), order.RoomService, "101", []OrderItem{
//	    {MenuItemID: breakfastID, Quantity: 1},
//	    {MenuItemID: coffeeID, Quantity: 2, Notes: "no sugar"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        *staff.AdminUser
	orderID      kernel.UUID
	orderType    order.Type
	location     *kernel.Location
	customerName string
	guestID      *kernel.UUID
	notes        string
	items        []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. locationNumber is the room for
// room service and the optional table otherwise.
func NewCreateOrderCommand(
	actor *staff.AdminUser,
	orderID kernel.UUID,
	orderType order.Type,
	locationNumber string,
	items []OrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTypeAndLocation(orderType, locationNumber),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() *staff.AdminUser    { return c.actor }
func (c CreateOrderCommand) OrderID() kernel.UUID       { return c.orderID }
func (c CreateOrderCommand) Type() order.Type           { return c.orderType }
func (c CreateOrderCommand) Location() *kernel.Location { return c.location }
func (c CreateOrderCommand) CustomerName() string       { return c.customerName }
func (c CreateOrderCommand) GuestID() *kernel.UUID      { return c.guestID }
func (c CreateOrderCommand) Notes() string              { return c.notes }
func (c CreateOrderCommand) Items() []OrderItem         { return slices.Clone(c.items) }

// WithCustomer sets the optional customer name and registered guest.
func (c CreateOrderCommand) WithCustomer(name string, guestID *kernel.UUID) CreateOrderCommand {
	c.customerName = strings.TrimSpace(name)
	c.guestID = guestID
	return c
}

func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = strings.TrimSpace(notes)
	return c
}

func (c *CreateOrderCommand) setActor(actor *staff.AdminUser) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTypeAndLocation(orderType order.Type, number string) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType

	if orderType.RequiresRoom() {
		room, err := kernel.NewRoomLocation(number)
		if err != nil {
			return errs.NewValueIsRequiredErrorWithCause("room number", err)
		}
		c.location = &room
		return nil
	}

	if strings.TrimSpace(number) == "" {
		return nil
	}
	table, err := kernel.NewTableLocation(number)
	if err != nil {
		return err
	}
	c.location = &table
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if err := validateOrderItems(items); err != nil {
		return err
	}
	c.items = slices.Clone(items)
	return nil
}
