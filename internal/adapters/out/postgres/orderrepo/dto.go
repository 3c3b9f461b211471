// Package orderrepo persists order aggregates and their line items with GORM.
// An order maps to one row in "orders" and one row per line in "order_items";
// totals are stored alongside so reports can aggregate without the domain.
package orderrepo

import (
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Type         string      `gorm:"type:varchar(20);not null;index"`
	Location     LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	CustomerName string      `gorm:"type:varchar(255)"`
	GuestID      *uuid.UUID  `gorm:"type:uuid;index"`
	Notes        string
	TaxRateBP    int           `gorm:"column:tax_rate_bp;not null"`
	Subtotal     int64         `gorm:"not null"`
	Tax          int64         `gorm:"not null"`
	Total        int64         `gorm:"not null"`
	Status       string        `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time     `gorm:"not null;index"`
	CreatedBy    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Lines        []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is the embedded room or table of an order. Kind is empty when
// the order has no location.
type LocationDTO struct {
	Kind   string `gorm:"type:varchar(10)"`
	Number string `gorm:"type:varchar(20)"`
}

// LineItemDTO is one line of an order. Position keeps insertion order.
type LineItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	UnitPrice  int64     `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	Notes      string
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var guestID *uuid.UUID
	if id := aggregate.GuestID(); id != nil {
		raw := id.Bytes()
		guestID = &raw
	}

	var location LocationDTO
	if loc := aggregate.Location(); loc != nil {
		location = LocationDTO{
			Kind:   loc.Kind().String(),
			Number: loc.Number(),
		}
	}

	lines := aggregate.Lines()
	lineDTOs := make([]LineItemDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, lineFromDomain(aggregate.ID(), i, line))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Type:         aggregate.Type().String(),
		Location:     location,
		CustomerName: aggregate.CustomerName(),
		GuestID:      guestID,
		Notes:        aggregate.Notes(),
		TaxRateBP:    aggregate.TaxRate().BasisPoints(),
		Subtotal:     aggregate.Subtotal().Int64(),
		Tax:          aggregate.Tax().Int64(),
		Total:        aggregate.Total().Int64(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		CreatedBy:    aggregate.CreatedBy().Bytes(),
		Lines:        lineDTOs,
	}
}

func lineFromDomain(orderID kernel.UUID, position int, line order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:         line.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		Position:   position,
		MenuItemID: line.MenuItemID().Bytes(),
		Name:       line.Name(),
		UnitPrice:  line.UnitPrice().Int64(),
		Quantity:   line.Quantity(),
		Notes:      line.Notes(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Lines must already be
// sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	taxRate, err := kernel.NewTaxRate(dto.TaxRateBP)
	if err != nil {
		return nil, err
	}

	location, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	o, err := order.RestoreOrder(id, orderType, location, createdBy, dto.CreatedAt, taxRate, status, lines)
	if err != nil {
		return nil, err
	}

	o.SetCustomerName(dto.CustomerName)
	o.SetNotes(dto.Notes)
	if dto.GuestID != nil {
		guestID, guestErr := kernel.UUIDFromBytes((*dto.GuestID)[:])
		if guestErr != nil {
			return nil, guestErr
		}
		if guestErr = o.AttachGuest(guestID); guestErr != nil {
			return nil, guestErr
		}
	}

	return o, nil
}

func locationToDomain(dto LocationDTO) (*kernel.Location, error) {
	var (
		loc kernel.Location
		err error
	)
	switch dto.Kind {
	case "":
		return nil, nil
	case kernel.RoomLocation.String():
		loc, err = kernel.NewRoomLocation(dto.Number)
	default:
		loc, err = kernel.NewTableLocation(dto.Number)
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func lineToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(id, menuItemID, dto.Name, kernel.Money(dto.UnitPrice), dto.Quantity, dto.Notes)
}
