package http

import (
	"time"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/generated/servers"
	"hotelpos/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernelID, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func toMenuItem(item queries.MenuItemResponse) servers.MenuItem {
	return servers.MenuItem{
		Id:          item.ID.Bytes(),
		Name:        item.Name,
		Description: optional(item.Description),
		Category:    item.Category,
		Price:       item.Price.Int64(),
		Available:   item.Available,
		ImageUrl:    optional(item.ImageURL),
	}
}

func toMenuItems(items []queries.MenuItemResponse) []servers.MenuItem {
	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return response
}

func menuItemFromCommand(cmd commands.CreateMenuItemCommand) servers.MenuItem {
	return servers.MenuItem{
		Id:          cmd.ID().Bytes(),
		Name:        cmd.Name(),
		Description: optional(cmd.Description()),
		Category:    cmd.Category(),
		Price:       cmd.Price().Int64(),
		Available:   cmd.Available(),
		ImageUrl:    optional(cmd.ImageURL()),
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:         item.ID.Bytes(),
			MenuItemId: item.MenuItemID.Bytes(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.Int64(),
			Quantity:   item.Quantity,
			Notes:      optional(item.Notes),
			LineTotal:  item.LineTotal.Int64(),
		}
	}

	response := servers.Order{
		Id:             o.ID.Bytes(),
		Type:           servers.OrderType(o.Type.String()),
		Status:         servers.OrderStatus(o.Status.String()),
		LocationNumber: optional(o.LocationNumber),
		Location:       optional(o.Location),
		CustomerName:   optional(o.CustomerName),
		Notes:          optional(o.Notes),
		TaxRateBp:      o.TaxRateBP,
		Subtotal:       o.Subtotal.Int64(),
		Tax:            o.Tax.Int64(),
		Total:          o.Total.Int64(),
		CreatedAt:      o.CreatedAt,
		CreatedBy:      o.CreatedBy.Bytes(),
		CreatedByName:  optional(o.CreatedByName),
		Items:          items,
	}
	if o.GuestID != nil {
		guestID := o.GuestID.Bytes()
		response.GuestId = &guestID
	}
	return response
}

func toOrders(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toPayments(payments []queries.PaymentResponse) []servers.Payment {
	response := make([]servers.Payment, len(payments))
	for i, p := range payments {
		response[i] = servers.Payment{
			Id:                   p.ID.Bytes(),
			OrderId:              p.OrderID.Bytes(),
			Amount:               p.Amount.Int64(),
			Method:               servers.PaymentMethod(p.Method.String()),
			Status:               servers.PaymentStatus(p.Status.String()),
			TransactionReference: optional(p.TransactionReference),
			Notes:                optional(p.Notes),
			CreatedAt:            p.CreatedAt,
			ProcessedBy:          p.ProcessedBy.Bytes(),
			ProcessedByName:      optional(p.ProcessedByName),
		}
	}
	return response
}

func toGuests(guests []queries.GuestResponse) []servers.Guest {
	response := make([]servers.Guest, len(guests))
	for i, g := range guests {
		response[i] = servers.Guest{
			Id:         g.ID.Bytes(),
			Name:       g.Name,
			RoomNumber: g.RoomNumber,
			CheckIn:    g.CheckIn,
			CheckOut:   g.CheckOut,
			Email:      optional(g.Email),
			Phone:      optional(g.Phone),
		}
	}
	return response
}

func guestFromCommand(cmd commands.SaveGuestCommand) servers.Guest {
	return servers.Guest{
		Id:         cmd.ID().Bytes(),
		Name:       cmd.Name(),
		RoomNumber: cmd.RoomNumber(),
		CheckIn:    cmd.CheckIn(),
		CheckOut:   cmd.CheckOut(),
		Email:      optional(cmd.Email()),
		Phone:      optional(cmd.Phone()),
	}
}

func toAdminUser(u *staff.AdminUser) servers.AdminUser {
	return servers.AdminUser{
		Id:        u.ID().Bytes(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     optional(u.Phone()),
		Role:      servers.AdminRole(u.Role().String()),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		LastLogin: u.LastLogin(),
	}
}

func toAdminUsers(users []queries.AdminUserResponse) []servers.AdminUser {
	response := make([]servers.AdminUser, len(users))
	for i, u := range users {
		response[i] = servers.AdminUser{
			Id:        u.ID.Bytes(),
			Name:      u.Name,
			Email:     u.Email,
			Phone:     optional(u.Phone),
			Role:      servers.AdminRole(u.Role.String()),
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
		}
	}
	return response
}

func toReportPeriod(p queries.ReportPeriod) servers.ReportPeriod {
	return servers.ReportPeriod{
		StartDate: toDate(p.StartDate),
		EndDate:   toDate(p.EndDate),
	}
}

func toSalesReport(r queries.SalesReport) servers.SalesReport {
	byType := make([]servers.SalesByType, len(r.ByType))
	for i, b := range r.ByType {
		byType[i] = servers.SalesByType{Type: b.Key, OrderCount: b.OrderCount, TotalRevenue: b.Revenue.Int64()}
	}
	byStatus := make([]servers.SalesByStatus, len(r.ByStatus))
	for i, b := range r.ByStatus {
		byStatus[i] = servers.SalesByStatus{Status: b.Key, OrderCount: b.OrderCount, TotalRevenue: b.Revenue.Int64()}
	}
	top := make([]servers.TopSellingItem, len(r.TopItems))
	for i, item := range r.TopItems {
		top[i] = servers.TopSellingItem{Name: item.Name, TotalQuantity: item.Quantity, TotalRevenue: item.Revenue.Int64()}
	}

	return servers.SalesReport{
		Period: toReportPeriod(r.Period),
		Summary: servers.SalesSummary{
			TotalRevenue:      r.TotalRevenue.Int64(),
			TotalOrders:       r.TotalOrders,
			AverageOrderValue: r.AverageOrderValue.Int64(),
		},
		SalesByType:     byType,
		SalesByStatus:   byStatus,
		TopSellingItems: top,
	}
}

func toPaymentReport(r queries.PaymentReport) servers.PaymentReport {
	byMethod := make([]servers.PaymentsByMethod, len(r.ByMethod))
	for i, b := range r.ByMethod {
		byMethod[i] = servers.PaymentsByMethod{Method: b.Key, PaymentCount: b.PaymentCount, TotalAmount: b.Amount.Int64()}
	}
	byStatus := make([]servers.PaymentsByStatus, len(r.ByStatus))
	for i, b := range r.ByStatus {
		byStatus[i] = servers.PaymentsByStatus{Status: b.Key, PaymentCount: b.PaymentCount, TotalAmount: b.Amount.Int64()}
	}

	return servers.PaymentReport{
		Period:         toReportPeriod(r.Period),
		TotalPayments:  r.TotalPayments.Int64(),
		PaymentMethods: byMethod,
		PaymentStatus:  byStatus,
	}
}

func toStaffSalesReport(r queries.StaffSalesReport) servers.StaffSalesReport {
	rows := make([]servers.StaffSales, len(r.Staff))
	for i, s := range r.Staff {
		rows[i] = servers.StaffSales{
			AdminId:      s.AdminID.Bytes(),
			Name:         s.Name,
			Email:        s.Email,
			Role:         servers.AdminRole(s.Role.String()),
			TotalOrders:  s.TotalOrders,
			TotalRevenue: s.TotalRevenue.Int64(),
			TodayRevenue: s.TodayRevenue.Int64(),
		}
	}
	return servers.StaffSalesReport{Date: toDate(r.Day), Staff: rows}
}
