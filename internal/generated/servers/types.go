// Package servers holds the HTTP contract of the POS API: the OpenAPI
// document, its request and response types, and the echo route wrapper that
// binds parameters before calling a ServerInterface.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const AdminUserScopes = "adminUser.Scopes"

type OrderType string

const (
	OrderTypeRoomService OrderType = "room-service"
	OrderTypeRestaurant  OrderType = "restaurant"
	OrderTypeBar         OrderType = "bar"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusPaid      OrderStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCredit     PaymentMethod = "credit"
	PaymentMethodDebit      PaymentMethod = "debit"
	PaymentMethodRoomCharge PaymentMethod = "room-charge"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type AdminRole string

const (
	AdminRoleStaff      AdminRole = "staff"
	AdminRoleManager    AdminRole = "manager"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super-admin"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItem defines model for MenuItem.
type MenuItem struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Category    string             `json:"category"`
	Price       int64              `json:"price"`
	Available   bool               `json:"available"`
	ImageUrl    *string            `json:"image_url,omitempty"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       int64   `json:"price"`
	Available   *bool   `json:"available,omitempty"`
	ImageUrl    *string `json:"image_url,omitempty"`
}

// MenuItemAvailability defines model for MenuItemAvailability.
type MenuItemAvailability struct {
	Available bool `json:"available"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id         openapi_types.UUID `json:"id"`
	MenuItemId openapi_types.UUID `json:"menu_item_id"`
	Name       string             `json:"name"`
	UnitPrice  int64              `json:"unit_price"`
	Quantity   int                `json:"quantity"`
	Notes      *string            `json:"notes,omitempty"`
	LineTotal  int64              `json:"line_total"`
}

// Order defines model for Order.
type Order struct {
	Id             openapi_types.UUID  `json:"id"`
	Type           OrderType           `json:"type"`
	Status         OrderStatus         `json:"status"`
	LocationNumber *string             `json:"location_number,omitempty"`
	Location       *string             `json:"location,omitempty"`
	CustomerName   *string             `json:"customer_name,omitempty"`
	GuestId        *openapi_types.UUID `json:"guest_id,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	TaxRateBp      int                 `json:"tax_rate_bp"`
	Subtotal       int64               `json:"subtotal"`
	Tax            int64               `json:"tax"`
	Total          int64               `json:"total"`
	CreatedAt      time.Time           `json:"created_at"`
	CreatedBy      openapi_types.UUID  `json:"created_by"`
	CreatedByName  *string             `json:"created_by_name,omitempty"`
	Items          []OrderItem         `json:"items"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	MenuItemId openapi_types.UUID `json:"menu_item_id"`
	Quantity   int                `json:"quantity"`
	Notes      *string            `json:"notes,omitempty"`
}

// NewOrderItems defines model for NewOrderItems.
type NewOrderItems struct {
	Items []NewOrderItem `json:"items"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Type           OrderType           `json:"type"`
	LocationNumber *string             `json:"location_number,omitempty"`
	CustomerName   *string             `json:"customer_name,omitempty"`
	GuestId        *openapi_types.UUID `json:"guest_id,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	Items          []NewOrderItem      `json:"items"`
}

// OrderStatusUpdate defines model for OrderStatusUpdate.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// NewPayment defines model for NewPayment.
type NewPayment struct {
	Amount               int64          `json:"amount"`
	Method               PaymentMethod  `json:"method"`
	Status               *PaymentStatus `json:"status,omitempty"`
	TransactionReference *string        `json:"transaction_reference,omitempty"`
	Notes                *string        `json:"notes,omitempty"`
}

// PaymentSettlementStatus defines model for PaymentSettlement.Status.
type PaymentSettlementStatus string

const (
	PaymentSettlementStatusCompleted PaymentSettlementStatus = "completed"
	PaymentSettlementStatusFailed    PaymentSettlementStatus = "failed"
)

// PaymentSettlement defines model for PaymentSettlement.
type PaymentSettlement struct {
	Status               *PaymentSettlementStatus `json:"status,omitempty"`
	TransactionReference *string                  `json:"transaction_reference,omitempty"`
}

// PaymentReceipt defines model for PaymentReceipt.
type PaymentReceipt struct {
	Id      openapi_types.UUID `json:"id"`
	OrderId openapi_types.UUID `json:"order_id"`
	Amount  int64              `json:"amount"`
	Method  PaymentMethod      `json:"method"`
	Status  PaymentStatus      `json:"status"`
}

// Payment defines model for Payment.
type Payment struct {
	Id                   openapi_types.UUID `json:"id"`
	OrderId              openapi_types.UUID `json:"order_id"`
	Amount               int64              `json:"amount"`
	Method               PaymentMethod      `json:"method"`
	Status               PaymentStatus      `json:"status"`
	TransactionReference *string            `json:"transaction_reference,omitempty"`
	Notes                *string            `json:"notes,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	ProcessedBy          openapi_types.UUID `json:"processed_by"`
	ProcessedByName      *string            `json:"processed_by_name,omitempty"`
}

// Guest defines model for Guest.
type Guest struct {
	Id         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	RoomNumber string             `json:"room_number"`
	CheckIn    time.Time          `json:"check_in"`
	CheckOut   time.Time          `json:"check_out"`
	Email      *string            `json:"email,omitempty"`
	Phone      *string            `json:"phone,omitempty"`
}

// NewGuest defines model for NewGuest.
type NewGuest struct {
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
}

// AdminUser defines model for AdminUser.
type AdminUser struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     *string            `json:"phone,omitempty"`
	Role      AdminRole          `json:"role"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
	LastLogin *time.Time         `json:"last_login,omitempty"`
}

// AdminUserRef defines model for AdminUserRef.
type AdminUserRef struct {
	Id openapi_types.UUID `json:"id"`
}

// NewAdminUser defines model for NewAdminUser.
type NewAdminUser struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone,omitempty"`
	Role  AdminRole `json:"role"`
}

// ReportPeriod defines model for ReportPeriod.
type ReportPeriod struct {
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
}

// SalesSummary defines model for SalesSummary.
type SalesSummary struct {
	TotalRevenue      int64 `json:"total_revenue"`
	TotalOrders       int   `json:"total_orders"`
	AverageOrderValue int64 `json:"average_order_value"`
}

// SalesByType defines model for SalesByType.
type SalesByType struct {
	Type         string `json:"type"`
	OrderCount   int    `json:"order_count"`
	TotalRevenue int64  `json:"total_revenue"`
}

// SalesByStatus defines model for SalesByStatus.
type SalesByStatus struct {
	Status       string `json:"status"`
	OrderCount   int    `json:"order_count"`
	TotalRevenue int64  `json:"total_revenue"`
}

// TopSellingItem defines model for TopSellingItem.
type TopSellingItem struct {
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  int64  `json:"total_revenue"`
}

// SalesReport defines model for SalesReport.
type SalesReport struct {
	Period          ReportPeriod     `json:"period"`
	Summary         SalesSummary     `json:"summary"`
	SalesByType     []SalesByType    `json:"sales_by_type"`
	SalesByStatus   []SalesByStatus  `json:"sales_by_status"`
	TopSellingItems []TopSellingItem `json:"top_selling_items"`
}

// PaymentsByMethod defines model for PaymentsByMethod.
type PaymentsByMethod struct {
	Method       string `json:"method"`
	PaymentCount int    `json:"payment_count"`
	TotalAmount  int64  `json:"total_amount"`
}

// PaymentsByStatus defines model for PaymentsByStatus.
type PaymentsByStatus struct {
	Status       string `json:"status"`
	PaymentCount int    `json:"payment_count"`
	TotalAmount  int64  `json:"total_amount"`
}

// PaymentReport defines model for PaymentReport.
type PaymentReport struct {
	Period         ReportPeriod       `json:"period"`
	TotalPayments  int64              `json:"total_payments"`
	PaymentMethods []PaymentsByMethod `json:"payment_methods"`
	PaymentStatus  []PaymentsByStatus `json:"payment_status"`
}

// StaffSales defines model for StaffSales.
type StaffSales struct {
	AdminId      openapi_types.UUID `json:"admin_id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Role         AdminRole          `json:"role"`
	TotalOrders  int                `json:"total_orders"`
	TotalRevenue int64              `json:"total_revenue"`
	TodayRevenue int64              `json:"today_revenue"`
}

// StaffSalesReport defines model for StaffSalesReport.
type StaffSalesReport struct {
	Date  openapi_types.Date `json:"date"`
	Staff []StaffSales       `json:"staff"`
}

// GetMenuParams defines parameters for GetMenu.
type GetMenuParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// ListMenuItemsParams defines parameters for ListMenuItems.
type ListMenuItemsParams struct {
	Category  *string `form:"category,omitempty" json:"category,omitempty"`
	Available *bool   `form:"available,omitempty" json:"available,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Type   *OrderType   `form:"type,omitempty" json:"type,omitempty"`

	// Search Matches customer name, room or table number and notes.
	Search      *string `form:"search,omitempty" json:"search,omitempty"`
	RoomNumber  *string `form:"room_number,omitempty" json:"room_number,omitempty"`
	TableNumber *string `form:"table_number,omitempty" json:"table_number,omitempty"`
}

// ListPaymentsParams defines parameters for ListPayments.
type ListPaymentsParams struct {
	Method  *PaymentMethod      `form:"method,omitempty" json:"method,omitempty"`
	Status  *PaymentStatus      `form:"status,omitempty" json:"status,omitempty"`
	OrderId *openapi_types.UUID `form:"order_id,omitempty" json:"order_id,omitempty"`
}

// ListGuestsParams defines parameters for ListGuests.
type ListGuestsParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// GetSalesReportParams defines parameters for GetSalesReport.
type GetSalesReportParams struct {
	StartDate *openapi_types.Date `form:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `form:"end_date,omitempty" json:"end_date,omitempty"`
	Type      *[]OrderType        `form:"type,omitempty" json:"type,omitempty"`
}

// GetPaymentReportParams defines parameters for GetPaymentReport.
type GetPaymentReportParams struct {
	StartDate *openapi_types.Date `form:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `form:"end_date,omitempty" json:"end_date,omitempty"`
}

type CreateMenuItemJSONRequestBody = NewMenuItem
type SetMenuItemAvailabilityJSONRequestBody = MenuItemAvailability
type CreateOrderJSONRequestBody = NewOrder
type AddOrderItemsJSONRequestBody = NewOrderItems
type UpdateOrderStatusJSONRequestBody = OrderStatusUpdate
type ProcessPaymentJSONRequestBody = NewPayment
type SettlePaymentJSONRequestBody = PaymentSettlement
type RegisterGuestJSONRequestBody = NewGuest
type UpdateGuestJSONRequestBody = NewGuest
type CreateAdminUserJSONRequestBody = NewAdminUser
