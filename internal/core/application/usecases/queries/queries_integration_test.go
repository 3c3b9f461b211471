package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hotelpos/internal/adapters/out/postgres/adminrepo"
	"hotelpos/internal/adapters/out/postgres/guestrepo"
	"hotelpos/internal/adapters/out/postgres/menurepo"
	"hotelpos/internal/adapters/out/postgres/orderrepo"
	"hotelpos/internal/adapters/out/postgres/paymentrepo"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/guest"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type line struct {
	item     *menu.MenuItem
	quantity int
}

// QueriesIntegrationTestSuite runs the read side against a PostgreSQL
// container seeded through the repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	sqlDB     *sql.DB

	orders   *orderrepo.GormOrderRepository
	payments *paymentrepo.GormPaymentRepository

	waiter      *staff.AdminUser
	otherWaiter *staff.AdminUser
	manager     *staff.AdminUser
	admin       *staff.AdminUser

	breakfast *menu.MenuItem
	coffee    *menu.MenuItem
	beer      *menu.MenuItem
	lobster   *menu.MenuItem
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&menurepo.MenuItemDTO{},
		&paymentrepo.PaymentDTO{},
		&guestrepo.GuestDTO{},
		&adminrepo.AdminUserDTO{},
	))

	suite.sqlDB, err = sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.payments = paymentrepo.NewGormPaymentRepository(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.sqlDB != nil {
		_ = suite.sqlDB.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, menu_items, payments, guests, admin_users",
	).Error)

	suite.waiter = suite.addUser("Wanjiru", "wanjiru@hotel.example", staff.Staff, true)
	suite.otherWaiter = suite.addUser("Otieno", "otieno@hotel.example", staff.Staff, true)
	suite.manager = suite.addUser("Kamau", "kamau@hotel.example", staff.Manager, true)
	suite.admin = suite.addUser("Achieng", "achieng@hotel.example", staff.Admin, true)

	suite.breakfast = suite.addItem("Continental Breakfast", "Mains", 1600, true)
	suite.coffee = suite.addItem("Freshly Brewed Coffee", "Beverages", 350, true)
	suite.beer = suite.addItem("Tusker Lager", "Bar", 400, true)
	suite.lobster = suite.addItem("Grilled Lobster", "Mains", 5000, false)
}

func (suite *QueriesIntegrationTestSuite) TestListAvailableMenu_OnlyAvailableItems() {
	handler := queries.NewListAvailableMenuQueryHandler(menurepo.NewGormMenuCatalog(suite.db))

	items, err := handler.Handle(context.Background(), queries.NewListAvailableMenuQuery(""))
	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("Tusker Lager", items[0].Name)
	suite.Equal("Freshly Brewed Coffee", items[1].Name)
	suite.Equal("Continental Breakfast", items[2].Name)

	mains, err := handler.Handle(context.Background(), queries.NewListAvailableMenuQuery(" Mains "))
	suite.Require().NoError(err)
	suite.Require().Len(mains, 1)
	suite.Equal(suite.breakfast.ID(), mains[0].ID)
	suite.Equal(kernel.Money(1600), mains[0].Price)
}

func (suite *QueriesIntegrationTestSuite) TestListAvailableMenu_InvalidQuery_ReturnsError() {
	handler := queries.NewListAvailableMenuQueryHandler(menurepo.NewGormMenuCatalog(suite.db))

	result, err := handler.Handle(context.Background(), queries.ListAvailableMenuQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListAvailableMenuQuery constructor")
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_AdminSeesUnavailableItems() {
	handler := queries.NewListMenuItemsQueryHandler(suite.db)

	query, err := queries.NewListMenuItemsQuery(suite.admin, "Mains", nil)
	suite.Require().NoError(err)
	items, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Continental Breakfast", items[0].Name)
	suite.Equal("Grilled Lobster", items[1].Name)
	suite.False(items[1].Available)

	unavailable := false
	query, err = queries.NewListMenuItemsQuery(suite.admin, "", &unavailable)
	suite.Require().NoError(err)
	items, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(suite.lobster.ID(), items[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_Manager_Unauthorized() {
	query, err := queries.NewListMenuItemsQuery(suite.manager, "", nil)
	suite.Require().NoError(err)

	_, err = queries.NewListMenuItemsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsOrderWithItems() {
	room, err := kernel.NewRoomLocation("101")
	suite.Require().NoError(err)
	o := suite.placeOrder(suite.waiter, order.RoomService, &room, time.Now(),
		line{suite.breakfast, 1}, line{suite.coffee, 2})

	query, err := queries.NewGetOrderQuery(suite.waiter, o.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), result.ID)
	suite.Equal(order.RoomService, result.Type)
	suite.Equal(order.Pending, result.Status)
	suite.Equal("room", result.LocationKind)
	suite.Equal("101", result.LocationNumber)
	suite.Equal("Room 101", result.Location)
	suite.Equal(800, result.TaxRateBP)
	suite.Equal(kernel.Money(2300), result.Subtotal)
	suite.Equal(kernel.Money(184), result.Tax)
	suite.Equal(kernel.Money(2484), result.Total)
	suite.Equal(suite.waiter.ID(), result.CreatedBy)
	suite.Equal("Wanjiru", result.CreatedByName)
	suite.Nil(result.GuestID)

	suite.Require().Len(result.Items, 2)
	suite.Equal("Continental Breakfast", result.Items[0].Name)
	suite.Equal(suite.breakfast.ID(), result.Items[0].MenuItemID)
	suite.Equal(2, result.Items[1].Quantity)
	suite.Equal(kernel.Money(700), result.Items[1].LineTotal)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_OtherStaffOrder_Unauthorized() {
	o := suite.placeOrder(suite.otherWaiter, order.Bar, nil, time.Now(), line{suite.beer, 1})

	query, err := queries.NewGetOrderQuery(suite.waiter, o.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)

	query, err = queries.NewGetOrderQuery(suite.manager, o.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result.Location)
	suite.Equal("Otieno", result.CreatedByName)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(suite.manager, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestNewGetOrderQuery_MissingActor_ReturnsError() {
	_, err := queries.NewGetOrderQuery(nil, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	suite.Contains(err.Error(), "actor")
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_StaffSeeOwnManagersSeeAll() {
	now := time.Now()
	own := suite.placeOrder(suite.waiter, order.Bar, nil, now.Add(-time.Hour), line{suite.beer, 1})
	newer := suite.placeOrder(suite.waiter, order.Restaurant, nil, now, line{suite.coffee, 1})
	suite.placeOrder(suite.otherWaiter, order.Bar, nil, now, line{suite.beer, 2})

	handler := queries.NewListOrdersQueryHandler(suite.orders, suite.db)

	query, err := queries.NewListOrdersQuery(suite.waiter, nil, nil)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(own.ID(), result[1].ID)
	suite.Require().Len(result[1].Items, 1)
	suite.Equal("Tusker Lager", result[1].Items[0].Name)

	query, err = queries.NewListOrdersQuery(suite.manager, nil, nil)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Filters() {
	now := time.Now()
	bar := suite.placeOrder(suite.waiter, order.Bar, nil, now, line{suite.beer, 1})
	restaurant := suite.placeOrder(suite.waiter, order.Restaurant, nil, now, line{suite.coffee, 1})
	suite.Require().NoError(restaurant.Advance(order.Preparing))
	suite.Require().NoError(suite.orders.UpdateStatus(context.Background(), restaurant))

	handler := queries.NewListOrdersQueryHandler(suite.orders, suite.db)

	preparing := order.Preparing
	query, err := queries.NewListOrdersQuery(suite.manager, &preparing, nil)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(restaurant.ID(), result[0].ID)
	suite.Equal(order.Preparing, result[0].Status)

	barType := order.Bar
	query, err = queries.NewListOrdersQuery(suite.manager, nil, &barType)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(bar.ID(), result[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_SearchAndLocation() {
	now := time.Now()
	roomService := suite.placeOrder(suite.waiter, order.RoomService, suite.room("214"), now, line{suite.breakfast, 1})
	table, err := kernel.NewTableLocation("7")
	suite.Require().NoError(err)
	dinner := suite.placeOrder(suite.otherWaiter, order.Restaurant, &table, now, line{suite.coffee, 2})

	handler := queries.NewListOrdersQueryHandler(suite.orders, suite.db)

	query, err := queries.NewListOrdersQuery(suite.manager, nil, nil)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query.WithSearch(" 214 ", "", ""))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(roomService.ID(), result[0].ID)
	suite.Equal("Room 214", result[0].Location)
	suite.Equal("Wanjiru", result[0].CreatedByName)
	suite.Require().Len(result[0].Items, 1)
	suite.Equal(kernel.Money(1600), result[0].Items[0].LineTotal)

	result, err = handler.Handle(context.Background(), query.WithSearch("", "", "7"))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(dinner.ID(), result[0].ID)
	suite.Equal("table", result[0].LocationKind)
	suite.Equal("Otieno", result[0].CreatedByName)

	waiterQuery, err := queries.NewListOrdersQuery(suite.waiter, nil, nil)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), waiterQuery.WithSearch("", "", "7"))
	suite.Require().NoError(err)
	suite.Empty(result, "staff do not find orders they did not take")
}

func (suite *QueriesIntegrationTestSuite) TestNewListOrdersQuery_InvalidStatus_ReturnsError() {
	unknown := order.Unknown

	_, err := queries.NewListOrdersQuery(suite.manager, &unknown, nil)

	suite.Require().Error(err)
}

func (suite *QueriesIntegrationTestSuite) TestListPayments_FiltersByMethod() {
	o := suite.placeOrder(suite.waiter, order.Bar, nil, time.Now(), line{suite.beer, 1})
	suite.pay(o, 432, payment.Cash, payment.Completed, suite.waiter, time.Now())
	suite.pay(o, 432, payment.Credit, payment.Failed, suite.waiter, time.Now().Add(-time.Minute))

	handler := queries.NewListPaymentsQueryHandler(suite.db)

	query, err := queries.NewListPaymentsQuery(suite.manager, nil, nil)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(payment.Cash, result[0].Method)
	suite.Equal(o.ID(), result[0].OrderID)
	suite.Equal("Wanjiru", result[0].ProcessedByName)

	credit := payment.Credit
	query, err = queries.NewListPaymentsQuery(suite.manager, &credit, nil)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(payment.Failed, result[0].Status)
	suite.Equal(kernel.Money(432), result[0].Amount)
}

func (suite *QueriesIntegrationTestSuite) TestListPayments_FiltersByOrder() {
	first := suite.placeOrder(suite.waiter, order.Bar, nil, time.Now(), line{suite.beer, 1})
	second := suite.placeOrder(suite.waiter, order.Bar, nil, time.Now(), line{suite.beer, 2})
	suite.pay(first, 432, payment.Cash, payment.Completed, suite.waiter, time.Now())
	suite.pay(second, 864, payment.Debit, payment.Pending, suite.waiter, time.Now())

	query, err := queries.NewListPaymentsQuery(suite.manager, nil, nil)
	suite.Require().NoError(err)
	query, err = query.ForOrder(second.ID())
	suite.Require().NoError(err)
	result, err := queries.NewListPaymentsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(second.ID(), result[0].OrderID)
	suite.Equal(payment.Pending, result[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestListPayments_Staff_Unauthorized() {
	query, err := queries.NewListPaymentsQuery(suite.waiter, nil, nil)
	suite.Require().NoError(err)

	_, err = queries.NewListPaymentsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueriesIntegrationTestSuite) TestGetPayment_ReturnsPaymentWithProcessor() {
	o := suite.placeOrder(suite.waiter, order.RoomService, suite.room("204"), time.Now(), line{suite.beer, 2})
	p := suite.pay(o, 864, payment.RoomCharge, payment.Pending, suite.waiter, time.Now())

	query, err := queries.NewGetPaymentQuery(suite.waiter, p.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetPaymentQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(p.ID(), result.ID)
	suite.Equal(o.ID(), result.OrderID)
	suite.Equal(payment.RoomCharge, result.Method)
	suite.Equal(payment.Pending, result.Status)
	suite.Equal("Wanjiru", result.ProcessedByName)
}

func (suite *QueriesIntegrationTestSuite) TestGetPayment_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetPaymentQuery(suite.manager, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetPaymentQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListGuests_SearchByNameOrRoom() {
	repo := guestrepo.NewGormGuestRepository(suite.db)
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	for _, g := range []struct{ name, room string }{
		{"Amina Hassan", "101"},
		{"Brian Mwangi", "205"},
		{"Carol 100%", "310"},
	} {
		registered, err := guest.NewGuest(kernel.NewUUID(), g.name, g.room, checkIn, checkIn.AddDate(0, 0, 3))
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), registered))
	}

	handler := queries.NewListGuestsQueryHandler(suite.db)

	query, err := queries.NewListGuestsQuery(suite.waiter, "")
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 3)

	query, err = queries.NewListGuestsQuery(suite.waiter, "amina")
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("101", result[0].RoomNumber)

	query, err = queries.NewListGuestsQuery(suite.waiter, "205")
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Brian Mwangi", result[0].Name)

	query, err = queries.NewListGuestsQuery(suite.waiter, "0%")
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Carol 100%", result[0].Name)
}

func (suite *QueriesIntegrationTestSuite) TestListAdminUsers_OrderedByName() {
	inactive := suite.addUser("Zawadi", "zawadi@hotel.example", staff.Staff, false)

	query, err := queries.NewListAdminUsersQuery(suite.admin)
	suite.Require().NoError(err)
	result, err := queries.NewListAdminUsersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 5)
	suite.Equal("Achieng", result[0].Name)
	suite.Equal(staff.Admin, result[0].Role)
	suite.Equal("Kamau", result[1].Name)
	suite.Equal(inactive.ID(), result[4].ID)
	suite.False(result[4].IsActive)
	suite.Nil(result[4].LastLogin)
}

func (suite *QueriesIntegrationTestSuite) TestListAdminUsers_Manager_Unauthorized() {
	query, err := queries.NewListAdminUsersQuery(suite.manager)
	suite.Require().NoError(err)

	_, err = queries.NewListAdminUsersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueriesIntegrationTestSuite) seedMarch() {
	room, err := kernel.NewRoomLocation("101")
	suite.Require().NoError(err)
	table, err := kernel.NewTableLocation("4")
	suite.Require().NoError(err)

	breakfast := suite.placeOrder(suite.waiter, order.RoomService, &room,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		line{suite.breakfast, 1}, line{suite.coffee, 2})
	suite.pay(breakfast, 2484, payment.Credit, payment.Completed, suite.waiter,
		time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC))

	lateDinner := suite.placeOrder(suite.manager, order.Restaurant, &table,
		time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC),
		line{suite.coffee, 3})
	suite.pay(lateDinner, 1134, payment.Cash, payment.Failed, suite.manager,
		time.Date(2024, 3, 31, 23, 45, 0, 0, time.UTC))

	suite.placeOrder(suite.waiter, order.Bar, nil,
		time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC),
		line{suite.beer, 2})

	april := suite.placeOrder(suite.waiter, order.Bar, nil,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		line{suite.beer, 5})
	suite.pay(april, 2160, payment.Cash, payment.Completed, suite.waiter,
		time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_Period() {
	suite.seedMarch()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewSalesReportQuery(suite.manager, &start, &end, nil)
	suite.Require().NoError(err)
	report, err := queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(start, report.Period.StartDate)
	suite.Equal(end, report.Period.EndDate)
	suite.Equal(3, report.TotalOrders)
	suite.Equal(kernel.Money(4482), report.TotalRevenue)
	suite.Equal(kernel.Money(1494), report.AverageOrderValue)

	suite.Equal([]queries.SalesBreakdown{
		{Key: "bar", OrderCount: 1, Revenue: 864},
		{Key: "restaurant", OrderCount: 1, Revenue: 1134},
		{Key: "room-service", OrderCount: 1, Revenue: 2484},
	}, report.ByType)
	suite.Equal([]queries.SalesBreakdown{
		{Key: "paid", OrderCount: 1, Revenue: 2484},
		{Key: "pending", OrderCount: 2, Revenue: 1998},
	}, report.ByStatus)
	suite.Equal([]queries.TopSellingItem{
		{Name: "Freshly Brewed Coffee", Quantity: 5, Revenue: 1750},
		{Name: "Tusker Lager", Quantity: 2, Revenue: 800},
		{Name: "Continental Breakfast", Quantity: 1, Revenue: 1600},
	}, report.TopItems)
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_TypeFilter() {
	suite.seedMarch()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewSalesReportQuery(suite.manager, &start, &end, []order.Type{order.Bar, order.RoomService})
	suite.Require().NoError(err)
	report, err := queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, report.TotalOrders)
	suite.Equal(kernel.Money(3348), report.TotalRevenue)
	suite.Equal(kernel.Money(1674), report.AverageOrderValue)
	suite.Len(report.ByType, 2)
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_DefaultsToLastThirtyDays() {
	suite.placeOrder(suite.waiter, order.Bar, nil, time.Now(), line{suite.beer, 1})
	suite.placeOrder(suite.waiter, order.Bar, nil, time.Now().AddDate(0, 0, -40), line{suite.beer, 3})

	query, err := queries.NewSalesReportQuery(suite.manager, nil, nil, nil)
	suite.Require().NoError(err)
	report, err := queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(1, report.TotalOrders)
	suite.Equal(kernel.Money(432), report.TotalRevenue)
	suite.Equal(queries.DefaultReportDays*24*time.Hour, report.Period.EndDate.Sub(report.Period.StartDate))
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_EmptyPeriod() {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start

	query, err := queries.NewSalesReportQuery(suite.manager, &start, &end, nil)
	suite.Require().NoError(err)
	report, err := queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Zero(report.TotalOrders)
	suite.True(report.AverageOrderValue.IsZero())
	suite.NotNil(report.ByType)
	suite.Empty(report.TopItems)
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_InvertedPeriod_ReturnsError() {
	start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewSalesReportQuery(suite.manager, &start, &end, nil)
	suite.Require().NoError(err)
	_, err = queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Require().ErrorIs(err, queries.ErrReportPeriodIsInverted)
}

func (suite *QueriesIntegrationTestSuite) TestSalesReport_Staff_Unauthorized() {
	query, err := queries.NewSalesReportQuery(suite.waiter, nil, nil, nil)
	suite.Require().NoError(err)

	_, err = queries.NewSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueriesIntegrationTestSuite) TestPaymentReport_Period() {
	suite.seedMarch()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewPaymentReportQuery(suite.manager, &start, &end)
	suite.Require().NoError(err)
	report, err := queries.NewPaymentReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(kernel.Money(3618), report.TotalPayments)
	suite.Equal([]queries.PaymentBreakdown{
		{Key: "cash", PaymentCount: 1, Amount: 1134},
		{Key: "credit", PaymentCount: 1, Amount: 2484},
	}, report.ByMethod)
	suite.Equal([]queries.PaymentBreakdown{
		{Key: "completed", PaymentCount: 1, Amount: 2484},
		{Key: "failed", PaymentCount: 1, Amount: 1134},
	}, report.ByStatus)
}

func (suite *QueriesIntegrationTestSuite) TestStaffSalesReport_RanksActiveStaffByPaidRevenue() {
	now := time.Now()
	inactive := suite.addUser("Zawadi", "zawadi@hotel.example", staff.Staff, false)

	today := suite.placeOrder(suite.waiter, order.RoomService, suite.room("101"), now,
		line{suite.breakfast, 1}, line{suite.coffee, 2})
	suite.pay(today, 2484, payment.Cash, payment.Completed, suite.waiter, now)
	earlier := suite.placeOrder(suite.waiter, order.Bar, nil, now.AddDate(0, 0, -3), line{suite.beer, 2})
	suite.pay(earlier, 864, payment.Cash, payment.Completed, suite.waiter, now.AddDate(0, 0, -3))
	suite.placeOrder(suite.waiter, order.Bar, nil, now, line{suite.coffee, 1})

	managers := suite.placeOrder(suite.manager, order.Restaurant, nil, now, line{suite.coffee, 3})
	suite.pay(managers, 1134, payment.Debit, payment.Completed, suite.manager, now)

	ghost := suite.placeOrder(inactive, order.Bar, nil, now, line{suite.beer, 10})
	suite.pay(ghost, 4320, payment.Cash, payment.Completed, suite.manager, now)

	query, err := queries.NewStaffSalesReportQuery(suite.manager)
	suite.Require().NoError(err)
	report, err := queries.NewStaffSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(report.Staff, 4)

	suite.Equal(suite.waiter.ID(), report.Staff[0].AdminID)
	suite.Equal(3, report.Staff[0].TotalOrders)
	suite.Equal(kernel.Money(3348), report.Staff[0].TotalRevenue)
	suite.Equal(kernel.Money(2484), report.Staff[0].TodayRevenue)

	suite.Equal(suite.manager.ID(), report.Staff[1].AdminID)
	suite.Equal(staff.Manager, report.Staff[1].Role)
	suite.Equal(kernel.Money(1134), report.Staff[1].TotalRevenue)

	suite.Equal("Achieng", report.Staff[2].Name)
	suite.Zero(report.Staff[2].TotalOrders)
	suite.True(report.Staff[2].TotalRevenue.IsZero())
	suite.Equal("Otieno", report.Staff[3].Name)
}

func (suite *QueriesIntegrationTestSuite) TestStaffSalesReport_Staff_Unauthorized() {
	query, err := queries.NewStaffSalesReportQuery(suite.waiter)
	suite.Require().NoError(err)

	_, err = queries.NewStaffSalesReportQueryHandler(suite.sqlDB, time.UTC).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueriesIntegrationTestSuite) addUser(name, email string, role staff.Role, active bool) *staff.AdminUser {
	user, err := staff.NewAdminUser(kernel.NewUUID(), name, email, role, time.Now())
	suite.Require().NoError(err)
	if !active {
		user.Deactivate()
	}
	suite.Require().NoError(adminrepo.NewGormAdminUserRepository(suite.db).Add(context.Background(), user))
	return user
}

func (suite *QueriesIntegrationTestSuite) addItem(name, category string, price kernel.Money, available bool) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, category, price)
	suite.Require().NoError(err)
	if !available {
		item.MarkUnavailable()
	}
	suite.Require().NoError(menurepo.NewGormMenuRepository(suite.db).Add(context.Background(), item))
	return item
}

func (suite *QueriesIntegrationTestSuite) room(number string) *kernel.Location {
	loc, err := kernel.NewRoomLocation(number)
	suite.Require().NoError(err)
	return &loc
}

func (suite *QueriesIntegrationTestSuite) placeOrder(
	creator *staff.AdminUser,
	orderType order.Type,
	location *kernel.Location,
	createdAt time.Time,
	lines ...line,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), orderType, location, creator.ID(), createdAt, kernel.DefaultTaxRate)
	suite.Require().NoError(err)
	for _, l := range lines {
		_, ok := o.AddLine(l.item, l.quantity, "")
		suite.Require().True(ok)
	}
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

// pay records a payment and, when it completed, marks the order paid the way
// the payment command does.
func (suite *QueriesIntegrationTestSuite) pay(
	o *order.Order,
	amount kernel.Money,
	method payment.Method,
	status payment.Status,
	by *staff.AdminUser,
	at time.Time,
) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), amount, method, status, by.ID(), at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payments.Add(context.Background(), p))

	if status == payment.Completed {
		suite.Require().NoError(o.MarkPaid())
		suite.Require().NoError(suite.orders.UpdateStatus(context.Background(), o))
	}
	return p
}
