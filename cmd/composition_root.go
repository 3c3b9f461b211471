package cmd

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	httpadapter "hotelpos/internal/adapters/in/http"
	"hotelpos/internal/adapters/out/messaging"
	"hotelpos/internal/adapters/out/postgres"
	"hotelpos/internal/adapters/out/postgres/adminrepo"
	"hotelpos/internal/adapters/out/postgres/menurepo"
	"hotelpos/internal/adapters/out/rediscache"
	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/ports"
	"hotelpos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	settings   Settings
	gormDB     *gorm.DB
	sqlDB      *sql.DB
	logger     *slog.Logger
	taxRate    kernel.TaxRate
	location   *time.Location
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    ports.MenuCatalog
	closers    []func() error
}

// NewCompositionRoot wires the adapters. Without REDIS_URL the menu is read
// straight from PostgreSQL; without AMQP_URL order events are only logged.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	settings Settings,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	taxRate, err := settings.TaxRate()
	if err != nil {
		return nil, err
	}
	location, err := settings.Location()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		settings: settings,
		gormDB:   gormDB,
		sqlDB:    sqlDB,
		logger:   logger,
		taxRate:  taxRate,
		location: location,
	}

	var publisher ports.EventPublisher = messaging.NewLogPublisher(logger)
	if config.AMQPURL != "" {
		amqpPublisher, err := messaging.NewRabbitMQPublisher(config.AMQPURL, config.AMQPExchange, logger)
		if err != nil {
			return nil, err
		}
		publisher = amqpPublisher
		c.closers = append(c.closers, amqpPublisher.Close)
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	c.catalog = menurepo.NewGormMenuCatalog(gormDB)
	if config.RedisURL != "" {
		client, err := rediscache.NewClient(ctx, config.RedisURL)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.catalog = rediscache.NewMenuCatalog(client, c.catalog, config.MenuCacheTTL, logger)
		c.closers = append(c.closers, client.Close)
	}

	return c, nil
}

// Close releases the broker connection and the cache client.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.taxRate)
}

func (c *CompositionRoot) CreateAddOrderItemsCommandHandler() commands.AddOrderItemsCommandHandler {
	return commands.NewAddOrderItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateSettlePaymentCommandHandler() commands.SettlePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettlePaymentCommandHandler(f)
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory(), c.catalog, c.logger)
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() commands.SetMenuItemAvailabilityCommandHandler {
	return commands.NewSetMenuItemAvailabilityCommandHandler(c.menuUoWFactory(), c.catalog, c.logger)
}

func (c *CompositionRoot) guestUoWFactory() commands.GuestUoWFactory {
	return FuncGuestUoWFactory(func() commands.GuestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveGuestCommandHandler() commands.SaveGuestCommandHandler {
	return commands.NewSaveGuestCommandHandler(c.guestUoWFactory())
}

func (c *CompositionRoot) CreateRemoveGuestCommandHandler() commands.RemoveGuestCommandHandler {
	return commands.NewRemoveGuestCommandHandler(c.guestUoWFactory())
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAdminUserCommandHandler() commands.CreateAdminUserCommandHandler {
	return commands.NewCreateAdminUserCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateAdminUserCommandHandler() commands.DeactivateAdminUserCommandHandler {
	return commands.NewDeactivateAdminUserCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateStaffSalesReportQueryHandler() queries.StaffSalesReportQueryHandler {
	return queries.NewStaffSalesReportQueryHandler(c.sqlDB, c.location)
}

func (c *CompositionRoot) CreateIdentityProvider() ports.IdentityProvider {
	return adminrepo.NewGormIdentityProvider(c.gormDB)
}

// CreateHTTPServer binds every use case to its route.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		AddOrderItems:           c.CreateAddOrderItemsCommandHandler(),
		UpdateOrderStatus:       c.CreateUpdateOrderStatusCommandHandler(),
		ProcessPayment:          c.CreateProcessPaymentCommandHandler(),
		SettlePayment:           c.CreateSettlePaymentCommandHandler(),
		CreateMenuItem:          c.CreateCreateMenuItemCommandHandler(),
		SetMenuItemAvailability: c.CreateSetMenuItemAvailabilityCommandHandler(),
		SaveGuest:               c.CreateSaveGuestCommandHandler(),
		RemoveGuest:             c.CreateRemoveGuestCommandHandler(),
		CreateAdminUser:         c.CreateCreateAdminUserCommandHandler(),
		DeactivateAdminUser:     c.CreateDeactivateAdminUserCommandHandler(),

		ListAvailableMenu: queries.NewListAvailableMenuQueryHandler(c.catalog),
		ListMenuItems:     queries.NewListMenuItemsQueryHandler(c.gormDB),
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository(), c.gormDB),
		ListPayments:      queries.NewListPaymentsQueryHandler(c.gormDB),
		GetPayment:        queries.NewGetPaymentQueryHandler(c.gormDB),
		ListGuests:        queries.NewListGuestsQueryHandler(c.gormDB),
		ListAdminUsers:    queries.NewListAdminUsersQueryHandler(c.gormDB),
		SalesReport:       queries.NewSalesReportQueryHandler(c.sqlDB, c.location),
		PaymentReport:     queries.NewPaymentReportQueryHandler(c.sqlDB, c.location),
		StaffSalesReport:  c.CreateStaffSalesReportQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	// Reads outside a transaction run on the pool.
	orders := c.uowFactory.Create().OrderRepository()

	return jobs.NewJobManager(c.CreateStaffSalesReportQueryHandler(), orders, jobs.Schedules{
		StaffSalesSummary: c.settings.Jobs.StaffSalesSummary,
		StaleOrders:       c.settings.Jobs.StaleOrders,
		StaleOrderAfter:   c.settings.Jobs.StaleOrderAfter,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncGuestUoWFactory func() commands.GuestUoW

func (f FuncGuestUoWFactory) Create() commands.GuestUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
