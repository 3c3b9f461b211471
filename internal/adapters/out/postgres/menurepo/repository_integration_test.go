package menurepo_test

import (
	"context"
	"testing"
	"time"

	"hotelpos/internal/adapters/out/postgres/menurepo"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MenuRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuRepository
	catalog    *menurepo.GormMenuCatalog
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)

	suite.repository = menurepo.NewGormMenuRepository(suite.db)
	suite.catalog = menurepo.NewGormMenuCatalog(suite.db)
}

func (suite *MenuRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	item := suite.item("Samosa", "Starters", 300)
	item.SetDescription("Beef samosa, two pieces")
	item.SetImageURL("https://img.example/samosa.jpg")

	suite.Require().NoError(suite.repository.Add(ctx, item))

	stored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Samosa", stored.Name())
	suite.Equal("Starters", stored.Category())
	suite.Equal(kernel.Money(300), stored.Price())
	suite.Equal("Beef samosa, two pieces", stored.Description())
	suite.Equal("https://img.example/samosa.jpg", stored.ImageURL())
	suite.True(stored.IsAvailable())
}

func (suite *MenuRepositoryIntegrationTestSuite) TestGet_UnknownItem_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestUpdate_StoresFalseAndEmptyValues() {
	ctx := context.Background()
	item := suite.item("Pilau", "Mains", 900)
	item.SetDescription("Spiced rice")
	suite.Require().NoError(suite.repository.Add(ctx, item))

	item.MarkUnavailable()
	item.SetDescription("")
	suite.Require().NoError(suite.repository.Update(ctx, item))

	stored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.False(stored.IsAvailable())
	suite.Empty(stored.Description())
}

func (suite *MenuRepositoryIntegrationTestSuite) TestUpdate_UnknownItem_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.item("Ghost", "Mains", 100))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestGetMany_SkipsMissingIDs() {
	ctx := context.Background()
	tea := suite.item("Chai", "Beverages", 150)
	juice := suite.item("Passion Juice", "Beverages", 250)
	suite.Require().NoError(suite.repository.Add(ctx, tea))
	suite.Require().NoError(suite.repository.Add(ctx, juice))
	missing := kernel.NewUUID()

	items, err := suite.repository.GetMany(ctx, []kernel.UUID{tea.ID(), missing, juice.ID()})

	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.Contains(items, tea.ID().String())
	suite.Contains(items, juice.ID().String())
	suite.NotContains(items, missing.String())
}

func (suite *MenuRepositoryIntegrationTestSuite) TestGetMany_NoIDs() {
	items, err := suite.repository.GetMany(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestCatalog_ListAvailable() {
	ctx := context.Background()
	beer := suite.item("Tusker", "Beer", 400)
	cider := suite.item("Cider", "Beer", 450)
	stew := suite.item("Beef Stew", "Mains", 1200)
	hidden := suite.item("Lobster", "Mains", 5000)
	hidden.MarkUnavailable()
	for _, item := range []*menu.MenuItem{beer, cider, stew, hidden} {
		suite.Require().NoError(suite.repository.Add(ctx, item))
	}

	all, err := suite.catalog.ListAvailable(ctx, "")
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Cider", all[0].Name())
	suite.Equal("Tusker", all[1].Name())
	suite.Equal("Beef Stew", all[2].Name())

	mains, err := suite.catalog.ListAvailable(ctx, "Mains")
	suite.Require().NoError(err)
	suite.Require().Len(mains, 1)
	suite.Equal("Beef Stew", mains[0].Name())

	suite.NoError(suite.catalog.Invalidate(ctx))
}

func (suite *MenuRepositoryIntegrationTestSuite) item(name string, category string, price kernel.Money) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, category, price)
	suite.Require().NoError(err)
	return item
}

func TestMenuRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuRepositoryIntegrationTestSuite))
}
