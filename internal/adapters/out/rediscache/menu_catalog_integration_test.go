package rediscache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotelpos/internal/adapters/out/rediscache"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type MockMenuCatalog struct {
	mock.Mock
}

func (m *MockMenuCatalog) ListAvailable(ctx context.Context, category string) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuCatalog) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MenuCatalogIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
	client    *redis.Client

	source  *MockMenuCatalog
	catalog *rediscache.MenuCatalog
	coffee  *menu.MenuItem
	tea     *menu.MenuItem
}

func TestMenuCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuCatalogIntegrationTestSuite))
}

func (suite *MenuCatalogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.url = "redis://" + endpoint + "/0"

	suite.client, err = rediscache.NewClient(ctx, suite.url)
	suite.Require().NoError(err)
}

func (suite *MenuCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())

	var err error
	suite.coffee, err = menu.NewMenuItem(kernel.NewUUID(), "Freshly Brewed Coffee", "Beverages", 350)
	suite.Require().NoError(err)
	suite.coffee.SetDescription("Kenyan AA")
	suite.tea, err = menu.NewMenuItem(kernel.NewUUID(), "Masala Chai", "Beverages", 300)
	suite.Require().NoError(err)
	suite.tea.SetImageURL("https://cdn.hotel.example/chai.jpg")

	suite.source = new(MockMenuCatalog)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.catalog = rediscache.NewMenuCatalog(suite.client, suite.source, time.Minute, logger)
}

func (suite *MenuCatalogIntegrationTestSuite) TestListAvailable_SecondReadServedFromCache() {
	ctx := context.Background()
	suite.source.On("ListAvailable", mock.Anything, "").
		Return([]*menu.MenuItem{suite.coffee, suite.tea}, nil).Once()

	first, err := suite.catalog.ListAvailable(ctx, "")
	suite.Require().NoError(err)
	second, err := suite.catalog.ListAvailable(ctx, "")
	suite.Require().NoError(err)

	suite.source.AssertNumberOfCalls(suite.T(), "ListAvailable", 1)
	suite.Require().Len(second, 2)
	suite.Equal(first[0].ID(), second[0].ID())
	suite.Equal("Kenyan AA", second[0].Description())
	suite.Equal(kernel.Money(350), second[0].Price())
	suite.True(second[0].IsAvailable())
	suite.Equal("https://cdn.hotel.example/chai.jpg", second[1].ImageURL())

	ttl, err := suite.client.TTL(ctx, "hotelpos:menu:available:*").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *MenuCatalogIntegrationTestSuite) TestListAvailable_CategoriesCachedSeparately() {
	ctx := context.Background()
	suite.source.On("ListAvailable", mock.Anything, "Beverages").
		Return([]*menu.MenuItem{suite.coffee}, nil).Once()
	suite.source.On("ListAvailable", mock.Anything, "Mains").
		Return([]*menu.MenuItem{}, nil).Once()

	beverages, err := suite.catalog.ListAvailable(ctx, "Beverages")
	suite.Require().NoError(err)
	mains, err := suite.catalog.ListAvailable(ctx, "Mains")
	suite.Require().NoError(err)
	mains, err = suite.catalog.ListAvailable(ctx, "Mains")
	suite.Require().NoError(err)

	suite.Len(beverages, 1)
	suite.Empty(mains)
	suite.source.AssertExpectations(suite.T())
}

func (suite *MenuCatalogIntegrationTestSuite) TestInvalidate_ForcesReload() {
	ctx := context.Background()
	suite.source.On("ListAvailable", mock.Anything, "").
		Return([]*menu.MenuItem{suite.coffee}, nil).Twice()
	suite.source.On("ListAvailable", mock.Anything, "Beverages").
		Return([]*menu.MenuItem{suite.coffee}, nil).Once()

	_, err := suite.catalog.ListAvailable(ctx, "")
	suite.Require().NoError(err)
	_, err = suite.catalog.ListAvailable(ctx, "Beverages")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.catalog.Invalidate(ctx))

	exists, err := suite.client.Exists(ctx,
		"hotelpos:menu:available:*", "hotelpos:menu:available:Beverages", "hotelpos:menu:keys").Result()
	suite.Require().NoError(err)
	suite.Zero(exists)

	_, err = suite.catalog.ListAvailable(ctx, "")
	suite.Require().NoError(err)
	suite.source.AssertExpectations(suite.T())
}

func (suite *MenuCatalogIntegrationTestSuite) TestInvalidate_EmptyCache() {
	suite.NoError(suite.catalog.Invalidate(context.Background()))
}

func (suite *MenuCatalogIntegrationTestSuite) TestListAvailable_CorruptEntry_FallsBackToSource() {
	ctx := context.Background()
	suite.Require().NoError(suite.client.Set(ctx, "hotelpos:menu:available:*", "not json", time.Minute).Err())
	suite.source.On("ListAvailable", mock.Anything, "").
		Return([]*menu.MenuItem{suite.tea}, nil).Once()

	items, err := suite.catalog.ListAvailable(ctx, "")

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(suite.tea.ID(), items[0].ID())
}

func (suite *MenuCatalogIntegrationTestSuite) TestListAvailable_RedisDown_FallsBackToSource() {
	ctx := context.Background()
	client, err := rediscache.NewClient(ctx, suite.url)
	suite.Require().NoError(err)
	suite.Require().NoError(client.Close())

	suite.source.On("ListAvailable", mock.Anything, "").
		Return([]*menu.MenuItem{suite.coffee}, nil).Once()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := rediscache.NewMenuCatalog(client, suite.source, time.Minute, logger)

	items, err := catalog.ListAvailable(ctx, "")

	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.Error(catalog.Invalidate(ctx))
}

func (suite *MenuCatalogIntegrationTestSuite) TestNewClient_InvalidURL() {
	_, err := rediscache.NewClient(context.Background(), "http://not-redis")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "invalid redis URL")
}
