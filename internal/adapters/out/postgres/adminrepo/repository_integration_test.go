package adminrepo_test

import (
	"context"
	"testing"
	"time"

	"hotelpos/internal/adapters/out/postgres/adminrepo"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AdminUserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *adminrepo.GormAdminUserRepository
	identity   *adminrepo.GormIdentityProvider
}

func (suite *AdminUserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&adminrepo.AdminUserDTO{}))
}

func (suite *AdminUserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE admin_users").Error)
	suite.repository = adminrepo.NewGormAdminUserRepository(suite.db)
	suite.identity = adminrepo.NewGormIdentityProvider(suite.db)
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := context.Background()
	u := suite.user("Achieng Otieno", "Achieng@Hotel.Example", staff.Manager)
	u.SetPhone("+254700000002")

	suite.Require().NoError(suite.repository.Add(ctx, u))

	stored, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("achieng@hotel.example", stored.Email())
	suite.Equal(staff.Manager, stored.Role())
	suite.Equal("+254700000002", stored.Phone())
	suite.True(stored.IsActive())
	suite.Nil(stored.LastLogin())

	loginAt := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	u.RecordLogin(loginAt)
	u.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, u))

	stored, err = suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.False(stored.IsActive())
	suite.Require().NotNil(stored.LastLogin())
	suite.True(loginAt.Equal(*stored.LastLogin()))
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TestGetByEmail_IgnoresCase() {
	ctx := context.Background()
	u := suite.user("Baraka", "baraka@hotel.example", staff.Staff)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	stored, err := suite.repository.GetByEmail(ctx, "  BARAKA@hotel.example ")

	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(u.ID()))
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmail(ctx, "ghost@hotel.example")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, suite.user("Ghost", "ghost@hotel.example", staff.Staff))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmailFails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.user("One", "same@hotel.example", staff.Staff)))

	err := suite.repository.Add(ctx, suite.user("Two", "same@hotel.example", staff.Staff))

	suite.Require().Error(err)
}

func (suite *AdminUserRepositoryIntegrationTestSuite) TestResolve() {
	ctx := context.Background()
	active := suite.user("Active", "active@hotel.example", staff.Staff)
	inactive := suite.user("Inactive", "inactive@hotel.example", staff.Admin)
	inactive.Deactivate()
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	byID, err := suite.identity.Resolve(ctx, active.ID().String())
	suite.Require().NoError(err)
	suite.True(byID.ID().IsEqual(active.ID()))

	byEmail, err := suite.identity.Resolve(ctx, "Active@hotel.example")
	suite.Require().NoError(err)
	suite.True(byEmail.ID().IsEqual(active.ID()))

	_, err = suite.identity.Resolve(ctx, inactive.ID().String())
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
	suite.Require().ErrorIs(err, adminrepo.ErrAccountInactive)

	_, err = suite.identity.Resolve(ctx, kernel.NewUUID().String())
	suite.Require().ErrorIs(err, adminrepo.ErrUnknownPrincipal)

	_, err = suite.identity.Resolve(ctx, "")
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *AdminUserRepositoryIntegrationTestSuite) user(name string, email string, role staff.Role) *staff.AdminUser {
	u, err := staff.NewAdminUser(kernel.NewUUID(), name, email, role, time.Now())
	suite.Require().NoError(err)
	return u
}

func TestAdminUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AdminUserRepositoryIntegrationTestSuite))
}
