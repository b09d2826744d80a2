package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_details, payments, vehicle_deliveries RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow2.DeliveryRepository())
	suite.NotNil(uow2.AppointmentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Repeated Begin must be a no-op, not a nested transaction.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testDelivery, err := delivery.NewVehicleDelivery(
		testOrder.ID(), kernel.ID(2),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, deliveryCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&deliveryCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), deliveryCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testDelivery, err := delivery.NewVehicleDelivery(
		testOrder.ID(), kernel.ID(2),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, deliveryCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&deliveryCount).Error)
	suite.Equal(int64(0), orderCount)
	suite.Equal(int64(0), deliveryCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesShareOneTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Uncommitted writes are visible inside the transaction but not outside.
	inside, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), inside.ID())

	var outsideCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&outsideCount).Error)
	suite.Equal(int64(0), outsideCount)

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder() *order.Order {
	price, err := kernel.NewMoney(500_000)
	suite.Require().NoError(err)
	discount, err := kernel.NewDiscount(0)
	suite.Require().NoError(err)

	detail, err := order.NewDetail(kernel.ID(7), 2, price, discount)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.ID(1), kernel.ID(2), nil, []order.Detail{detail}, "uow test order")
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
