package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingSession is an in-memory stand-in for the unit of work's aggregate
// and version bookkeeping.
type recordingSession struct {
	tracked  []kernel.ID
	versions map[string]int64
}

func newRecordingSession() *recordingSession {
	return &recordingSession{versions: make(map[string]int64)}
}

func (s *recordingSession) TrackAggregate(id kernel.ID, _ any) {
	s.tracked = append(s.tracked, id)
}

func (s *recordingSession) RememberVersion(key string, version int64) {
	s.versions[key] = version
}

func (s *recordingSession) KnownVersion(key string) (int64, bool) {
	v, ok := s.versions[key]
	return v, ok
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	session    *recordingSession
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderDetailDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_details RESTART IDENTITY").Error)

	suite.session = newRecordingSession()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.session)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndContractNumber() {
	ctx := context.Background()
	testOrder := suite.newTestOrder()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.False(testOrder.ID().IsZero())
	suite.Equal(fmt.Sprintf("AGO-%d", testOrder.ID().Int64()), testOrder.ContractNumber())
	suite.Contains(suite.session.tracked, testOrder.ID())

	version, known := suite.session.KnownVersion(fmt.Sprintf("orders/%d", testOrder.ID().Int64()))
	suite.True(known)
	suite.Equal(int64(1), version)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	freshSession := newRecordingSession()
	freshRepo := orderrepo.NewGormOrderRepository(suite.db, freshSession)

	retrieved, err := freshRepo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ContractNumber(), retrieved.ContractNumber())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(testOrder.TotalAmount(), retrieved.TotalAmount())
	suite.Len(retrieved.Details(), 2)

	_, known := freshSession.KnownVersion(fmt.Sprintf("orders/%d", testOrder.ID().Int64()))
	suite.True(known)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.ID(424242))

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	testOrder := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.UpdateNotes("revised delivery window"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", testOrder.ID().Int64()).Error)
	suite.Equal("revised delivery window", dto.Notes)
	suite.Equal(int64(2), dto.Version)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	sessionA := newRecordingSession()
	repoA := orderrepo.NewGormOrderRepository(suite.db, sessionA)
	orderA, err := repoA.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	sessionB := newRecordingSession()
	repoB := orderrepo.NewGormOrderRepository(suite.db, sessionB)
	orderB, err := repoB.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(orderA.UpdateNotes("first writer"))
	suite.Require().NoError(repoA.Update(ctx, orderA))

	suite.Require().NoError(orderB.UpdateNotes("second writer"))
	err = repoB.Update(ctx, orderB)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The first writer's change survives untouched.
	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", testOrder.ID().Int64()).Error)
	suite.Equal("first writer", dto.Notes)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WithoutPriorRead_ReturnsNotFoundError() {
	ctx := context.Background()
	testOrder := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := order.RestoreOrder(
		testOrder.ID(),
		testOrder.AgencyID(),
		testOrder.EmployeeID(),
		nil,
		testOrder.ContractNumber(),
		"out of band edit",
		order.Pending,
		testOrder.Details(),
	)
	suite.Require().NoError(err)

	freshSession := newRecordingSession()
	freshRepo := orderrepo.NewGormOrderRepository(suite.db, freshSession)

	err = freshRepo.Update(ctx, restored)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByAgency_FiltersAndOrders() {
	ctx := context.Background()

	first := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	second := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, second))

	otherAgency := suite.newTestOrderForAgency(kernel.ID(99))
	suite.Require().NoError(suite.repository.Add(ctx, otherAgency))

	orders, err := suite.repository.GetAllByAgency(ctx, kernel.ID(1))
	suite.Require().NoError(err)

	suite.Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Equal(second.ID(), orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder() *order.Order {
	return suite.newTestOrderForAgency(kernel.ID(1))
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrderForAgency(agencyID kernel.ID) *order.Order {
	price, err := kernel.NewMoney(500_000)
	suite.Require().NoError(err)
	discount, err := kernel.NewDiscount(0)
	suite.Require().NoError(err)

	detailOne, err := order.NewDetail(kernel.ID(7), 2, price, discount)
	suite.Require().NoError(err)
	detailTwo, err := order.NewDetail(kernel.ID(8), 1, price, discount)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		agencyID, kernel.ID(2), nil,
		[]order.Detail{detailOne, detailTwo},
		"integration test order",
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
