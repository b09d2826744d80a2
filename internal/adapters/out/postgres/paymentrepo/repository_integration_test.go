package paymentrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
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

// PaymentRepositoryIntegrationTestSuite provides integration tests for the
// payment repository using a PostgreSQL container.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	session    *recordingSession
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments RESTART IDENTITY").Error)

	suite.session = newRecordingSession()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.session)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()
	testPayment := suite.newTestPayment(400_000, 1)

	err := suite.repository.Add(ctx, testPayment)
	suite.Require().NoError(err)

	suite.False(testPayment.ID().IsZero())
	suite.Contains(suite.session.tracked, testPayment.ID())

	version, known := suite.session.KnownVersion(fmt.Sprintf("payments/%d", testPayment.ID().Int64()))
	suite.True(known)
	suite.Equal(int64(1), version)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testPayment := suite.newTestPayment(400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	retrieved, err := suite.repository.Get(ctx, testPayment.ID())
	suite.Require().NoError(err)

	suite.Equal(testPayment.ID(), retrieved.ID())
	suite.Equal(kernel.Money(400_000), retrieved.Amount())
	suite.Equal(payment.Cash, retrieved.Method())
	suite.Equal(payment.Installment, retrieved.Form())
	suite.Equal(payment.Unpaid, retrieved.Status())
	suite.Nil(retrieved.PaymentDate())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_ConfirmCash_PersistsPaymentDate() {
	ctx := context.Background()
	testPayment := suite.newTestPayment(400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(testPayment.ConfirmCash(now))
	suite.Require().NoError(suite.repository.Update(ctx, testPayment))

	retrieved, err := suite.repository.Get(ctx, testPayment.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Paid, retrieved.Status())
	suite.Require().NotNil(retrieved.PaymentDate())
	suite.True(retrieved.PaymentDate().Equal(now))

	var dto paymentrepo.PaymentDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", testPayment.ID().Int64()).Error)
	suite.Equal(int64(2), dto.Version)
	suite.Equal(payment.Paid.String(), dto.Status)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testPayment := suite.newTestPayment(400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	sessionA := newRecordingSession()
	repoA := paymentrepo.NewGormPaymentRepository(suite.db, sessionA)
	paymentA, err := repoA.Get(ctx, testPayment.ID())
	suite.Require().NoError(err)

	sessionB := newRecordingSession()
	repoB := paymentrepo.NewGormPaymentRepository(suite.db, sessionB)
	paymentB, err := repoB.Get(ctx, testPayment.ID())
	suite.Require().NoError(err)

	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(paymentA.ConfirmCash(now))
	suite.Require().NoError(repoA.Update(ctx, paymentA))

	suite.Require().NoError(paymentB.Cancel())
	err = repoB.Update(ctx, paymentB)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The confirmation wins; the stale cancellation never lands.
	var dto paymentrepo.PaymentDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", testPayment.ID().Int64()).Error)
	suite.Equal(payment.Paid.String(), dto.Status)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	testPayment := suite.newTestPayment(400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	suite.Require().NoError(suite.repository.Delete(ctx, testPayment.ID()))

	var count int64
	suite.Require().NoError(suite.db.Model(&paymentrepo.PaymentDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)

	err := suite.repository.Delete(ctx, testPayment.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestLedgerSnapshots() {
	ctx := context.Background()
	orderID := kernel.ID(77)
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	paid := suite.newTestPaymentForOrder(orderID, 400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, paid))
	suite.Require().NoError(paid.ConfirmCash(now))
	suite.Require().NoError(suite.repository.Update(ctx, paid))

	open := suite.newTestPaymentForOrder(orderID, 300_000, 2)
	suite.Require().NoError(suite.repository.Add(ctx, open))

	cancelled := suite.newTestPaymentForOrder(orderID, 200_000, 3)
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	paidTotal, err := suite.repository.PaidTotal(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(400_000), paidTotal)

	nonCancelled, err := suite.repository.NonCancelledTotal(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(700_000), nonCancelled)

	hasPaid, err := suite.repository.HasPaidPayment(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(hasPaid)

	hasPaidOther, err := suite.repository.HasPaidPayment(ctx, kernel.ID(78))
	suite.Require().NoError(err)
	suite.False(hasPaidOther)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllUnpaidDueBefore() {
	ctx := context.Background()
	orderID := kernel.ID(77)

	overdue := suite.newTestPaymentForOrder(orderID, 400_000, 1)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	future, err := payment.NewPayment(
		orderID, kernel.Money(300_000), payment.Cash, payment.Installment, 2,
		time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, future))

	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	due, err := suite.repository.GetAllUnpaidDueBefore(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Len(due, 1)
	suite.Equal(overdue.ID(), due[0].ID())
}

func (suite *PaymentRepositoryIntegrationTestSuite) newTestPayment(amount int64, cycle int) *payment.Payment {
	return suite.newTestPaymentForOrder(kernel.ID(77), amount, cycle)
}

func (suite *PaymentRepositoryIntegrationTestSuite) newTestPaymentForOrder(
	orderID kernel.ID, amount int64, cycle int,
) *payment.Payment {
	money, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)

	testPayment, err := payment.NewPayment(
		orderID, money, payment.Cash, payment.Installment, cycle,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return testPayment
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
