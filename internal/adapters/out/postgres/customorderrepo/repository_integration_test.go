package customorderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/customorderrepo"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CustomOrderRepositoryIntegrationTestSuite provides integration tests for
// CustomOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type CustomOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customorderrepo.GormCustomOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&customorderrepo.CustomOrderDTO{}))
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE custom_orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = customorderrepo.NewGormCustomOrderRepository(suite.db, suite.tracker)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestAdd_ValidCustomOrder_Success() {
	ctx := context.Background()

	co := suite.createOpenRequest()

	suite.tracker.On("TrackAggregate", co.ID(), co).Once()

	err := suite.repository.Add(ctx, co)
	suite.Require().NoError(err)

	suite.assertCustomOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestGet_ExistingCustomOrder_RoundTrip() {
	ctx := context.Background()

	deadline := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Microsecond)
	co := suite.createDeadlineRequest(deadline)

	suite.tracker.On("TrackAggregate", co.ID(), co).Once()
	suite.Require().NoError(suite.repository.Add(ctx, co))

	retrieved, err := suite.repository.Get(ctx, co.ID())
	suite.Require().NoError(err)

	suite.Equal(co.ID(), retrieved.ID())
	suite.Equal(co.BuyerID(), retrieved.BuyerID())
	suite.Equal(co.Title(), retrieved.Title())
	suite.Equal(customorder.ByDeadline, retrieved.DeliveryType())
	suite.Require().NotNil(retrieved.Deadline())
	suite.WithinDuration(deadline, *retrieved.Deadline(), time.Microsecond)
	suite.Equal(customorder.Pending, retrieved.Status())
	suite.True(retrieved.MaxPrice().IsEqual(co.MaxPrice()))
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestGet_NonExistentCustomOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()

	co := suite.createOpenRequest()
	suite.tracker.On("TrackAggregate", co.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, co))

	loaded, err := suite.repository.Get(ctx, co.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.TransitionTo(customorder.Cancelled, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, co.ID())
	suite.Require().NoError(err)
	suite.Equal(customorder.Cancelled, retrieved.Status())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestUpdate_RacingTransition_Conflict() {
	ctx := context.Background()

	co := suite.createOpenRequest()
	suite.tracker.On("TrackAggregate", co.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, co))

	// Two loads of the same pending request
	first, err := suite.repository.Get(ctx, co.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, co.ID())
	suite.Require().NoError(err)

	// First transition wins
	suite.Require().NoError(first.TransitionTo(customorder.Cancelled, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second loses: its loaded status no longer matches the stored row
	suite.Require().NoError(second.TransitionTo(customorder.Declined, time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestDelete_ExistingCustomOrder_Removed() {
	ctx := context.Background()

	co := suite.createOpenRequest()
	suite.tracker.On("TrackAggregate", co.ID(), co).Once()

	suite.Require().NoError(suite.repository.Add(ctx, co))
	suite.Require().NoError(suite.repository.Delete(ctx, co.ID()))

	suite.assertCustomOrderCount(0)

	_, err := suite.repository.Get(ctx, co.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestDelete_NonExistentCustomOrder_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestGetAllPendingPastDeadline_SelectsOnlyOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	// Overdue: pending with a past deadline. Restored directly since the
	// constructor refuses past deadlines.
	overdue := suite.restoreDeadlineRequest(now.Add(-time.Hour), customorder.Pending)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	// Not due yet
	future := suite.createDeadlineRequest(now.Add(48 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, future))

	// Past deadline but already accepted
	acceptedOverdue := suite.restoreDeadlineRequest(now.Add(-time.Hour), customorder.Accepted)
	suite.Require().NoError(suite.repository.Add(ctx, acceptedOverdue))

	// No deadline at all
	open := suite.createOpenRequest()
	suite.Require().NoError(suite.repository.Add(ctx, open))

	results, err := suite.repository.GetAllPendingPastDeadline(ctx, now)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(overdue.ID(), results[0].ID())
}

// createOpenRequest creates a pending custom order with no assigned seller
// and no deadline.
func (suite *CustomOrderRepositoryIntegrationTestSuite) createOpenRequest() *customorder.CustomOrder {
	maxPrice, err := kernel.NewMoney(150, "USD")
	suite.Require().NoError(err)

	co, err := customorder.NewCustomOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Hand-carved chess set", "Walnut and maple, tournament size",
		maxPrice, customorder.AsSoonAsPossible, nil, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return co
}

// createDeadlineRequest creates a pending custom order with a future deadline.
func (suite *CustomOrderRepositoryIntegrationTestSuite) createDeadlineRequest(
	deadline time.Time,
) *customorder.CustomOrder {
	maxPrice, err := kernel.NewMoney(150, "USD")
	suite.Require().NoError(err)

	co, err := customorder.NewCustomOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Hand-carved chess set", "Walnut and maple, tournament size",
		maxPrice, customorder.ByDeadline, &deadline, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return co
}

// restoreDeadlineRequest restores a custom order with an arbitrary deadline
// and status, bypassing the constructor's future-deadline check.
func (suite *CustomOrderRepositoryIntegrationTestSuite) restoreDeadlineRequest(
	deadline time.Time,
	status customorder.Status,
) *customorder.CustomOrder {
	maxPrice, err := kernel.NewMoney(150, "USD")
	suite.Require().NoError(err)

	co, err := customorder.RestoreCustomOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Hand-carved chess set", "Walnut and maple, tournament size",
		maxPrice, customorder.ByDeadline, &deadline,
		status, time.Now().UTC().Add(-48*time.Hour), nil, nil, nil,
	)
	suite.Require().NoError(err)
	return co
}

// assertCustomOrderCount verifies the number of custom order rows in the database.
func (suite *CustomOrderRepositoryIntegrationTestSuite) assertCustomOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&customorderrepo.CustomOrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestCustomOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomOrderRepositoryIntegrationTestSuite))
}
