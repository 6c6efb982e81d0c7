package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(number string, userID, restaurantID kernel.UUID) *order.Order {
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", nil, nil)
	suite.Require().NoError(err)

	return suite.newTestOrderAt(number, userID, restaurantID, address)
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrderAt(number string, userID, restaurantID kernel.UUID, address order.Address) *order.Order {
	pizza, err := order.NewItem(kernel.NewUUID(), "Margherita", decimal.NewFromInt(10), "", 2, "")
	suite.Require().NoError(err)
	bread, err := order.NewItem(kernel.NewUUID(), "Garlic Bread", decimal.NewFromInt(5), "", 1, "extra crispy")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		userID,
		restaurantID,
		"Mario's Pizzeria",
		[]order.Item{pizza, bread},
		address,
		"555-0100",
		"card",
		"ring the bell",
	)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(aggregate *order.Order) {
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	testOrder := suite.newTestOrder("ORD-20260901-AAAA1111", kernel.NewUUID(), kernel.NewUUID())

	suite.addOrder(testOrder)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsOrderNumberTaken() {
	ctx := context.Background()
	number := "ORD-20260901-BBBB2222"

	first := suite.newTestOrder(number, kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(first)

	second := suite.newTestOrder(number, kernel.NewUUID(), kernel.NewUUID())
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrOrderNumberTaken)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	original := suite.newTestOrder("ORD-20260901-CCCC3333", userID, kernel.NewUUID())
	suite.addOrder(original)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal("ORD-20260901-CCCC3333", retrieved.Number())
	suite.True(userID.IsEqual(retrieved.UserID()))
	suite.Equal("Mario's Pizzeria", retrieved.RestaurantName())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.True(decimal.NewFromInt(25).Equal(retrieved.TotalAmount()))
	suite.Len(retrieved.Items(), 2)
	suite.Equal("1 Main St", retrieved.Address().Street())
	suite.Equal("555-0100", retrieved.ContactPhone())
	suite.Nil(retrieved.DeliveryID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndDelivery() {
	ctx := context.Background()
	aggregate := suite.newTestOrder("ORD-20260901-DDDD4444", kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(aggregate)

	eta := time.Now().Add(45 * time.Minute).UTC().Truncate(time.Second)
	suite.Require().NoError(aggregate.ChangeStatus(order.Confirmed, &eta))

	deliveryID := kernel.NewUUID()
	personID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AssignDelivery(deliveryID, &personID, "Alex Walker"))

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Require().NotNil(retrieved.EstimatedDeliveryTime())
	suite.True(eta.Equal(retrieved.EstimatedDeliveryTime().UTC()))
	suite.Require().NotNil(retrieved.DeliveryID())
	suite.True(deliveryID.IsEqual(*retrieved.DeliveryID()))
	suite.Equal("Alex Walker", retrieved.DeliveryPersonName())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RedactedOrder_KeepsTotal() {
	ctx := context.Background()
	aggregate := suite.newTestOrder("ORD-20260901-EEEE5555", kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(aggregate)

	aggregate.Redact(time.Now())

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.RedactedValue, retrieved.ContactPhone())
	suite.True(retrieved.Address().IsRedacted())
	suite.True(decimal.NewFromInt(25).Equal(retrieved.TotalAmount()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RedactedOrder_ClearsStoredCoordinates() {
	ctx := context.Background()
	lat, lng := 39.8017, -89.6437
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", &lat, &lng)
	suite.Require().NoError(err)

	aggregate := suite.newTestOrderAt("ORD-20260901-AB12CD34", kernel.NewUUID(), kernel.NewUUID(), address)
	suite.addOrder(aggregate)

	aggregate.Redact(time.Now())

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	// The raw columns must be scrubbed, not just masked on reconstruction.
	var stored struct {
		Street       string
		Latitude     *float64
		Longitude    *float64
		ContactPhone string
	}
	suite.Require().NoError(suite.db.
		Raw("SELECT street, latitude, longitude, contact_phone FROM orders WHERE id = ?", aggregate.ID().Bytes()).
		Scan(&stored).Error)

	suite.Equal(order.RedactedValue, stored.Street)
	suite.Nil(stored.Latitude)
	suite.Nil(stored.Longitude)
	suite.Equal(order.RedactedValue, stored.ContactPhone)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearedInstructions_Persist() {
	ctx := context.Background()
	aggregate := suite.newTestOrder("ORD-20260901-CD34EF56", kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(aggregate)

	empty := ""
	suite.Require().NoError(aggregate.UpdateDetails(nil, nil, &empty))

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.SpecialInstructions())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	aggregate := suite.newTestOrder("ORD-20260901-FFFF6666", kernel.NewUUID(), kernel.NewUUID())

	err := suite.repository.Update(context.Background(), aggregate)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_ReturnsOnlyUsersOrders() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	mine1 := suite.newTestOrder("ORD-20260901-1111AAAA", userID, kernel.NewUUID())
	mine2 := suite.newTestOrder("ORD-20260901-2222BBBB", userID, kernel.NewUUID())
	other := suite.newTestOrder("ORD-20260901-3333CCCC", kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(mine1)
	suite.addOrder(mine2)
	suite.addOrder(other)

	orders, err := suite.repository.GetAllByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.True(userID.IsEqual(o.UserID()))
		suite.Len(o.Items(), 2)
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByRestaurant_ReturnsOnlyOpenOrders() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	pending := suite.newTestOrder("ORD-20260901-4444DDDD", kernel.NewUUID(), restaurantID)
	suite.addOrder(pending)

	confirmed := suite.newTestOrder("ORD-20260901-5555EEEE", kernel.NewUUID(), restaurantID)
	suite.Require().NoError(confirmed.ChangeStatus(order.Confirmed, nil))
	suite.addOrder(confirmed)

	preparing := suite.newTestOrder("ORD-20260901-6666FFFF", kernel.NewUUID(), restaurantID)
	suite.Require().NoError(preparing.ChangeStatus(order.Confirmed, nil))
	suite.Require().NoError(preparing.ChangeStatus(order.Preparing, nil))
	suite.addOrder(preparing)

	cancelled := suite.newTestOrder("ORD-20260901-7777AAAA", kernel.NewUUID(), restaurantID)
	suite.Require().NoError(cancelled.Cancel("test", "customer", time.Now()))
	suite.addOrder(cancelled)

	elsewhere := suite.newTestOrder("ORD-20260901-8888BBBB", kernel.NewUUID(), kernel.NewUUID())
	suite.addOrder(elsewhere)

	orders, err := suite.repository.GetActiveByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	for _, o := range orders {
		suite.True(restaurantID.IsEqual(o.RestaurantID()))
		suite.Contains([]order.Status{order.Pending, order.Confirmed}, o.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByRestaurant_ReturnsEveryStatus() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	open := suite.newTestOrder("ORD-20260901-9999CCCC", kernel.NewUUID(), restaurantID)
	suite.addOrder(open)

	cancelled := suite.newTestOrder("ORD-20260901-0000DDDD", kernel.NewUUID(), restaurantID)
	suite.Require().NoError(cancelled.Cancel("closed", "system", time.Now()))
	suite.addOrder(cancelled)

	orders, err := suite.repository.GetAllByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)

	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
