package cmd

import (
	"log/slog"

	reactorin "foodorder/internal/adapters/in/events"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     auth.Policy
	bus        ports.MessageBus
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, bus ports.MessageBus, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     auth.NewPolicy(),
		bus:        bus,
		logger:     logger,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderDeliveryInfoCommandHandler() commands.UpdateOrderDeliveryInfoCommandHandler {
	return commands.NewUpdateOrderDeliveryInfoCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelRestaurantOrdersCommandHandler() commands.CancelRestaurantOrdersCommandHandler {
	return commands.NewCancelRestaurantOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkRestaurantDeletedCommandHandler() commands.MarkRestaurantDeletedCommandHandler {
	return commands.NewMarkRestaurantDeletedCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateRemoveUserDataCommandHandler() commands.RemoveUserDataCommandHandler {
	return commands.NewRemoveUserDataCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantOrdersQueryHandler() queries.ListRestaurantOrdersQueryHandler {
	return queries.NewListRestaurantOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateRestaurantOrderStatsQueryHandler() queries.RestaurantOrderStatsQueryHandler {
	return queries.NewRestaurantOrderStatsQueryHandler(c.gormDB, c.policy)
}

// CreateHTTPServer wires every use case handler into the REST surface.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AddCartItem:     c.CreateAddCartItemCommandHandler(),
		UpdateCartItem:  c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:  c.CreateRemoveCartItemCommandHandler(),
		ClearCart:       c.CreateClearCartCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		UpdateStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		UpdateDetails:   c.CreateUpdateOrderDetailsCommandHandler(),
		UpdateDelivery:  c.CreateUpdateOrderDeliveryInfoCommandHandler(),
		GetCart:         c.CreateGetCartQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListUserOrders:  c.CreateListUserOrdersQueryHandler(),
		ListRestOrders:  c.CreateListRestaurantOrdersQueryHandler(),
		ListAllOrders:   c.CreateListAllOrdersQueryHandler(),
		RestaurantStats: c.CreateRestaurantOrderStatsQueryHandler(),
	})
}

// CreateReactor wires the compensation handlers into the external event
// consumer.
func (c *CompositionRoot) CreateReactor() *reactorin.Reactor {
	removeUserData := c.CreateRemoveUserDataCommandHandler()
	cancelRestaurantOrders := c.CreateCancelRestaurantOrdersCommandHandler()
	markRestaurantDeleted := c.CreateMarkRestaurantDeletedCommandHandler()
	updatePaymentStatus := c.CreateUpdatePaymentStatusCommandHandler()

	return reactorin.NewReactor(
		c.bus,
		&removeUserData,
		&cancelRestaurantOrders,
		&markRestaurantDeleted,
		&updatePaymentStatus,
		reactorin.Config{
			MaxAttempts: c.config.ReactorMaxAttempts,
			RetryDelay:  c.config.ReactorRetryDelay,
		},
		c.logger,
	)
}

// CreateJobManager wires the outbox relay against the live database and bus.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	outbox := outboxrepo.NewGormOutboxRepository(c.gormDB)
	return jobs.NewJobManager(outbox, c.bus, c.config.OutboxRelaySchedule, c.config.OutboxRelayBatchSize, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
