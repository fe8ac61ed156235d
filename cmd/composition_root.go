package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "qrave/internal/adapters/in/http"
	"qrave/internal/adapters/out/eventbus"
	"qrave/internal/adapters/out/postgres"
	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/ports"
	"qrave/internal/jobs"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and background work of the
// API process.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	bus  ports.EventBus
	hub  *eventbus.Hub
	jobs *jobs.JobManager

	cancel context.CancelFunc
	done   chan struct{}
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	bus, err := newEventBus(cfg, gormDB, logger)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		bus:        bus,
		hub:        eventbus.NewHub(logger),
	}

	relay := c.CreateRelayOrderEventsCommandHandler()
	purge := c.CreatePurgePublishedEventsCommandHandler()
	c.jobs = jobs.NewJobManager(&relay, &purge, jobs.Config{RelayBatchSize: cfg.OutboxBatchSize}, logger)

	// A committed write wakes the relay instead of waiting for the next tick.
	c.uowFactory.OnCommit(c.jobs.Relay().Trigger)
	return c, nil
}

func newEventBus(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (ports.EventBus, error) {
	switch cfg.EventBus {
	case BusMemory:
		return eventbus.NewMemoryBus(), nil
	case BusPostgres:
		return eventbus.NewPostgresBus(gormDB, cfg.DB().DSN(), cfg.EventChannel, logger), nil
	case BusRedis:
		bus := eventbus.NewRedisBus(eventbus.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Channel:  cfg.EventChannel,
		}, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := bus.Ping(ctx); err != nil {
			_ = bus.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return bus, nil
	case BusRabbitMQ:
		bus, err := eventbus.NewRabbitMQBus(cfg.RabbitMQURL, cfg.EventChannel, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unknown event bus %q", cfg.EventBus)
	}
}

// Start runs the hub listener and the outbox jobs until Stop.
func (c *CompositionRoot) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go func() {
		defer close(c.done)
		c.hub.Run(ctx, c.bus)
	}()

	if err := c.jobs.StartAll(); err != nil {
		c.Stop()
		return err
	}
	c.logger.Info("background work started", zap.String("eventBus", c.cfg.EventBus))
	return nil
}

// Stop ends background work and closes every open event stream.
func (c *CompositionRoot) Stop() {
	c.jobs.StopAll()
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	c.hub.Close()
	if err := c.bus.Close(); err != nil {
		c.logger.Warn("close event bus", zap.Error(err))
	}
}

func (c *CompositionRoot) Hub() *eventbus.Hub {
	return c.hub
}

// Handlers collects the use cases served over HTTP.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	deleteCompleted := c.CreateDeleteCompletedOrdersCommandHandler()
	createRestaurant := c.CreateCreateRestaurantCommandHandler()
	updateRestaurant := c.CreateUpdateRestaurantCommandHandler()
	deleteRestaurant := c.CreateDeleteRestaurantCommandHandler()
	createMenuItem := c.CreateCreateMenuItemCommandHandler()
	updateMenuItem := c.CreateUpdateMenuItemCommandHandler()
	deleteMenuItem := c.CreateDeleteMenuItemCommandHandler()

	return httpin.Handlers{
		CreateOrder:           &createOrder,
		ChangeOrderStatus:     &changeStatus,
		DeleteOrder:           &deleteOrder,
		DeleteCompletedOrders: &deleteCompleted,
		CreateRestaurant:      &createRestaurant,
		UpdateRestaurant:      &updateRestaurant,
		DeleteRestaurant:      &deleteRestaurant,
		CreateMenuItem:        &createMenuItem,
		UpdateMenuItem:        &updateMenuItem,
		DeleteMenuItem:        &deleteMenuItem,

		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetRestaurant:   c.CreateGetRestaurantQueryHandler(),
		ListRestaurants: c.CreateListRestaurantsQueryHandler(),
		Login:           c.CreateLoginQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.MenuOrderUoWFactory = FuncMenuOrderUoWFactory(func() commands.MenuOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCompletedOrdersCommandHandler() commands.DeleteCompletedOrdersCommandHandler {
	return commands.NewDeleteCompletedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory(), bcrypt.DefaultCost)
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() commands.RelayOrderEventsCommandHandler {
	return commands.NewRelayOrderEventsCommandHandler(c.outboxUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreatePurgePublishedEventsCommandHandler() commands.PurgePublishedEventsCommandHandler {
	return commands.NewPurgePublishedEventsCommandHandler(c.outboxUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuOrderUoWFactory func() commands.MenuOrderUoW

func (f FuncMenuOrderUoWFactory) Create() commands.MenuOrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
