package cmd

import (
	"log/slog"

	httpadapter "fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/out/inmemory"
	"fastfood/internal/adapters/out/microservices"
	"fastfood/internal/adapters/out/postgres"
	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/core/application/dispatch"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/ports"
	"fastfood/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	reader     ports.PaymentStatusReader
	dispatcher ports.NotificationDispatcher
	queue      *dispatch.QueueDispatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters selected by configs. gormDB is only
// used, and must only be set, when configs.Storage is postgres.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	registry prometheus.Registerer,
	logger *slog.Logger,
) CompositionRoot {
	c := CompositionRoot{logger: logger}

	if configs.Storage == StorageMemory {
		store := inmemory.NewStore()
		c.uowFactory = inmemory.NewUnitOfWorkFactory(store)
		c.reader = store
	} else {
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.reader = orderrepo.NewGormOrderRepository(gormDB)
	}

	notifier := microservices.NewClient(configs.NotifierConfig(), microservices.NewMetrics(registry), logger)

	if configs.NotificationMode == NotificationModeInline {
		c.dispatcher = dispatch.NewInlineDispatcher(notifier, logger)
	} else {
		queue := dispatch.NewQueueDispatcher(notifier, logger, configs.NotificationQueueSize)
		promauto.With(registry).NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "fastfood",
			Subsystem: "notifier",
			Name:      "queue_length",
			Help:      "Notifications waiting for the dispatch job.",
		}, func() float64 {
			return float64(queue.Len())
		})
		c.queue = queue
		c.dispatcher = queue
	}

	return c
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	return commands.NewCheckoutOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateProcessPaymentWebhookCommandHandler() commands.ProcessPaymentWebhookCommandHandler {
	payments := c.CreateUpdatePaymentStatusCommandHandler()
	return commands.NewProcessPaymentWebhookCommandHandler(&payments, c.logger)
}

func (c *CompositionRoot) CreateGetPaymentStatusQueryHandler() queries.GetPaymentStatusQueryHandler {
	return queries.NewGetPaymentStatusQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	payments := c.CreateUpdatePaymentStatusCommandHandler()
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCheckoutOrderCommandHandler(),
		c.CreateAdvanceOrderStatusCommandHandler(),
		&payments,
		c.CreateProcessPaymentWebhookCommandHandler(),
		c.CreateGetPaymentStatusQueryHandler(),
		c.logger,
	)
}

// CreateJobManager returns the background jobs. Inline notification mode has none.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.queue == nil {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(jobs.NewNotificationDispatchJob(c.queue, c.logger))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
