package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/smtp"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers.
// Each Create* method builds a fresh handler over the shared database
// connection, unit-of-work factory and notifier.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the application's dependency graph from the
// configuration, database connection and logger.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notifier, err := smtp.NewNotifier(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		Sender:   cfg.SMTPSender,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateCustomOrderCommandHandler() commands.CreateCustomOrderCommandHandler {
	return commands.NewCreateCustomOrderCommandHandler(c.customOrderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionCustomOrderCommandHandler() commands.TransitionCustomOrderCommandHandler {
	return commands.NewTransitionCustomOrderCommandHandler(c.customOrderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteCustomOrderCommandHandler() commands.DeleteCustomOrderCommandHandler {
	return commands.NewDeleteCustomOrderCommandHandler(c.customOrderUoWFactory())
}

func (c *CompositionRoot) CreateExpireCustomOrdersCommandHandler() commands.ExpireCustomOrdersCommandHandler {
	return commands.NewExpireCustomOrdersCommandHandler(c.customOrderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateListCustomOrdersQueryHandler() queries.ListCustomOrdersQueryHandler {
	return queries.NewListCustomOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireCustomOrdersCommandHandler(), c.logger)
}

func (c *CompositionRoot) customOrderUoWFactory() commands.CustomOrderUoWFactory {
	return FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

// FuncCustomOrderUoWFactory adapts a closure to commands.CustomOrderUoWFactory.
type FuncCustomOrderUoWFactory func() commands.CustomOrderUoW

func (f FuncCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return f()
}

// FuncOrderUoWFactory adapts a closure to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncReviewUoWFactory adapts a closure to commands.ReviewUoWFactory.
type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
