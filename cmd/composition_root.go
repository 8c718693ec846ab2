package cmd

import (
	"log/slog"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/jobs"
	"ordering/internal/pkg/auth"
	"ordering/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenManager
	hasher     auth.BcryptHasher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := auth.NewTokenManager(configs.JWTSecret, configs.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewBcryptHasher(configs.BcryptCost),
		metrics:    metrics.New(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Tokens() *auth.TokenManager {
	return c.tokens
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), time.Now)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), order.PermissiveTransitions{})
	return &h
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	h := commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() *commands.CreateSessionCommandHandler {
	h := commands.NewCreateSessionCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
	return &h
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB, c.configs.ProductFileBaseURL)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewOrderStatusReportJob(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics,
		c.configs.StatusReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(report)
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
