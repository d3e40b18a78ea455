package cmd

import (
	"sales/internal/adapters/in/http"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/ports"
	"sales/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.VariantCatalog
	publisher  ports.EventPublisher
	logger     *zap.SugaredLogger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	catalog ports.VariantCatalog,
	publisher ports.EventPublisher,
	logger *zap.SugaredLogger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) salesOrderUoWFactory() commands.SalesOrderUoWFactory {
	return FuncSalesOrderUoWFactory(func() commands.SalesOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSalesOrderCommandHandler() commands.CreateSalesOrderCommandHandler {
	return commands.NewCreateSalesOrderCommandHandler(c.salesOrderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateUpdateShippingAddressCommandHandler() commands.UpdateShippingAddressCommandHandler {
	return commands.NewUpdateShippingAddressCommandHandler(c.salesOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePersonalizationCommandHandler() commands.UpdatePersonalizationCommandHandler {
	return commands.NewUpdatePersonalizationCommandHandler(c.salesOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSalesOrderCommandHandler() commands.DeleteSalesOrderCommandHandler {
	return commands.NewDeleteSalesOrderCommandHandler(c.salesOrderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxMessagesCommandHandler() commands.RelayOutboxMessagesCommandHandler {
	return commands.NewRelayOutboxMessagesCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), c.publisher)
}

func (c *CompositionRoot) CreatePurgeOutboxMessagesCommandHandler() commands.PurgeOutboxMessagesCommandHandler {
	return commands.NewPurgeOutboxMessagesCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetSalesOrderQueryHandler() queries.GetSalesOrderQueryHandler {
	return queries.NewGetSalesOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSalesOrdersQueryHandler() queries.ListSalesOrdersQueryHandler {
	return queries.NewListSalesOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	createHandler := c.CreateCreateSalesOrderCommandHandler()
	shippingHandler := c.CreateUpdateShippingAddressCommandHandler()
	personalizationHandler := c.CreateUpdatePersonalizationCommandHandler()
	deleteHandler := c.CreateDeleteSalesOrderCommandHandler()
	getHandler := c.CreateGetSalesOrderQueryHandler()
	listHandler := c.CreateListSalesOrdersQueryHandler()

	return http.NewServer(http.Handlers{
		CreateOrder:           &createHandler,
		UpdateShippingAddress: &shippingHandler,
		UpdatePersonalization: &personalizationHandler,
		DeleteOrder:           &deleteHandler,
		GetOrder:              &getHandler,
		ListOrders:            &listHandler,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relayHandler := c.CreateRelayOutboxMessagesCommandHandler()
	purgeHandler := c.CreatePurgeOutboxMessagesCommandHandler()

	return jobs.NewJobManager(&relayHandler, &purgeHandler, jobs.JobSettings{
		RelayBatchSize:  c.configs.RelayBatchSize,
		OutboxRetention: c.configs.OutboxRetention,
	}, c.logger)
}

type FuncSalesOrderUoWFactory func() commands.SalesOrderUoW

func (f FuncSalesOrderUoWFactory) Create() commands.SalesOrderUoW {
	return f()
}
