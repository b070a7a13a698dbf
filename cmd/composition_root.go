package cmd

import (
	"log/slog"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/adapters/out/restapi/clientrepo"
	"backoffice/internal/adapters/out/restapi/orderrepo"
	"backoffice/internal/adapters/out/restapi/productrepo"
	"backoffice/internal/adapters/out/restapi/supplierrepo"
	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/jobs"
	"backoffice/internal/pkg/metrics"
)

// CompositionRoot wires the collaborator transport, the in-memory stores and
// the use case handlers together. The stores are created once here; every
// handler shares the same instances.
type CompositionRoot struct {
	clients   commands.ClientAccess
	suppliers commands.SupplierAccess
	products  commands.ProductAccess
	orders    commands.OrderAccess

	logger *slog.Logger
	config Config
}

// NewCompositionRoot creates the object graph from the given configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	api := restapi.NewClient(
		config.CollaboratorBaseURL,
		config.CollaboratorTimeout,
		logger,
		metrics.NewCollaboratorMetrics(),
	)

	return CompositionRoot{
		clients: commands.ClientAccess{
			Repo:  clientrepo.NewRestClientRepository(api),
			Store: stores.NewClientStore(),
		},
		suppliers: commands.SupplierAccess{
			Repo:  supplierrepo.NewRestSupplierRepository(api),
			Store: stores.NewSupplierStore(),
		},
		products: commands.ProductAccess{
			Repo:  productrepo.NewRestProductRepository(api),
			Store: stores.NewProductStore(),
		},
		orders: commands.OrderAccess{
			Repo:  orderrepo.NewRestOrderRepository(api),
			Store: stores.NewOrderStore(),
		},
		logger: logger,
		config: config,
	}
}

// CreateHTTPServer builds the inbound API server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		commands.NewClientCommandHandler(c.clients),
		commands.NewSupplierCommandHandler(c.suppliers),
		commands.NewProductCommandHandler(c.products),
		commands.NewCreateOrderCommandHandler(c.orders, c.products),
		commands.NewUpdateOrderStatusCommandHandler(c.orders),
		commands.NewDeleteOrderCommandHandler(c.orders),
		c.CreateGetAllClientsQueryHandler(),
		c.CreateGetAllSuppliersQueryHandler(),
		c.CreateGetAllProductsQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetAllClientsQueryHandler(),
		c.CreateGetAllSuppliersQueryHandler(),
		c.CreateGetAllProductsQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.config.StoreRefreshSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.clients.Repo, c.clients.Store)
}

func (c *CompositionRoot) CreateGetAllSuppliersQueryHandler() queries.GetAllSuppliersQueryHandler {
	return queries.NewGetAllSuppliersQueryHandler(c.suppliers.Repo, c.suppliers.Store)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.products.Repo, c.products.Store, c.suppliers.Store)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(
		c.orders.Repo, c.orders.Store, c.clients.Store, c.products.Store)
}
