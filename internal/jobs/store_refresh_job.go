package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StoreRefreshJob periodically reloads the in-memory stores from the
// persistence collaborator so the dashboard keeps serving current data even
// when nobody triggers a list request.
//
// Each resource is refreshed independently: a failing collaborator call
// leaves that store's previous contents in place and is logged, never
// retried within the same tick.
type StoreRefreshJob struct {
	clients   queries.GetAllClientsQueryHandler
	suppliers queries.GetAllSuppliersQueryHandler
	products  queries.GetAllProductsQueryHandler
	orders    queries.GetAllOrdersQueryHandler

	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStoreRefreshJob creates the refresh job with the given cron schedule
// (six-field spec with seconds).
func NewStoreRefreshJob(
	clients queries.GetAllClientsQueryHandler,
	suppliers queries.GetAllSuppliersQueryHandler,
	products queries.GetAllProductsQueryHandler,
	orders queries.GetAllOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StoreRefreshJob {
	return &StoreRefreshJob{
		clients:   clients,
		suppliers: suppliers,
		products:  products,
		orders:    orders,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "store_refresh_job"),
	}
}

// Start runs one immediate refresh and then begins the schedule.
func (j *StoreRefreshJob) Start() error {
	j.RefreshAll(context.Background())

	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RefreshAll(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh schedule.
func (j *StoreRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store refresh job stopped")
}

// RefreshAll reloads every store once. Catalog stores are refreshed before
// orders so the order read models can resolve relation names.
func (j *StoreRefreshJob) RefreshAll(ctx context.Context) {
	if _, err := j.clients.Handle(ctx, queries.NewGetAllClientsQuery()); err != nil {
		j.logger.ErrorContext(ctx, "Client store refresh failed", "error", err)
	}
	if _, err := j.suppliers.Handle(ctx, queries.NewGetAllSuppliersQuery()); err != nil {
		j.logger.ErrorContext(ctx, "Supplier store refresh failed", "error", err)
	}
	if _, err := j.products.Handle(ctx, queries.NewGetAllProductsQuery()); err != nil {
		j.logger.ErrorContext(ctx, "Product store refresh failed", "error", err)
	}
	if _, err := j.orders.Handle(ctx, queries.NewGetAllOrdersQuery()); err != nil {
		j.logger.ErrorContext(ctx, "Order store refresh failed", "error", err)
	}
}
