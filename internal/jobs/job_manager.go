package jobs

import (
	"fmt"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storeRefreshJob *StoreRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	clients queries.GetAllClientsQueryHandler,
	suppliers queries.GetAllSuppliersQueryHandler,
	products queries.GetAllProductsQueryHandler,
	orders queries.GetAllOrdersQueryHandler,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		storeRefreshJob: NewStoreRefreshJob(clients, suppliers, products, orders, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start store refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storeRefreshJob.Stop()
}
