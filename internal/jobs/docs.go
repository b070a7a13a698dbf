// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the in-memory stores synchronized with the persistence
// collaborator.
//
// # Available Jobs
//
// 1. StoreRefreshJob - Reloads the client, supplier, product and order
// stores from the collaborator on a configurable schedule, with one
// immediate refresh at startup.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(clientsHandler, suppliersHandler,
//		productsHandler, ordersHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh of one resource does not abort the others. Failures are
// logged and the affected store keeps its previous contents until the next
// tick.
package jobs
