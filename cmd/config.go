package cmd

import (
	"time"
)

// Config carries the runtime settings of the back office service.
type Config struct {
	// HTTPPort is the port the API listens on.
	HTTPPort string

	// CollaboratorBaseURL is the root of the persistence collaborator's
	// REST API, e.g. http://localhost:8080.
	CollaboratorBaseURL string

	// CollaboratorTimeout bounds every collaborator request. There is no
	// retry; the timeout is the only resilience mechanism.
	CollaboratorTimeout time.Duration

	// StoreRefreshSchedule is the cron spec (six fields, with seconds) for
	// the background store refresh.
	StoreRefreshSchedule string
}
