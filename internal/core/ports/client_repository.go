// Package ports defines the repository interfaces the application core uses
// to reach the remote persistence collaborator. The interfaces invert the
// dependency on the HTTP adapter and keep use cases testable.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/client"
)

// ClientRepository is the uniform CRUD contract for clients.
// All errors are propagated raw: transport failures, shape failures and
// collaborator rejections are not translated or retried.
type ClientRepository interface {
	// List retrieves all clients.
	List(ctx context.Context) ([]*client.Client, error)

	// Create persists a new client and returns it with its assigned id.
	Create(ctx context.Context, c *client.Client) (*client.Client, error)

	// Update replaces the stored client and returns the updated entity.
	Update(ctx context.Context, id string, c *client.Client) (*client.Client, error)

	// Delete removes the client. No referential check against existing
	// orders is performed on either side.
	Delete(ctx context.Context, id string) error
}
