package repository

import (
	"context"

	"namesapi/internal/model"
)

// NameRepository defines data access for name records.
// Implementations live in subpackages (mongo, postgres) and contain no business logic.
type NameRepository interface {
	// List returns every record in insertion order. It never returns a nil slice.
	List(ctx context.Context) ([]model.Record, error)

	// Create inserts a record with the given name and returns it with its storage-assigned ID.
	Create(ctx context.Context, name string) (*model.Record, error)

	// Delete removes a record by ID. It returns nil if the record was deleted, did not exist,
	// or the ID is not in the backend's format.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}
