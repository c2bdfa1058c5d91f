package ports

import (
	"context"

	"learnermax/domain/core/entities"
)

// ItemRepository defines the interface for item persistence.
// This is a port in hexagonal architecture - the domain doesn't know
// about the implementation. Absence is reported as a typed NotFound
// error (matched with pkg/errors.IsNotFound), never a panic.
type ItemRepository interface {
	// List retrieves every stored item. An empty table yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]*entities.Item, error)

	// GetByID retrieves an item by its ID
	GetByID(ctx context.Context, id string) (*entities.Item, error)

	// Upsert creates or replaces the record for id, stamping
	// UpdatedAt and preserving CreatedAt across rewrites. It returns
	// the stored record including timestamps.
	Upsert(ctx context.Context, id, name string) (*entities.Item, error)
}
