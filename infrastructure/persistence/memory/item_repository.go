package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"learnermax/application/ports"
	"learnermax/domain/core/entities"
	pkgerrors "learnermax/pkg/errors"
)

// ItemRepository is an in-memory implementation of the ItemRepository
// port. It mirrors the DynamoDB implementation's semantics (typed
// errors, CreatedAt preserved across rewrites, last-write-wins) so
// handler and integration tests can run without a real table.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.Item
}

// NewItemRepository creates an empty in-memory repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[string]*entities.Item),
	}
}

// List returns all stored items sorted by id for deterministic output
func (r *ItemRepository) List(ctx context.Context) ([]*entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.Item, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		items = append(items, &copied)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetByID returns the matching item or a NotFound error
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("id is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("item '%s'", id))
	}

	copied := *item
	return &copied, nil
}

// Upsert creates or replaces the record for id, preserving CreatedAt
// on rewrite
func (r *ItemRepository) Upsert(ctx context.Context, id, name string) (*entities.Item, error) {
	if err := entities.ValidateKey(id, name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	item := &entities.Item{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := r.items[id]; ok {
		item.CreatedAt = existing.CreatedAt
	}
	r.items[id] = item

	copied := *item
	return &copied, nil
}

var _ ports.ItemRepository = (*ItemRepository)(nil)
