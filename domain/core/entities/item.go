package entities

import (
	"time"

	pkgerrors "learnermax/pkg/errors"
)

// Item is the sole domain entity: a named record keyed by a string
// identifier. Timestamps serialize as RFC3339, matching what the
// store persists.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewItem creates a new item with both timestamps stamped to now.
// A first write always has CreatedAt == UpdatedAt.
func NewItem(id, name string) (*Item, error) {
	if err := ValidateKey(id, name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Item{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateKey checks the write invariant: id and name must both be
// non-empty for any write to succeed.
func ValidateKey(id, name string) error {
	if id == "" {
		return pkgerrors.NewValidationError("id is required")
	}
	if name == "" {
		return pkgerrors.NewValidationError("name is required")
	}
	return nil
}
