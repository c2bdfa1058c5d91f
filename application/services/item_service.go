package services

import (
	"context"

	"learnermax/application/ports"
	"learnermax/domain/core/entities"
	pkgerrors "learnermax/pkg/errors"

	"go.uber.org/zap"
)

// ItemService provides the three item operations over the repository
// port. Validation happens here before any backend call is made; the
// repository validates independently as well, so invalid input is
// rejected by both layers.
type ItemService struct {
	repo   ports.ItemRepository
	logger *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(repo ports.ItemRepository, logger *zap.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every stored item. An empty store yields an empty
// slice, never an error.
func (s *ItemService) List(ctx context.Context) ([]*entities.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List items failed", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("List items succeeded", zap.Int("count", len(items)))
	return items, nil
}

// Get returns the item for id, or a NotFound error when no record
// matches. Reads never create records.
func (s *ItemService) Get(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("id is required")
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			s.logger.Debug("Item not found", zap.String("id", id))
		} else {
			s.logger.Error("Get item failed", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return item, nil
}

// Upsert creates or replaces the record for id and returns the stored
// record including both timestamps.
func (s *ItemService) Upsert(ctx context.Context, id, name string) (*entities.Item, error) {
	if err := entities.ValidateKey(id, name); err != nil {
		return nil, err
	}

	item, err := s.repo.Upsert(ctx, id, name)
	if err != nil {
		s.logger.Error("Upsert item failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Upsert item succeeded",
		zap.String("id", item.ID),
		zap.Time("updatedAt", item.UpdatedAt),
	)
	return item, nil
}
