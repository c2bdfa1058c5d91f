package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "learnermax/pkg/errors"
)

func TestUpsertThenGetRoundTrips(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	written, err := repo.Upsert(ctx, "id1", "name1")
	require.NoError(t, err)
	assert.Equal(t, written.CreatedAt, written.UpdatedAt)

	got, err := repo.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, "id1", got.ID)
	assert.Equal(t, "name1", got.Name)
	assert.Equal(t, written.CreatedAt, got.CreatedAt)
}

func TestGetNeverWrittenID(t *testing.T) {
	repo := NewItemRepository()

	_, err := repo.GetByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Contains(t, pkgerrors.GetAppError(err).Message, "ghost")
}

func TestListEmptyStore(t *testing.T) {
	repo := NewItemRepository()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLastWriteWinsPreservesCreatedAt(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "id1", "name1")
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, "id1", "name2")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, "name2", got.Name)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestInvalidWriteLeavesStoreUntouched(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "id1", "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = repo.GetByID(ctx, "id1")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestListReturnsCopies(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "id1", "name1")
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	got, err := repo.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, "name1", got.Name)
}
