package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "learnermax/pkg/errors"
)

func TestNewItem(t *testing.T) {
	item, err := NewItem("id1", "name1")
	require.NoError(t, err)

	assert.Equal(t, "id1", item.ID)
	assert.Equal(t, "name1", item.Name)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestNewItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		itemName string
		wantMsg  string
	}{
		{name: "empty id", id: "", itemName: "name1", wantMsg: "id is required"},
		{name: "empty name", id: "id1", itemName: "", wantMsg: "name is required"},
		{name: "both empty", id: "", itemName: "", wantMsg: "id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.id, tt.itemName)
			require.Error(t, err)
			assert.Nil(t, item)
			assert.True(t, pkgerrors.IsValidation(err))

			appErr := pkgerrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}
