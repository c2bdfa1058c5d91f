package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upsertPayload struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(upsertPayload{ID: "id1", Name: "name1"}))
}

func TestValidateStructMissingFields(t *testing.T) {
	err := ValidateStruct(upsertPayload{Name: "name1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")

	err = ValidateStruct(upsertPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
	assert.Contains(t, err.Error(), "name is required")
}
