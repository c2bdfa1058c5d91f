package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"learnermax/application/services"
	"learnermax/domain/core/entities"
	"learnermax/infrastructure/persistence/memory"
	pkgerrors "learnermax/pkg/errors"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	repo := memory.NewItemRepository()
	logger := zap.NewNop()
	svc := services.NewItemService(repo, logger)
	handler := NewItemHandler(svc, pkgerrors.NewErrorHandler(logger, false), logger)

	r := chi.NewRouter()
	r.Get("/api/items", handler.ListItems)
	r.Post("/api/items", handler.UpsertItem)
	r.Get("/api/items/{id}", handler.GetItem)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) pkgerrors.ErrorBody {
	t.Helper()
	var resp pkgerrors.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestListItemsEmptyStore(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUpsertThenGet(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"id":"id1","name":"name1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var created entities.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "id1", created.ID)
	assert.Equal(t, "name1", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/id1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created, got)
}

func TestUpsertMissingID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"name":"no id"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Contains(t, body.Message, "required")
	assert.Equal(t, "/api/items", body.Path)
}

func TestUpsertMissingName(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"id":"id1"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "required")
}

func TestUpsertMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "invalid request body")
}

func TestGetItemNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Contains(t, body.Message, "ghost")
}

func TestUpsertLastWriteWins(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"id":"id1","name":"name1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var first entities.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"id":"id1","name":"name2"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var second entities.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&second))

	assert.Equal(t, "name2", second.Name)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestListAfterWrites(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"id":"id1","name":"name1"}`,
		`{"id":"id2","name":"name2"}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []entities.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "id1", items[0].ID)
	assert.Equal(t, "id2", items[1].ID)
}
