package handlers

import (
	"encoding/json"
	"net/http"

	"learnermax/application/services"
	"learnermax/domain/core/entities"
	pkgerrors "learnermax/pkg/errors"
	"learnermax/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds upsert request bodies
const maxBodyBytes = 1 << 20

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service *services.ItemService
	errors  *pkgerrors.ErrorHandler
	logger  *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *services.ItemService, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger,
	}
}

// UpsertItemRequest represents the request body for creating or
// replacing an item
type UpsertItemRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ListItems handles GET /api/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if items == nil {
		items = []*entities.Item{}
	}
	h.respondJSON(w, http.StatusOK, items)
}

// GetItem handles GET /api/items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("id is required"))
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// UpsertItem handles POST /api/items. Validation here short-circuits
// before the service is called; the service validates again on its
// own.
func (h *ItemHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	item, err := h.service.Upsert(r.Context(), req.ID, req.Name)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	// 200 rather than 201: upsert replaces as often as it creates,
	// and the published contract fixes the success code
	h.respondJSON(w, http.StatusOK, item)
}

// respondJSON sends a JSON response
func (h *ItemHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
