package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srujan0404/coffee-main/internal/service"
)

// FavoritesHandler handles the favorites endpoints.
type FavoritesHandler struct {
	service *service.FavoritesService
	logger  *slog.Logger
}

// NewFavoritesHandler creates a new favorites HTTP handler.
func NewFavoritesHandler(svc *service.FavoritesService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{service: svc, logger: logger}
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: products})
}

// Add handles PUT /api/v1/favorites/{productID}
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeBadRequest(w, "productID is required")
		return
	}

	if err := h.service.Add(r.Context(), userID(r), productID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "added"}})
}

// Remove handles DELETE /api/v1/favorites/{productID}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeBadRequest(w, "productID is required")
		return
	}

	if err := h.service.Remove(r.Context(), userID(r), productID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "removed"}})
}
