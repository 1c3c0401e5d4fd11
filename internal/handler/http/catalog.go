package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srujan0404/coffee-main/internal/service"
)

// CatalogHandler handles the read-only catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// ListCoffees handles GET /api/v1/catalog/coffees?category=&q=
func (h *CatalogHandler) ListCoffees(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	coffees, err := h.service.ListCoffees(r.Context(), category, query)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: coffees})
}

// ListBeans handles GET /api/v1/catalog/beans
func (h *CatalogHandler) ListBeans(w http.ResponseWriter, r *http.Request) {
	beans, err := h.service.ListBeans(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: beans})
}

// Categories handles GET /api/v1/catalog/categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: categories})
}

// GetProduct handles GET /api/v1/catalog/products/{productID}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeBadRequest(w, "productID is required")
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: product})
}
