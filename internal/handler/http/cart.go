// Package http exposes the storefront API over chi.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/internal/service"
	"github.com/srujan0404/coffee-main/pkg/money"
	"github.com/srujan0404/coffee-main/pkg/validator"
)

// CartHandler handles the cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// AddItemRequest is the JSON body for adding an item to the cart. Quantity
// defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=100"`
}

// cartView decorates the stored cart with its derived totals. The amount
// stays in cents; the display string is for clients that render it as-is.
type cartView struct {
	*domain.Cart
	ItemCount    int         `json:"item_count"`
	TotalAmount  money.Cents `json:"total_amount"`
	TotalDisplay string      `json:"total_display"`
}

func newCartView(cart *domain.Cart) cartView {
	total := cart.TotalAmount()
	return cartView{
		Cart:         cart,
		ItemCount:    cart.ItemCount(),
		TotalAmount:  total,
		TotalDisplay: cart.Currency + total.String(),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: newCartView(cart)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), userID(r), service.AddToCartInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: newCartView(cart)})
}

// IncrementItem handles POST /api/v1/cart/items/{productID}/{size}/increment
func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	size := chi.URLParam(r, "size")
	if productID == "" || size == "" {
		writeBadRequest(w, "productID and size are required")
		return
	}

	cart, err := h.service.IncrementItem(r.Context(), userID(r), productID, size)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: newCartView(cart)})
}

// DecrementItem handles POST /api/v1/cart/items/{productID}/{size}/decrement
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	size := chi.URLParam(r, "size")
	if productID == "" || size == "" {
		writeBadRequest(w, "productID and size are required")
		return
	}

	cart, err := h.service.DecrementItem(r.Context(), userID(r), productID, size)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: newCartView(cart)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), userID(r)); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "cleared"}})
}
