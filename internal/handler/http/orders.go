package http

import (
	"log/slog"
	"net/http"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/internal/service"
	"github.com/srujan0404/coffee-main/pkg/pagination"
)

// OrderHandler handles checkout and order history endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

// orderView decorates a stored order with its display total.
type orderView struct {
	domain.Order
	TotalDisplay string `json:"total_display"`
}

func newOrderView(order domain.Order) orderView {
	return orderView{
		Order:        order,
		TotalDisplay: order.Currency + order.TotalAmount.String(),
	}
}

// Checkout handles POST /api/v1/cart/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Checkout(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Data: newOrderView(*order)})
}

// ListOrders handles GET /api/v1/orders?page=&per_page=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	params := pagination.FromRequest(r)
	page := pagination.Slice(orders, params)
	views := make([]orderView, len(page))
	for i, order := range page {
		views[i] = newOrderView(order)
	}

	writeJSON(w, http.StatusOK, response{Data: pagination.NewResult(views, len(orders), params)})
}
