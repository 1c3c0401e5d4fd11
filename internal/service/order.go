package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/internal/event"
	"github.com/srujan0404/coffee-main/internal/repository"
	apperrors "github.com/srujan0404/coffee-main/pkg/errors"
)

// OrderService turns carts into orders and serves order history.
type OrderService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		producer: producer,
		logger:   logger,
	}
}

// Checkout freezes the user's cart into an order, appends it to the order
// history and empties the cart. An empty or missing cart cannot be checked
// out.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidInput("cart is empty")
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	order := domain.OrderFromCart(uuid.New().String(), cart, time.Now().UTC())

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	// The order is the durable record; a failed cart delete only means the
	// user sees a stale cart until its TTL fires.
	if err := s.carts.Delete(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("user_id", userID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderPlaced(ctx, &order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("user_id", userID),
		slog.String("order_id", order.ID),
		slog.Int64("total_amount", int64(order.TotalAmount)),
	)

	return &order, nil
}

// ListOrders returns the user's order history, most recent first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	orders, err := s.orders.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
