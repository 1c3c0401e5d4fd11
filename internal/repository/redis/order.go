package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/srujan0404/coffee-main/internal/domain"
)

const orderKeyPrefix = "orders:"

// maxOrderHistory caps the per-user history; older orders fall off the tail.
const maxOrderHistory = 100

// OrderRepository implements repository.OrderRepository using a Redis list
// per user, newest order at the head.
type OrderRepository struct {
	client *redis.Client
}

// NewOrderRepository creates a Redis-backed order history repository.
func NewOrderRepository(client *redis.Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// Append stores a placed order at the head of the user's history and trims
// the list to the retention cap.
func (r *OrderRepository) Append(ctx context.Context, order domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	key := orderKeyPrefix + order.UserID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, maxOrderHistory-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis push order: %w", err)
	}
	return nil
}

// List returns the user's orders, most recent first. A user with no history
// gets an empty slice, not an error.
func (r *OrderRepository) List(ctx context.Context, userID string) ([]domain.Order, error) {
	entries, err := r.client.LRange(ctx, orderKeyPrefix+userID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(entries))
	for _, entry := range entries {
		var order domain.Order
		if err := json.Unmarshal([]byte(entry), &order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
