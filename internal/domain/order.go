package domain

import (
	"time"

	"github.com/srujan0404/coffee-main/pkg/money"
)

// Order is a snapshot of a cart at checkout time. The line collection and
// total are frozen copies; later cart mutations never touch placed orders.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Lines       []CartLine  `json:"lines"`
	TotalAmount money.Cents `json:"total_amount"`
	Currency    string      `json:"currency"`
	PlacedAt    time.Time   `json:"placed_at"`
}

// OrderFromCart freezes the cart's current lines and total into an order.
func OrderFromCart(id string, cart *Cart, placedAt time.Time) Order {
	lines := make([]CartLine, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = line
		lines[i].Variants = append([]LineVariant(nil), line.Variants...)
	}

	return Order{
		ID:          id,
		UserID:      cart.UserID,
		Lines:       lines,
		TotalAmount: cart.TotalAmount(),
		Currency:    cart.Currency,
		PlacedAt:    placedAt,
	}
}
