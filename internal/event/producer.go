// Package event publishes storefront domain events to Kafka.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/srujan0404/coffee-main/internal/domain"
	pkgkafka "github.com/srujan0404/coffee-main/pkg/kafka"
	"github.com/srujan0404/coffee-main/pkg/money"
)

// Topics for storefront domain events.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
	TopicOrderPlaced = "storefront.order.placed"
)

const (
	aggregateCart  = "cart"
	aggregateOrder = "order"
	source         = "storefront-service"
)

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID      string         `json:"user_id"`
	Lines       []CartLineData `json:"lines"`
	ItemCount   int            `json:"item_count"`
	TotalAmount money.Cents    `json:"total_amount"`
	Currency    string         `json:"currency"`
}

// CartLineData is one cart line within event payloads.
type CartLineData struct {
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Variants  []LineVariantData `json:"variants"`
}

// LineVariantData is one size row within event payloads.
type LineVariantData struct {
	Size     string      `json:"size"`
	Price    money.Cents `json:"price"`
	Quantity int         `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	ItemCount   int         `json:"item_count"`
	TotalAmount money.Cents `json:"total_amount"`
	Currency    string      `json:"currency"`
}

// Producer publishes storefront events.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{kafka: kafka, logger: logger}
}

// PublishCartUpdated publishes the cart's post-mutation state.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	lines := make([]CartLineData, len(cart.Lines))
	for i, line := range cart.Lines {
		variants := make([]LineVariantData, len(line.Variants))
		for j, v := range line.Variants {
			variants[j] = LineVariantData{Size: v.Size, Price: v.Price, Quantity: v.Quantity}
		}
		lines[i] = CartLineData{
			ProductID: line.ProductID,
			Name:      line.Name,
			Type:      line.Type,
			Variants:  variants,
		}
	}

	data := CartUpdatedData{
		UserID:      cart.UserID,
		Lines:       lines,
		ItemCount:   cart.ItemCount(),
		TotalAmount: cart.TotalAmount(),
		Currency:    cart.Currency,
	}

	return p.publish(ctx, TopicCartUpdated, cart.UserID, aggregateCart, data)
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, userID string) error {
	return p.publish(ctx, TopicCartCleared, userID, aggregateCart, CartClearedData{UserID: userID})
}

// PublishOrderPlaced publishes an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	var itemCount int
	for _, line := range order.Lines {
		for _, v := range line.Variants {
			itemCount += v.Quantity
		}
	}

	data := OrderPlacedData{
		OrderID:     order.ID,
		UserID:      order.UserID,
		ItemCount:   itemCount,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
	}

	return p.publish(ctx, TopicOrderPlaced, order.UserID, aggregateOrder, data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, source, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}
