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

// Upper bounds on cart growth to keep payloads sane.
const (
	// MaxQuantityPerVariant caps the quantity of a single size row.
	MaxQuantityPerVariant = 100
	// MaxLinesPerCart caps the number of distinct products in a cart.
	MaxLinesPerCart = 50
)

// AddToCartInput identifies the product and the selected size to merge into
// the cart. The denormalized display fields come from the catalog, not the
// client, so a line can never carry data the catalog doesn't have.
type AddToCartInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=100"`
}

// CartService owns every cart mutation. The merge and cascading-removal
// invariants live in the domain; this layer adds catalog resolution, input
// validation, persistence and event publication.
type CartService struct {
	carts    repository.CartRepository
	catalog  repository.CatalogRepository
	producer *event.Producer
	logger   *slog.Logger
	cartTTL  time.Duration
}

// NewCartService creates the cart service.
func NewCartService(
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	producer *event.Producer,
	logger *slog.Logger,
	cartTTL time.Duration,
) *CartService {
	return &CartService{
		carts:    carts,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
		cartTTL:  cartTTL,
	}
}

// GetCart returns the user's cart, or a fresh empty cart when none exists.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	return s.getOrCreate(ctx, userID)
}

// AddToCart merges one selected size of a product into the cart. Repeated
// calls with the same product and size accumulate quantity on a single
// line; a new size joins the existing line as its own row.
func (s *CartService) AddToCart(ctx context.Context, userID string, input AddToCartInput) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if qty > MaxQuantityPerVariant {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerVariant))
	}

	product, err := s.catalog.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	variant, ok := product.FindVariant(input.Size)
	if !ok {
		return nil, apperrors.NotFound("price variant", input.ProductID+"/"+input.Size)
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLimits(cart, product.ID, variant.Size, qty); err != nil {
		return nil, err
	}

	cart.Merge(domain.CartLine{
		ProductID:         product.ID,
		Type:              product.Type,
		Name:              product.Name,
		ImageRef:          product.ImageRef,
		SpecialIngredient: product.SpecialIngredient,
		Variants: []domain.LineVariant{
			{Size: variant.Size, Price: variant.Price, Currency: variant.Currency, Quantity: qty},
		},
	})

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", product.ID),
		slog.String("size", variant.Size),
		slog.Int("quantity", qty),
	)

	return cart, nil
}

// IncrementItem raises the quantity of an existing product/size row by one.
// Absent rows are reported as NotFound, never created.
func (s *CartService) IncrementItem(ctx context.Context, userID, productID, size string) (*domain.Cart, error) {
	return s.adjust(ctx, userID, productID, size, +1)
}

// DecrementItem lowers the quantity of an existing product/size row by one.
// A row at quantity 1 disappears, and a line with no remaining rows leaves
// the cart with it.
func (s *CartService) DecrementItem(ctx context.Context, userID, productID, size string) (*domain.Cart, error) {
	return s.adjust(ctx, userID, productID, size, -1)
}

func (s *CartService) adjust(ctx context.Context, userID, productID, size string, delta int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("cart item", productID+"/"+size)
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var ok bool
	if delta > 0 {
		if err := s.checkLimits(cart, productID, size, delta); err != nil {
			return nil, err
		}
		ok = cart.IncrementVariant(productID, size)
	} else {
		ok = cart.DecrementVariant(productID, size)
	}
	if !ok {
		return nil, apperrors.NotFound("cart item", productID+"/"+size)
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart quantity adjusted",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.String("size", size),
		slog.Int("delta", delta),
	)

	return cart, nil
}

// ClearCart drops every line from the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))
	return nil
}

// checkLimits rejects mutations that would push a size row past the
// quantity cap or the cart past the line cap.
func (s *CartService) checkLimits(cart *domain.Cart, productID, size string, add int) error {
	lineCount := len(cart.Lines)
	existing := 0
	found := false
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			continue
		}
		found = true
		for _, v := range line.Variants {
			if v.Size == size {
				existing = v.Quantity
			}
		}
	}

	if !found && lineCount >= MaxLinesPerCart {
		return apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d products", MaxLinesPerCart))
	}
	if existing+add > MaxQuantityPerVariant {
		return apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerVariant))
	}
	return nil
}

func (s *CartService) getOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) newEmptyCart(userID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.New().String(),
		UserID:    userID,
		Lines:     []domain.CartLine{},
		Currency:  "$",
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cartTTL),
	}
}

// persist stamps, saves and announces a mutated cart.
func (s *CartService) persist(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	cart.UpdatedAt = now
	cart.ExpiresAt = now.Add(s.cartTTL)

	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
