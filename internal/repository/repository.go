// Package repository defines the persistence interfaces consumed by the
// service layer.
package repository

import (
	"context"

	"github.com/srujan0404/coffee-main/internal/domain"
)

// CatalogRepository provides read-only access to the immutable product
// catalog.
type CatalogRepository interface {
	// List returns every product in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// ListByType returns the products of one type (Coffee or Bean).
	ListByType(ctx context.Context, productType string) ([]domain.Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// CartRepository persists carts keyed by user ID.
type CartRepository interface {
	// Get retrieves the user's cart.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save overwrites the user's cart.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the user's cart.
	Delete(ctx context.Context, userID string) error
}

// OrderRepository persists per-user order history.
type OrderRepository interface {
	// Append stores a placed order at the head of the user's history.
	Append(ctx context.Context, order domain.Order) error

	// List returns the user's orders, most recent first.
	List(ctx context.Context, userID string) ([]domain.Order, error)
}

// FavoritesRepository persists the per-user favorite product set.
type FavoritesRepository interface {
	// Add inserts a product into the user's favorites (idempotent).
	Add(ctx context.Context, userID, productID string) error

	// Remove deletes a product from the user's favorites.
	Remove(ctx context.Context, userID, productID string) error

	// List returns the product IDs in the user's favorites.
	List(ctx context.Context, userID string) ([]string, error)
}
