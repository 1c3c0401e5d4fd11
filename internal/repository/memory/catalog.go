// Package memory holds the in-process catalog repository. The catalog is
// seed data loaded once at startup and never mutated, so an immutable
// in-memory copy is the whole persistence story.
package memory

import (
	"context"

	apperrors "github.com/srujan0404/coffee-main/pkg/errors"

	"github.com/srujan0404/coffee-main/internal/domain"
)

// CatalogRepository implements repository.CatalogRepository over an
// immutable product slice. Safe for concurrent reads; list methods return
// fresh slices so callers can never mutate the backing store.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewCatalogRepository indexes the loaded products.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// List returns every product in catalog order.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// ListByType returns the products of the given type in catalog order.
func (r *CatalogRepository) ListByType(ctx context.Context, productType string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Type == productType {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID retrieves a single product by its identifier.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}
