package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/internal/repository"
	apperrors "github.com/srujan0404/coffee-main/pkg/errors"
)

// CatalogService serves read-only projections over the product catalog.
type CatalogService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(catalog repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

// ListCoffees returns the coffee section, narrowed by category and a
// case-insensitive name query when given. Category "All" (or empty) means
// no category filter.
func (s *CatalogService) ListCoffees(ctx context.Context, category, query string) ([]domain.Product, error) {
	coffees, err := s.catalog.ListByType(ctx, domain.ProductTypeCoffee)
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}

	coffees = domain.FilterByCategory(coffees, category)
	if q := strings.TrimSpace(query); q != "" {
		coffees = domain.SearchByName(coffees, q)
	}
	return coffees, nil
}

// ListBeans returns the bean section of the catalog.
func (s *CatalogService) ListBeans(ctx context.Context) ([]domain.Product, error) {
	beans, err := s.catalog.ListByType(ctx, domain.ProductTypeBean)
	if err != nil {
		return nil, fmt.Errorf("list beans: %w", err)
	}
	return beans, nil
}

// Categories returns the coffee category strip: "All" first, then each
// distinct coffee name in catalog order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	coffees, err := s.catalog.ListByType(ctx, domain.ProductTypeCoffee)
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	return domain.Categories(coffees), nil
}

// GetProduct returns one product by ID, regardless of section.
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}
