package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/internal/repository"
	apperrors "github.com/srujan0404/coffee-main/pkg/errors"
)

// FavoritesService maintains the per-user favorite product set.
type FavoritesService struct {
	favorites repository.FavoritesRepository
	catalog   repository.CatalogRepository
	logger    *slog.Logger
}

// NewFavoritesService creates the favorites service.
func NewFavoritesService(
	favorites repository.FavoritesRepository,
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) *FavoritesService {
	return &FavoritesService{
		favorites: favorites,
		catalog:   catalog,
		logger:    logger,
	}
}

// Add marks a catalog product as a favorite. Adding an existing favorite is
// a no-op; an unknown product is rejected.
func (s *FavoritesService) Add(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}

	if _, err := s.catalog.GetByID(ctx, productID); err != nil {
		return fmt.Errorf("resolve product: %w", err)
	}

	if err := s.favorites.Add(ctx, userID, productID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)
	return nil
}

// Remove unmarks a favorite. Removing a product that isn't in the set is
// reported as NotFound.
func (s *FavoritesService) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}

	if err := s.favorites.Remove(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite removed",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)
	return nil
}

// List resolves the user's favorites to full catalog products. IDs that no
// longer resolve are silently dropped so a reshuffled catalog can't break
// the favorites screen.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.Product, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	ids, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.catalog.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.WarnContext(ctx, "favorite no longer in catalog",
					slog.String("user_id", userID),
					slog.String("product_id", id),
				)
				continue
			}
			return nil, fmt.Errorf("resolve favorite: %w", err)
		}
		products = append(products, *product)
	}
	return products, nil
}
