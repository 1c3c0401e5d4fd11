package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/srujan0404/coffee-main/pkg/errors"
)

const favoritesKeyPrefix = "favorites:"

// FavoritesRepository implements repository.FavoritesRepository using a
// Redis set per user.
type FavoritesRepository struct {
	client *redis.Client
}

// NewFavoritesRepository creates a Redis-backed favorites repository.
func NewFavoritesRepository(client *redis.Client) *FavoritesRepository {
	return &FavoritesRepository{client: client}
}

// Add inserts a product into the user's favorites. Adding an existing
// member is a no-op, which makes the operation idempotent.
func (r *FavoritesRepository) Add(ctx context.Context, userID, productID string) error {
	if err := r.client.SAdd(ctx, favoritesKeyPrefix+userID, productID).Err(); err != nil {
		return fmt.Errorf("redis add favorite: %w", err)
	}
	return nil
}

// Remove deletes a product from the user's favorites, reporting NotFound
// when it was not a member.
func (r *FavoritesRepository) Remove(ctx context.Context, userID, productID string) error {
	removed, err := r.client.SRem(ctx, favoritesKeyPrefix+userID, productID).Result()
	if err != nil {
		return fmt.Errorf("redis remove favorite: %w", err)
	}
	if removed == 0 {
		return apperrors.NotFound("favorite", productID)
	}
	return nil
}

// List returns the product IDs in the user's favorites. Set order is
// unspecified; callers that need a stable order sort against the catalog.
func (r *FavoritesRepository) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, favoritesKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list favorites: %w", err)
	}
	return ids, nil
}
