package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/repository"
	"github.com/redis/go-redis/v9"
)

const listingCacheKeyPrefix = "listing:"

type listingCacheRepository struct {
	client *redis.Client
}

func NewListingCacheRepository(client *redis.Client) repository.ListingCache {
	return &listingCacheRepository{client: client}
}

func listingCacheKey(listingID string) string {
	return listingCacheKeyPrefix + listingID
}

func (r *listingCacheRepository) Get(ctx context.Context, listingID string) (*entity.SellerListing, error) {
	val, err := r.client.Get(ctx, listingCacheKey(listingID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing %s from redis: %w", listingID, err)
	}

	var listing entity.SellerListing
	if err := json.Unmarshal(val, &listing); err != nil {
		// Corrupted payload behaves like a miss; drop it so the next write heals the key.
		_ = r.Delete(ctx, listingID)
		return nil, fmt.Errorf("failed to unmarshal cached listing %s: %w", listingID, err)
	}
	return &listing, nil
}

func (r *listingCacheRepository) Set(ctx context.Context, listingID string, listing *entity.SellerListing, ttl time.Duration) error {
	if listing == nil || listingID == "" {
		return errors.New("cannot cache nil listing or listing with empty ID")
	}

	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal listing %s for caching: %w", listingID, err)
	}

	if err := r.client.Set(ctx, listingCacheKey(listingID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set listing %s in redis: %w", listingID, err)
	}
	return nil
}

func (r *listingCacheRepository) Delete(ctx context.Context, listingID string) error {
	if err := r.client.Del(ctx, listingCacheKey(listingID)).Err(); err != nil {
		return fmt.Errorf("failed to delete listing %s from redis: %w", listingID, err)
	}
	return nil
}
