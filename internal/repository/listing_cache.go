package repository

import (
	"context"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
)

// ListingCache keeps hot listing reads off the primary store. Only seller
// listings are cached; buyer requests are always read fresh so a matching
// pass never works from stale candidates.
type ListingCache interface {
	Get(ctx context.Context, listingID string) (*entity.SellerListing, error)
	Set(ctx context.Context, listingID string, listing *entity.SellerListing, ttl time.Duration) error
	Delete(ctx context.Context, listingID string) error
}
