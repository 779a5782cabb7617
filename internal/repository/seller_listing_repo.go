package repository

import (
	"context"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
)

type SellerListingRepository interface {
	Create(ctx context.Context, listing *entity.SellerListing) (string, error)
	GetByID(ctx context.Context, id string) (*entity.SellerListing, error)
	ListRecent(ctx context.Context, limit int) ([]entity.SellerListing, error)
}
