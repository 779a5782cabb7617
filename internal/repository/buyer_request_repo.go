package repository

import (
	"context"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
)

// BuyerRequestRepository is the store boundary for buyer search profiles.
// FindByBrandModel is an exact, case-sensitive equality query; the range
// refinement happens in memory on the service side, so no composite index
// over the four numeric fields is ever required.
type BuyerRequestRepository interface {
	Create(ctx context.Context, request *entity.BuyerRequest) (string, error)
	FindByBrandModel(ctx context.Context, brand, model string) ([]entity.BuyerRequest, error)
}
