package service

import (
	"strconv"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
)

// parseBound parses a base-10 integer field. A malformed field makes every
// comparison involving it false, so the candidate silently drops out of the
// match set instead of raising an error.
func parseBound(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchesRequest reports whether a listing falls inside a buyer request's
// year and price windows, both bounds inclusive. Brand and model equality is
// the store query's job; this function only refines the ranges.
func MatchesRequest(listing *entity.SellerListing, request *entity.BuyerRequest) bool {
	year, ok := parseBound(listing.Year)
	if !ok {
		return false
	}
	price, ok := parseBound(listing.Price)
	if !ok {
		return false
	}

	minYear, ok := parseBound(request.MinYear)
	if !ok {
		return false
	}
	maxYear, ok := parseBound(request.MaxYear)
	if !ok {
		return false
	}
	minPrice, ok := parseBound(request.MinPrice)
	if !ok {
		return false
	}
	maxPrice, ok := parseBound(request.MaxPrice)
	if !ok {
		return false
	}

	return year >= minYear && year <= maxYear &&
		price >= minPrice && price <= maxPrice
}
