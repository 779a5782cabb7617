package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/adapter/nats"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/DaliGabriel/yo-compro/internal/repository"
)

const (
	natsSubjectListingCreated = "listing.created"

	recentListingsLimit = 50
)

type ListingService interface {
	CreateListing(ctx context.Context, listing *entity.SellerListing) (*entity.SellerListing, error)
	GetListing(ctx context.Context, id string) (*entity.SellerListing, error)
	ListRecent(ctx context.Context) ([]entity.SellerListing, error)
	UploadPhoto(ctx context.Context, fileName string, data []byte) (string, error)
}

type listingService struct {
	listingRepo  repository.SellerListingRepository
	cache        repository.ListingCache
	photoStorage repository.PhotoStorage
	msgPublisher nats.MessagePublisher
	cacheTTL     time.Duration
	log          logger.Logger
}

func NewListingService(
	listingRepo repository.SellerListingRepository,
	cache repository.ListingCache,
	photoStorage repository.PhotoStorage,
	msgPublisher nats.MessagePublisher,
	cacheTTL time.Duration,
	log logger.Logger,
) ListingService {
	return &listingService{
		listingRepo:  listingRepo,
		cache:        cache,
		photoStorage: photoStorage,
		msgPublisher: msgPublisher,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// CreateListing persists the listing and performs best-effort cache and
// event writes. The matching pass is a separate call made by the submitting
// form layer; the write and the notification pass are two independent,
// non-atomic steps.
func (s *listingService) CreateListing(ctx context.Context, listing *entity.SellerListing) (*entity.SellerListing, error) {
	id, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		s.log.Errorf("Failed to create seller listing for %s %s: %v", listing.Brand, listing.Model, err)
		return nil, fmt.Errorf("ListingService.CreateListing: %w", err)
	}

	s.log.Infof("Seller listing %s created: %s %s, year %s, price %s", id, listing.Brand, listing.Model, listing.Year, listing.Price)

	if s.cache != nil {
		if errCache := s.cache.Set(ctx, id, listing, s.cacheTTL); errCache != nil {
			s.log.Warnf("Failed to cache listing %s after create: %v", id, errCache)
		}
	}

	if s.msgPublisher != nil {
		if errPub := s.msgPublisher.Publish(ctx, natsSubjectListingCreated, listing); errPub != nil {
			s.log.Warnf("Failed to publish listing created event for %s: %v", id, errPub)
		}
	}

	return listing, nil
}

func (s *listingService) GetListing(ctx context.Context, id string) (*entity.SellerListing, error) {
	if s.cache != nil {
		listing, err := s.cache.Get(ctx, id)
		if err == nil {
			return listing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("Cache lookup failed for listing %s: %v", id, err)
		}
	}

	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Errorf("Failed to get listing %s: %v", id, err)
		}
		return nil, fmt.Errorf("ListingService.GetListing: %w", err)
	}

	if s.cache != nil {
		if errCache := s.cache.Set(ctx, id, listing, s.cacheTTL); errCache != nil {
			s.log.Warnf("Failed to cache listing %s after fetch: %v", id, errCache)
		}
	}
	return listing, nil
}

func (s *listingService) ListRecent(ctx context.Context) ([]entity.SellerListing, error) {
	listings, err := s.listingRepo.ListRecent(ctx, recentListingsLimit)
	if err != nil {
		s.log.Errorf("Failed to list recent listings: %v", err)
		return nil, fmt.Errorf("ListingService.ListRecent: %w", err)
	}
	return listings, nil
}

func (s *listingService) UploadPhoto(ctx context.Context, fileName string, data []byte) (string, error) {
	if s.photoStorage == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}
	imageRef, err := s.photoStorage.Upload(ctx, fileName, data)
	if err != nil {
		return "", fmt.Errorf("ListingService.UploadPhoto: %w", err)
	}
	return imageRef, nil
}
