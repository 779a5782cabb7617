package service

import (
	"context"
	"fmt"

	"github.com/DaliGabriel/yo-compro/internal/adapter/nats"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/DaliGabriel/yo-compro/internal/repository"
)

const natsSubjectMatchCompleted = "listing.match_completed"

// MatchService runs the matching pipeline for a just-submitted listing:
// fetch candidates from the store, notify every match, aggregate the
// outcomes. Each invocation is stateless and independent; submitting the
// same listing twice notifies everyone twice.
type MatchService interface {
	FindCandidates(ctx context.Context, listing *entity.SellerListing) ([]entity.BuyerRequest, error)
	ProcessListing(ctx context.Context, listing *entity.SellerListing) (*entity.NotificationSummary, error)
}

type matchService struct {
	buyerRepo    repository.BuyerRequestRepository
	notifier     NotifierService
	msgPublisher nats.MessagePublisher
	log          logger.Logger
}

func NewMatchService(
	buyerRepo repository.BuyerRequestRepository,
	notifier NotifierService,
	msgPublisher nats.MessagePublisher,
	log logger.Logger,
) MatchService {
	return &matchService{
		buyerRepo:    buyerRepo,
		notifier:     notifier,
		msgPublisher: msgPublisher,
		log:          log,
	}
}

// FindCandidates narrows by brand+model equality in the store, then refines
// year and price ranges in memory. Result order is the store's natural
// return order. Read-only.
func (s *matchService) FindCandidates(ctx context.Context, listing *entity.SellerListing) ([]entity.BuyerRequest, error) {
	candidates, err := s.buyerRepo.FindByBrandModel(ctx, listing.Brand, listing.Model)
	if err != nil {
		s.log.Errorf("Failed to query buyer requests for brand=%s model=%s: %v", listing.Brand, listing.Model, err)
		return nil, fmt.Errorf("MatchService.FindCandidates: %w", err)
	}

	matches := make([]entity.BuyerRequest, 0, len(candidates))
	for _, candidate := range candidates {
		if MatchesRequest(listing, &candidate) {
			matches = append(matches, candidate)
		}
	}
	return matches, nil
}

// ProcessListing is the single externally invocable pipeline operation. A
// store failure during the fetch step aborts the whole invocation; delivery
// failures are absorbed into the summary counts.
func (s *matchService) ProcessListing(ctx context.Context, listing *entity.SellerListing) (*entity.NotificationSummary, error) {
	matches, err := s.FindCandidates(ctx, listing)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Matching pass for listing %s (%s %s): %d matching buyer request(s)",
		listing.ID, listing.Brand, listing.Model, len(matches))

	outcomes := s.notifier.NotifyAll(ctx, listing, matches)

	summary := &entity.NotificationSummary{Matches: len(matches)}
	for _, outcome := range outcomes {
		if outcome.Delivered {
			summary.SuccessfulEmails++
		} else {
			summary.FailedEmails++
		}
	}

	if s.msgPublisher != nil {
		event := struct {
			Listing *entity.SellerListing       `json:"listing"`
			Summary *entity.NotificationSummary `json:"summary"`
		}{listing, summary}
		if errPub := s.msgPublisher.Publish(ctx, natsSubjectMatchCompleted, event); errPub != nil {
			s.log.Warnf("Failed to publish match completed event for listing %s: %v", listing.ID, errPub)
		}
	}

	return summary, nil
}
