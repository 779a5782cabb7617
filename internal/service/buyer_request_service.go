package service

import (
	"context"
	"fmt"

	"github.com/DaliGabriel/yo-compro/internal/adapter/nats"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/DaliGabriel/yo-compro/internal/repository"
)

const natsSubjectBuyerRequestCreated = "buyer_request.created"

type BuyerRequestService interface {
	CreateBuyerRequest(ctx context.Context, request *entity.BuyerRequest) (string, error)
}

type buyerRequestService struct {
	buyerRepo    repository.BuyerRequestRepository
	msgPublisher nats.MessagePublisher
	log          logger.Logger
}

func NewBuyerRequestService(
	buyerRepo repository.BuyerRequestRepository,
	msgPublisher nats.MessagePublisher,
	log logger.Logger,
) BuyerRequestService {
	return &buyerRequestService{
		buyerRepo:    buyerRepo,
		msgPublisher: msgPublisher,
		log:          log,
	}
}

// CreateBuyerRequest stores the profile exactly as submitted. Range sanity
// (minYear <= maxYear, minPrice <= maxPrice) is intentionally not checked:
// an inverted range is a valid write that can never match anything.
func (s *buyerRequestService) CreateBuyerRequest(ctx context.Context, request *entity.BuyerRequest) (string, error) {
	id, err := s.buyerRepo.Create(ctx, request)
	if err != nil {
		s.log.Errorf("Failed to create buyer request for %s %s: %v", request.Brand, request.Model, err)
		return "", fmt.Errorf("BuyerRequestService.CreateBuyerRequest: %w", err)
	}

	s.log.Infof("Buyer request %s created: %s %s, contact %s", id, request.Brand, request.Model, request.Contact)

	if s.msgPublisher != nil {
		if errPub := s.msgPublisher.Publish(ctx, natsSubjectBuyerRequestCreated, request); errPub != nil {
			s.log.Warnf("Failed to publish buyer request created event for %s: %v", id, errPub)
		}
	}

	return id, nil
}
