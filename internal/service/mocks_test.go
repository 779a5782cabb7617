package service

import (
	"context"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/stretchr/testify/mock"
)

type MockBuyerRequestRepository struct {
	mock.Mock
}

func (m *MockBuyerRequestRepository) Create(ctx context.Context, request *entity.BuyerRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockBuyerRequestRepository) FindByBrandModel(ctx context.Context, brand, model string) ([]entity.BuyerRequest, error) {
	args := m.Called(ctx, brand, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BuyerRequest), args.Error(1)
}

type MockSellerListingRepository struct {
	mock.Mock
}

func (m *MockSellerListingRepository) Create(ctx context.Context, listing *entity.SellerListing) (string, error) {
	args := m.Called(ctx, listing)
	return args.String(0), args.Error(1)
}

func (m *MockSellerListingRepository) GetByID(ctx context.Context, id string) (*entity.SellerListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SellerListing), args.Error(1)
}

func (m *MockSellerListingRepository) ListRecent(ctx context.Context, limit int) ([]entity.SellerListing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SellerListing), args.Error(1)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) Get(ctx context.Context, listingID string) (*entity.SellerListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SellerListing), args.Error(1)
}

func (m *MockListingCache) Set(ctx context.Context, listingID string, listing *entity.SellerListing, ttl time.Duration) error {
	args := m.Called(ctx, listingID, listing, ttl)
	return args.Error(0)
}

func (m *MockListingCache) Delete(ctx context.Context, listingID string) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, bodyHTML string) error {
	args := m.Called(ctx, to, subject, bodyHTML)
	return args.Error(0)
}

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}

type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	args := m.Called(ctx, originalFileName, data)
	return args.String(0), args.Error(1)
}

type NoOpLogger struct{}

func (l *NoOpLogger) Debug(args ...interface{})                   {}
func (l *NoOpLogger) Debugf(template string, args ...interface{}) {}
func (l *NoOpLogger) Info(args ...interface{})                    {}
func (l *NoOpLogger) Infof(template string, args ...interface{})  {}
func (l *NoOpLogger) Warn(args ...interface{})                    {}
func (l *NoOpLogger) Warnf(template string, args ...interface{})  {}
func (l *NoOpLogger) Error(args ...interface{})                   {}
func (l *NoOpLogger) Errorf(template string, args ...interface{}) {}
func (l *NoOpLogger) Fatal(args ...interface{})                   {}
func (l *NoOpLogger) Fatalf(template string, args ...interface{}) {}
func (l *NoOpLogger) With(args ...interface{}) logger.Logger      { return l }
