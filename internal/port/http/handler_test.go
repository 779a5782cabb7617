package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBuyerRequestService struct {
	mock.Mock
}

func (m *mockBuyerRequestService) CreateBuyerRequest(ctx context.Context, request *entity.BuyerRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type mockListingService struct {
	mock.Mock
}

func (m *mockListingService) CreateListing(ctx context.Context, listing *entity.SellerListing) (*entity.SellerListing, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SellerListing), args.Error(1)
}

func (m *mockListingService) GetListing(ctx context.Context, id string) (*entity.SellerListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SellerListing), args.Error(1)
}

func (m *mockListingService) ListRecent(ctx context.Context) ([]entity.SellerListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SellerListing), args.Error(1)
}

func (m *mockListingService) UploadPhoto(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

type mockMatchService struct {
	mock.Mock
}

func (m *mockMatchService) FindCandidates(ctx context.Context, listing *entity.SellerListing) ([]entity.BuyerRequest, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BuyerRequest), args.Error(1)
}

func (m *mockMatchService) ProcessListing(ctx context.Context, listing *entity.SellerListing) (*entity.NotificationSummary, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationSummary), args.Error(1)
}

type noopLogger struct{}

func (l *noopLogger) Debug(args ...interface{})                   {}
func (l *noopLogger) Debugf(template string, args ...interface{}) {}
func (l *noopLogger) Info(args ...interface{})                    {}
func (l *noopLogger) Infof(template string, args ...interface{})  {}
func (l *noopLogger) Warn(args ...interface{})                    {}
func (l *noopLogger) Warnf(template string, args ...interface{})  {}
func (l *noopLogger) Error(args ...interface{})                   {}
func (l *noopLogger) Errorf(template string, args ...interface{}) {}
func (l *noopLogger) Fatal(args ...interface{})                   {}
func (l *noopLogger) Fatalf(template string, args ...interface{}) {}
func (l *noopLogger) With(args ...interface{}) logger.Logger      { return l }

func newTestRouter(buyers *mockBuyerRequestService, listings *mockListingService, matcher *mockMatchService) *chi.Mux {
	h := NewHandler(buyers, listings, matcher, &noopLogger{})

	r := chi.NewRouter()
	r.Get("/health", h.HandleHealth)
	r.Post("/api/buyer-requests", h.HandleCreateBuyerRequest)
	r.Post("/api/listings", h.HandleCreateListing)
	r.Post("/api/notify", h.HandleNotify)
	r.Get("/api/listings", h.HandleListRecent)
	r.Get("/api/listings/{id}", h.HandleGetListing)
	r.Post("/api/photos", h.HandleUploadPhoto)
	return r
}

func TestHandleCreateBuyerRequest_StripsGrouping(t *testing.T) {
	buyers := new(mockBuyerRequestService)
	buyers.On("CreateBuyerRequest", mock.Anything, mock.MatchedBy(func(req *entity.BuyerRequest) bool {
		return req.MinPrice == "150000" && req.MaxPrice == "250000" &&
			req.MinYear == "2015" && req.MaxYear == "2020"
	})).Return("req123", nil)

	body := `{"brand":"Honda","model":"Civic","minYear":"2015","maxYear":"2020","minPrice":"150,000","maxPrice":"250,000","contact":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/buyer-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(buyers, new(mockListingService), new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req123", resp["id"])
	buyers.AssertExpectations(t)
}

func TestHandleCreateBuyerRequest_InvalidBody(t *testing.T) {
	buyers := new(mockBuyerRequestService)

	req := httptest.NewRequest(http.MethodPost, "/api/buyer-requests", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newTestRouter(buyers, new(mockListingService), new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	buyers.AssertNotCalled(t, "CreateBuyerRequest", mock.Anything, mock.Anything)
}

func TestHandleCreateListing_StripsGrouping(t *testing.T) {
	listings := new(mockListingService)
	listings.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *entity.SellerListing) bool {
		return l.Price == "200000" && l.Year == "2018"
	})).Return(&entity.SellerListing{ID: "lst123", Brand: "Honda", Model: "Civic", Year: "2018", Price: "200000"}, nil)

	body := `{"brand":"Honda","model":"Civic","year":"2018","price":"200,000","contact":"b@y.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), listings, new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	listings.AssertExpectations(t)
}

func TestHandleNotify_ReturnsSummary(t *testing.T) {
	matcher := new(mockMatchService)
	matcher.On("ProcessListing", mock.Anything, mock.Anything).
		Return(&entity.NotificationSummary{Matches: 2, SuccessfulEmails: 1, FailedEmails: 1}, nil)

	body := `{"brand":"Honda","model":"Civic","year":"2018","price":"200000","contact":"b@y.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), new(mockListingService), matcher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp notifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Matches)
	assert.Equal(t, 1, resp.SuccessfulEmails)
	assert.Equal(t, 1, resp.FailedEmails)
}

func TestHandleNotify_StoreFailureIsPlainError(t *testing.T) {
	matcher := new(mockMatchService)
	matcher.On("ProcessListing", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	body := `{"brand":"Honda","model":"Civic","year":"2018","price":"200000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), new(mockListingService), matcher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestHandleGetListing(t *testing.T) {
	listings := new(mockListingService)
	listings.On("GetListing", mock.Anything, "lst123").
		Return(&entity.SellerListing{ID: "lst123", Brand: "Honda"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/listings/lst123", nil)
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), listings, new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entity.SellerListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Honda", resp.Brand)
}

func TestHandleGetListing_NotFound(t *testing.T) {
	listings := new(mockListingService)
	listings.On("GetListing", mock.Anything, "missing").
		Return(nil, errors.New("not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/listings/missing", nil)
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), listings, new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListRecent_EmptyStoreIsEmptyArray(t *testing.T) {
	listings := new(mockListingService)
	listings.On("ListRecent", mock.Anything).Return([]entity.SellerListing{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), listings, new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleUploadPhoto(t *testing.T) {
	listings := new(mockListingService)
	listings.On("UploadPhoto", mock.Anything, "car.jpg", []byte("fakejpeg")).
		Return("photos/uuid.jpg", nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "car.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fakejpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), listings, new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "photos/uuid.jpg", resp["imageRef"])
}

func TestHandleUploadPhoto_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "car"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), new(mockListingService), new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	newTestRouter(new(mockBuyerRequestService), new(mockListingService), new(mockMatchService)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
