package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/DaliGabriel/yo-compro/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxPhotoUploadBytes = 10 << 20 // 10 MiB

type Handler struct {
	buyerRequests service.BuyerRequestService
	listings      service.ListingService
	matcher       service.MatchService
	log           logger.Logger
}

func NewHandler(
	buyerRequests service.BuyerRequestService,
	listings service.ListingService,
	matcher service.MatchService,
	log logger.Logger,
) *Handler {
	return &Handler{
		buyerRequests: buyerRequests,
		listings:      listings,
		matcher:       matcher,
		log:           log,
	}
}

// stripGrouping removes the comma thousands-separators the form layer adds
// to numeric inputs ("250,000" -> "250000"). Anything else is stored as-is;
// a value that still fails integer coercion later is simply never matched.
func stripGrouping(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// HandleCreateBuyerRequest stores a buyer's search profile.
func (h *Handler) HandleCreateBuyerRequest(w http.ResponseWriter, r *http.Request) {
	var request entity.BuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Warnf("Invalid request body for CreateBuyerRequest: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request.MinYear = stripGrouping(request.MinYear)
	request.MaxYear = stripGrouping(request.MaxYear)
	request.MinPrice = stripGrouping(request.MinPrice)
	request.MaxPrice = stripGrouping(request.MaxPrice)

	id, err := h.buyerRequests.CreateBuyerRequest(r.Context(), &request)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save buyer request")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// HandleCreateListing stores a seller's car ad. The matching pass is a
// separate call to /api/notify made by the form layer after this succeeds.
func (h *Handler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var listing entity.SellerListing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		h.log.Warnf("Invalid request body for CreateListing: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing.Year = stripGrouping(listing.Year)
	listing.Price = stripGrouping(listing.Price)

	created, err := h.listings.CreateListing(r.Context(), &listing)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save listing")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type notifyResponse struct {
	Success          bool `json:"success"`
	Matches          int  `json:"matches"`
	SuccessfulEmails int  `json:"successfulEmails"`
	FailedEmails     int  `json:"failedEmails"`
}

// HandleNotify runs the matching pipeline for the listing in the request
// body. A store failure yields a plain error with no partial summary;
// individual delivery failures only show up in the counts.
func (h *Handler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	var listing entity.SellerListing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		h.log.Warnf("Invalid request body for Notify: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing.Year = stripGrouping(listing.Year)
	listing.Price = stripGrouping(listing.Price)

	summary, err := h.matcher.ProcessListing(r.Context(), &listing)
	if err != nil {
		h.log.Errorf("Matching pipeline failed for %s %s: %v", listing.Brand, listing.Model, err)
		writeError(w, http.StatusInternalServerError, "failed to process notifications")
		return
	}

	writeJSON(w, http.StatusOK, notifyResponse{
		Success:          true,
		Matches:          summary.Matches,
		SuccessfulEmails: summary.SuccessfulEmails,
		FailedEmails:     summary.FailedEmails,
	})
}

func (h *Handler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	listing, err := h.listings.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "listing not found")
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) HandleListRecent(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.ListRecent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list listings")
		return
	}
	if listings == nil {
		listings = []entity.SellerListing{}
	}

	writeJSON(w, http.StatusOK, listings)
}

// HandleUploadPhoto accepts a multipart photo upload and returns the opaque
// storage reference the seller form attaches to its listing.
func (h *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read photo")
		return
	}

	imageRef, err := h.listings.UploadPhoto(r.Context(), header.Filename, data)
	if err != nil {
		h.log.Errorf("Photo upload failed for %s: %v", header.Filename, err)
		writeError(w, http.StatusInternalServerError, "failed to store photo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"imageRef": imageRef})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
