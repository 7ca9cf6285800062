package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
	"github.com/zeolike/listing-service/internal/listing/usecase"
	"github.com/zeolike/listing-service/internal/platform/metrics"
	"github.com/zeolike/listing-service/internal/port/http/middleware"
)

const maxPhotoUploadBytes = 10 << 20 // 10 MB

// ListingService is what the listing handler needs from the usecase layer.
type ListingService interface {
	CreateListing(ctx context.Context, userID string, listing *domain.Listing) (*domain.Listing, error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error)
	UpdateListing(ctx context.Context, id, requesterID, requesterRole string, update usecase.ListingUpdate) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id, requesterID, requesterRole string) error
	SetVerified(ctx context.Context, id string, verified bool, requesterRole string) (*domain.Listing, error)
}

type PhotoService interface {
	UploadPhoto(ctx context.Context, listingID, requesterID, requesterRole, fileName string, data []byte) (string, error)
}

type NeighborhoodService interface {
	Report(ctx context.Context, listingID string) (*domain.NeighborhoodReport, error)
}

type ListingHandler struct {
	listings      ListingService
	photos        PhotoService
	neighborhoods NeighborhoodService
	metrics       *metrics.Manager
	logger        *zap.Logger
}

func NewListingHandler(
	listings ListingService,
	photos PhotoService,
	neighborhoods NeighborhoodService,
	m *metrics.Manager,
	log *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		listings:      listings,
		photos:        photos,
		neighborhoods: neighborhoods,
		metrics:       m,
		logger:        log,
	}
}

type createListingRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Price        float64             `json:"price"`
	Location     string              `json:"location"`
	Coordinates  domain.Coordinates  `json:"coordinates"`
	Features     []string            `json:"features"`
	Owner        string              `json:"owner"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	ImageURLs    []string            `json:"imageURLs"`
	Beds         float64             `json:"beds"`
	Baths        float64             `json:"baths"`
	Sqft         float64             `json:"sqft"`
	PropertyType domain.PropertyType `json:"propertyType"`
}

func (h *ListingHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing := &domain.Listing{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		Coordinates:  req.Coordinates,
		Features:     req.Features,
		OwnerName:    req.Owner,
		Phone:        req.Phone,
		Email:        req.Email,
		ImageURLs:    req.ImageURLs,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		PropertyType: req.PropertyType,
	}

	created, err := h.listings.CreateListing(r.Context(), userID, listing)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ListingsCreatedTotal.Inc()
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ListingHandler) HandleListListings(w http.ResponseWriter, r *http.Request) {
	filter := domain.Filter{UserID: r.URL.Query().Get("userId")}

	listings, err := h.listings.ListListings(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) HandleGetListingByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listing, err := h.listings.GetListingByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

type updateListingRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	Price        *float64             `json:"price"`
	Location     *string              `json:"location"`
	Coordinates  *domain.Coordinates  `json:"coordinates"`
	Features     *[]string            `json:"features"`
	Owner        *string              `json:"owner"`
	Phone        *string              `json:"phone"`
	Email        *string              `json:"email"`
	ImageURLs    *[]string            `json:"imageURLs"`
	Beds         *float64             `json:"beds"`
	Baths        *float64             `json:"baths"`
	Sqft         *float64             `json:"sqft"`
	PropertyType *domain.PropertyType `json:"propertyType"`
}

func (h *ListingHandler) HandleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := usecase.ListingUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		Coordinates:  req.Coordinates,
		Features:     req.Features,
		OwnerName:    req.Owner,
		Phone:        req.Phone,
		Email:        req.Email,
		ImageURLs:    req.ImageURLs,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		PropertyType: req.PropertyType,
	}

	listing, err := h.listings.UpdateListing(r.Context(), id, userID, role, update)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.listings.DeleteListing(r.Context(), id, userID, role); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "listing deleted"})
}

type verifyListingRequest struct {
	Verified bool `json:"verified"`
}

func (h *ListingHandler) HandleVerifyListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req verifyListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing, err := h.listings.SetVerified(r.Context(), id, req.Verified, role)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if h.metrics != nil && req.Verified {
		h.metrics.ListingsVerifiedTotal.Inc()
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse upload")
		return
	}

	file, fileHeader, err := r.FormFile("photo_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing photo_file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	url, err := h.photos.UploadPhoto(r.Context(), id, userID, role, fileHeader.Filename, data)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *ListingHandler) HandleNeighborhood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := h.neighborhoods.Report(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
