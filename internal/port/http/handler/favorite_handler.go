package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
	"github.com/zeolike/listing-service/internal/platform/metrics"
	"github.com/zeolike/listing-service/internal/port/http/middleware"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, listingID string) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID, requesterID string) error
	RemoveFavoriteByPair(ctx context.Context, listingID, userID, requesterID string) error
	ListFavorites(ctx context.Context, userID, requesterID string) ([]*domain.FavoriteWithListing, error)
}

type FavoriteHandler struct {
	favorites FavoriteService
	metrics   *metrics.Manager
	logger    *zap.Logger
}

func NewFavoriteHandler(favorites FavoriteService, m *metrics.Manager, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, metrics: m, logger: log}
}

type addFavoriteRequest struct {
	ListingID string `json:"listingId"`
}

func (h *FavoriteHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	favorite, err := h.favorites.AddFavorite(r.Context(), userID, req.ListingID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.FavoritesAddedTotal.Inc()
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	requesterID, _, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	favorites, err := h.favorites.ListFavorites(r.Context(), userID, requesterID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID := chi.URLParam(r, "id")
	requesterID, _, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.favorites.RemoveFavorite(r.Context(), favoriteID, requesterID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "favorite removed"})
}

func (h *FavoriteHandler) HandleRemoveFavoriteByPair(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	userID := chi.URLParam(r, "userId")
	requesterID, _, ok := middleware.Identity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.favorites.RemoveFavoriteByPair(r.Context(), listingID, userID, requesterID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "favorite removed"})
}
