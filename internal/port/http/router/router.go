package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/platform/metrics"
	"github.com/zeolike/listing-service/internal/port/http/handler"
	"github.com/zeolike/listing-service/internal/port/http/middleware"
)

// New wires the public and authenticated routes. Reads on listings stay
// public; everything that writes goes through JWTAuth.
func New(
	listings *handler.ListingHandler,
	favorites *handler.FavoriteHandler,
	properties *handler.PropertyHandler,
	jwtSecret string,
	m *metrics.Manager,
	log *zap.Logger,
) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestLogger(log))
	if m != nil {
		mux.Use(middleware.Metrics(m.RequestLatency, m.APIErrorsTotal))
	}

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.Get("/api/listings", listings.HandleListListings)
	mux.Get("/api/listings/{id}", listings.HandleGetListingByID)
	mux.Get("/api/listings/{id}/neighborhood", listings.HandleNeighborhood)
	mux.Get("/api/properties", properties.HandleListProperties)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret, log))

		r.Post("/api/listings", listings.HandleCreateListing)
		r.Put("/api/listings/{id}", listings.HandleUpdateListing)
		r.Delete("/api/listings/{id}", listings.HandleDeleteListing)
		r.Put("/api/listings/{id}/verify", listings.HandleVerifyListing)
		r.Post("/api/listings/{id}/photos", listings.HandleUploadPhoto)

		r.Post("/api/favorites", favorites.HandleAddFavorite)
		r.Get("/api/favorites/user/{userId}", favorites.HandleListFavorites)
		r.Delete("/api/favorites/{listingId}/{userId}", favorites.HandleRemoveFavoriteByPair)
		r.Delete("/api/favorites/{id}", favorites.HandleRemoveFavorite)
	})

	return mux
}
