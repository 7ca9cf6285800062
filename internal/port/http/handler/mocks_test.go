package handler

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/zeolike/listing-service/internal/listing/domain"
	"github.com/zeolike/listing-service/internal/listing/usecase"
	"github.com/zeolike/listing-service/internal/port/http/middleware"
)

type MockListingService struct{ mock.Mock }

func (m *MockListingService) CreateListing(ctx context.Context, userID string, listing *domain.Listing) (*domain.Listing, error) {
	args := m.Called(ctx, userID, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingService) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingService) ListListings(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}
func (m *MockListingService) UpdateListing(ctx context.Context, id, requesterID, requesterRole string, update usecase.ListingUpdate) (*domain.Listing, error) {
	args := m.Called(ctx, id, requesterID, requesterRole, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingService) DeleteListing(ctx context.Context, id, requesterID, requesterRole string) error {
	args := m.Called(ctx, id, requesterID, requesterRole)
	return args.Error(0)
}
func (m *MockListingService) SetVerified(ctx context.Context, id string, verified bool, requesterRole string) (*domain.Listing, error) {
	args := m.Called(ctx, id, verified, requesterRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockPhotoService struct{ mock.Mock }

func (m *MockPhotoService) UploadPhoto(ctx context.Context, listingID, requesterID, requesterRole, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, listingID, requesterID, requesterRole, fileName, data)
	return args.String(0), args.Error(1)
}

type MockNeighborhoodService struct{ mock.Mock }

func (m *MockNeighborhoodService) Report(ctx context.Context, listingID string) (*domain.NeighborhoodReport, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NeighborhoodReport), args.Error(1)
}

type MockFavoriteService struct{ mock.Mock }

func (m *MockFavoriteService) AddFavorite(ctx context.Context, userID, listingID string) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}
func (m *MockFavoriteService) RemoveFavorite(ctx context.Context, favoriteID, requesterID string) error {
	args := m.Called(ctx, favoriteID, requesterID)
	return args.Error(0)
}
func (m *MockFavoriteService) RemoveFavoriteByPair(ctx context.Context, listingID, userID, requesterID string) error {
	args := m.Called(ctx, listingID, userID, requesterID)
	return args.Error(0)
}
func (m *MockFavoriteService) ListFavorites(ctx context.Context, userID, requesterID string) ([]*domain.FavoriteWithListing, error) {
	args := m.Called(ctx, userID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FavoriteWithListing), args.Error(1)
}

// asIdentity injects the authenticated identity the same way JWTAuth does.
func asIdentity(userID, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDCtxKey, userID)
			ctx = context.WithValue(ctx, middleware.UserRoleCtxKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
