package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

func newPhotoUsecase(storage *MockStorage, listings *MockListingRepository, cache *MockCache) *PhotoUsecase {
	var c Cache
	if cache != nil {
		c = cache
	}
	return NewPhotoUsecase(storage, listings, c, zap.NewNop())
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	listings := new(MockListingRepository)
	cache := new(MockCache)
	uc := newPhotoUsecase(storage, listings, cache)

	stored := validListing()
	stored.ID = "listing-1"
	stored.UserID = "user-1"
	data := []byte("jpegdata")

	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()
	storage.On("Upload", ctx, "house.jpg", data).Return("http://minio/photos/abc.jpg", nil).Once()
	listings.On("Update", ctx, stored).Return(nil).Once()
	cache.On("DeleteListing", ctx, "listing-1").Return(nil).Once()

	url, err := uc.UploadPhoto(ctx, "listing-1", "user-1", domain.RoleUser, "house.jpg", data)

	assert.NoError(t, err)
	assert.Equal(t, "http://minio/photos/abc.jpg", url)
	assert.Contains(t, stored.ImageURLs, url)
	storage.AssertExpectations(t)
	listings.AssertExpectations(t)
}

func TestUploadPhoto_EmptyFile(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	listings := new(MockListingRepository)
	uc := newPhotoUsecase(storage, listings, nil)

	_, err := uc.UploadPhoto(ctx, "listing-1", "user-1", domain.RoleUser, "house.jpg", nil)

	assert.True(t, domain.IsValidation(err))
	listings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUploadPhoto_NotOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	listings := new(MockListingRepository)
	uc := newPhotoUsecase(storage, listings, nil)

	stored := validListing()
	stored.ID = "listing-1"
	stored.UserID = "user-1"

	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()

	_, err := uc.UploadPhoto(ctx, "listing-1", "intruder", domain.RoleUser, "house.jpg", []byte("x"))

	assert.ErrorIs(t, err, domain.ErrForbidden)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadPhoto_AdminAllowed(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	listings := new(MockListingRepository)
	uc := newPhotoUsecase(storage, listings, nil)

	stored := validListing()
	stored.ID = "listing-1"
	stored.UserID = "user-1"
	data := []byte("x")

	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()
	storage.On("Upload", ctx, "house.jpg", data).Return("http://minio/photos/a.jpg", nil).Once()
	listings.On("Update", ctx, stored).Return(nil).Once()

	url, err := uc.UploadPhoto(ctx, "listing-1", "admin-9", domain.RoleAdmin, "house.jpg", data)

	assert.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestUploadPhoto_StorageFailure(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	listings := new(MockListingRepository)
	uc := newPhotoUsecase(storage, listings, nil)

	stored := validListing()
	stored.ID = "listing-1"
	stored.UserID = "user-1"
	data := []byte("x")

	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()
	storage.On("Upload", ctx, "house.jpg", data).Return("", errors.New("bucket unavailable")).Once()

	_, err := uc.UploadPhoto(ctx, "listing-1", "user-1", domain.RoleUser, "house.jpg", data)

	assert.Error(t, err)
	listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
