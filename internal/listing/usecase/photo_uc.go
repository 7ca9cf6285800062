package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

type PhotoUsecase struct {
	storage  Storage
	listings domain.ListingRepository
	cache    Cache
	logger   *zap.Logger
}

func NewPhotoUsecase(storage Storage, listings domain.ListingRepository, cache Cache, log *zap.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		storage:  storage,
		listings: listings,
		cache:    cache,
		logger:   log,
	}
}

// UploadPhoto stores the photo and appends its URL to the listing. Only the
// listing's creator or an admin may attach photos.
func (uc *PhotoUsecase) UploadPhoto(ctx context.Context, listingID, requesterID, requesterRole, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.NewValidationError("photo_file", "uploaded file is empty")
	}

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		return "", err
	}
	if listing.UserID != requesterID && requesterRole != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("photo upload failed", zap.String("listing_id", listingID), zap.Error(err))
		return "", err
	}

	listing.ImageURLs = append(listing.ImageURLs, url)
	if err := uc.listings.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to attach photo URL", zap.String("listing_id", listingID), zap.Error(err))
		return "", err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteListing(ctx, listingID); err != nil {
			uc.logger.Warn("listing cache invalidation failed", zap.String("listing_id", listingID), zap.Error(err))
		}
	}
	return url, nil
}
