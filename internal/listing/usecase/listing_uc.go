package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/adapter/messaging/nats"
	"github.com/zeolike/listing-service/internal/listing/domain"
	"github.com/zeolike/listing-service/internal/mailer"
)

// ListingUpdate carries the fields of a partial update. Nil pointers leave the
// stored value untouched. ID, creator identity and createdAt are not
// updatable.
type ListingUpdate struct {
	Title        *string
	Description  *string
	Price        *float64
	Location     *string
	Coordinates  *domain.Coordinates
	Features     *[]string
	OwnerName    *string
	Phone        *string
	Email        *string
	ImageURLs    *[]string
	Beds         *float64
	Baths        *float64
	Sqft         *float64
	PropertyType *domain.PropertyType
}

type ListingUsecase struct {
	repo      domain.ListingRepository
	favorites domain.FavoriteRepository
	cache     Cache
	publisher Publisher
	mailer    mailer.Mailer
	logger    *zap.Logger
}

func NewListingUsecase(
	repo domain.ListingRepository,
	favorites domain.FavoriteRepository,
	cache Cache,
	publisher Publisher,
	mail mailer.Mailer,
	log *zap.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		repo:      repo,
		favorites: favorites,
		cache:     cache,
		publisher: publisher,
		mailer:    mail,
		logger:    log,
	}
}

// CreateListing stores a new listing for the authenticated user. The creator
// identity comes from the verified token, never from the request body, and new
// listings always start unverified.
func (uc *ListingUsecase) CreateListing(ctx context.Context, userID string, listing *domain.Listing) (*domain.Listing, error) {
	listing.ID = ""
	listing.UserID = userID
	listing.Verified = false

	if err := listing.Validate(); err != nil {
		return nil, err
	}
	if listing.Features == nil {
		listing.Features = []string{}
	}
	if listing.ImageURLs == nil {
		listing.ImageURLs = []string{}
	}

	if err := uc.repo.Create(ctx, listing); err != nil {
		uc.logger.Error("failed to create listing", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	uc.publish(ctx, nats.SubjectListingCreated, listing)
	uc.logger.Info("listing created", zap.String("listing_id", listing.ID), zap.String("user_id", userID))
	return listing, nil
}

func (uc *ListingUsecase) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetListing(ctx, id); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			uc.logger.Warn("listing cache read failed", zap.String("listing_id", id), zap.Error(err))
		}
	}

	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.logger.Warn("listing cache write failed", zap.String("listing_id", id), zap.Error(err))
		}
	}
	return listing, nil
}

func (uc *ListingUsecase) ListListings(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error) {
	return uc.repo.FindByFilter(ctx, filter)
}

// UpdateListing merges the provided fields over the stored record. Only the
// listing's creator or an admin may update it.
func (uc *ListingUsecase) UpdateListing(ctx context.Context, id, requesterID, requesterRole string, update ListingUpdate) (*domain.Listing, error) {
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.UserID != requesterID && requesterRole != domain.RoleAdmin {
		uc.logger.Warn("listing update forbidden",
			zap.String("listing_id", id),
			zap.String("owner_id", listing.UserID),
			zap.String("requester_id", requesterID))
		return nil, domain.ErrForbidden
	}

	applyUpdate(listing, update)
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to update listing", zap.String("listing_id", id), zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx, id)
	uc.publish(ctx, nats.SubjectListingUpdated, listing)
	return listing, nil
}

// DeleteListing removes the listing and cascades its favorites so the
// favorite relation never dangles.
func (uc *ListingUsecase) DeleteListing(ctx context.Context, id, requesterID, requesterRole string) error {
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.UserID != requesterID && requesterRole != domain.RoleAdmin {
		uc.logger.Warn("listing delete forbidden",
			zap.String("listing_id", id),
			zap.String("owner_id", listing.UserID),
			zap.String("requester_id", requesterID))
		return domain.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete listing", zap.String("listing_id", id), zap.Error(err))
		return err
	}

	if err := uc.favorites.RemoveByListing(ctx, id); err != nil {
		// The listing itself is gone; losing the cascade only leaves
		// unreachable favorite rows behind.
		uc.logger.Error("failed to cascade favorites", zap.String("listing_id", id), zap.Error(err))
	}

	uc.invalidate(ctx, id)
	uc.publish(ctx, nats.SubjectListingDeleted, map[string]string{"id": id})
	uc.logger.Info("listing deleted", zap.String("listing_id", id), zap.String("requester_id", requesterID))
	return nil
}

// SetVerified toggles the moderation flag. Admins only.
func (uc *ListingUsecase) SetVerified(ctx context.Context, id string, verified bool, requesterRole string) (*domain.Listing, error) {
	if requesterRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Verified = verified
	if err := uc.repo.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to update verified flag", zap.String("listing_id", id), zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx, id)
	uc.publish(ctx, nats.SubjectListingVerified, listing)

	if uc.mailer != nil && listing.Email != "" {
		if err := uc.mailer.SendListingVerifiedEmail(listing.Email, listing.Title, verified); err != nil {
			uc.logger.Warn("failed to send verification email",
				zap.String("listing_id", id),
				zap.Error(err))
		}
	}

	uc.logger.Info("listing verification changed",
		zap.String("listing_id", id),
		zap.Bool("verified", verified))
	return listing, nil
}

func (uc *ListingUsecase) publish(ctx context.Context, subject string, data interface{}) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, subject, data); err != nil {
		uc.logger.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

func (uc *ListingUsecase) invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteListing(ctx, id); err != nil {
		uc.logger.Warn("listing cache invalidation failed", zap.String("listing_id", id), zap.Error(err))
	}
}

func applyUpdate(listing *domain.Listing, update ListingUpdate) {
	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Price != nil {
		listing.Price = *update.Price
	}
	if update.Location != nil {
		listing.Location = *update.Location
	}
	if update.Coordinates != nil {
		listing.Coordinates = *update.Coordinates
	}
	if update.Features != nil {
		listing.Features = *update.Features
	}
	if update.OwnerName != nil {
		listing.OwnerName = *update.OwnerName
	}
	if update.Phone != nil {
		listing.Phone = *update.Phone
	}
	if update.Email != nil {
		listing.Email = *update.Email
	}
	if update.ImageURLs != nil {
		listing.ImageURLs = *update.ImageURLs
	}
	if update.Beds != nil {
		listing.Beds = *update.Beds
	}
	if update.Baths != nil {
		listing.Baths = *update.Baths
	}
	if update.Sqft != nil {
		listing.Sqft = *update.Sqft
	}
	if update.PropertyType != nil {
		listing.PropertyType = *update.PropertyType
	}
}
