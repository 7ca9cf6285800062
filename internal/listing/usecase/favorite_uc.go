package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/adapter/messaging/nats"
	"github.com/zeolike/listing-service/internal/listing/domain"
)

type FavoriteUsecase struct {
	repo      domain.FavoriteRepository
	listings  domain.ListingRepository
	publisher Publisher
	logger    *zap.Logger
}

func NewFavoriteUsecase(
	repo domain.FavoriteRepository,
	listings domain.ListingRepository,
	publisher Publisher,
	log *zap.Logger,
) *FavoriteUsecase {
	return &FavoriteUsecase{
		repo:      repo,
		listings:  listings,
		publisher: publisher,
		logger:    log,
	}
}

// AddFavorite saves the (user, listing) pair. A duplicate pair comes back as
// domain.ErrFavoriteExists straight from the store's unique index; the listing
// itself is not required to exist.
func (uc *FavoriteUsecase) AddFavorite(ctx context.Context, userID, listingID string) (*domain.Favorite, error) {
	if listingID == "" {
		return nil, domain.NewValidationError("listingId", "listingId is required")
	}

	favorite := &domain.Favorite{
		UserID:    userID,
		ListingID: listingID,
	}
	if err := uc.repo.Add(ctx, favorite); err != nil {
		if !errors.Is(err, domain.ErrFavoriteExists) {
			uc.logger.Error("failed to add favorite",
				zap.String("user_id", userID),
				zap.String("listing_id", listingID),
				zap.Error(err))
		}
		return nil, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, nats.SubjectFavoriteAdded, favorite); err != nil {
			uc.logger.Warn("event publish failed", zap.String("subject", nats.SubjectFavoriteAdded), zap.Error(err))
		}
	}

	uc.logger.Info("favorite added",
		zap.String("favorite_id", favorite.ID),
		zap.String("user_id", userID),
		zap.String("listing_id", listingID))
	return favorite, nil
}

// RemoveFavorite deletes a favorite by its ID. Only the user who created the
// favorite may remove it.
func (uc *FavoriteUsecase) RemoveFavorite(ctx context.Context, favoriteID, requesterID string) error {
	favorite, err := uc.repo.FindByID(ctx, favoriteID)
	if err != nil {
		return err
	}
	if favorite.UserID != requesterID {
		uc.logger.Warn("favorite remove forbidden",
			zap.String("favorite_id", favoriteID),
			zap.String("owner_id", favorite.UserID),
			zap.String("requester_id", requesterID))
		return domain.ErrForbidden
	}
	return uc.repo.Remove(ctx, favoriteID)
}

// RemoveFavoriteByPair deletes a favorite addressed by its (listing, user)
// pair. The requester must be the user named in the pair.
func (uc *FavoriteUsecase) RemoveFavoriteByPair(ctx context.Context, listingID, userID, requesterID string) error {
	if userID != requesterID {
		return domain.ErrForbidden
	}
	return uc.repo.RemoveByPair(ctx, userID, listingID)
}

// ListFavorites returns the user's favorites joined with their listings. Users
// can only read their own list.
func (uc *FavoriteUsecase) ListFavorites(ctx context.Context, userID, requesterID string) ([]*domain.FavoriteWithListing, error) {
	if userID != requesterID {
		return nil, domain.ErrForbidden
	}

	favorites, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to fetch favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]*domain.FavoriteWithListing, 0, len(favorites))
	for _, favorite := range favorites {
		listing, err := uc.listings.FindByID(ctx, favorite.ListingID)
		if err != nil {
			if errors.Is(err, domain.ErrListingNotFound) {
				// Deletes cascade, so this only happens for rows written
				// before the cascade existed. Skip them rather than fail.
				uc.logger.Warn("favorite references missing listing",
					zap.String("favorite_id", favorite.ID),
					zap.String("listing_id", favorite.ListingID))
				continue
			}
			return nil, err
		}
		result = append(result, &domain.FavoriteWithListing{Favorite: favorite, Listing: listing})
	}
	return result, nil
}
