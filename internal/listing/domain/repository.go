package domain

import "context"

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*Listing, error)
}

type FavoriteRepository interface {
	// Add inserts the favorite and returns ErrFavoriteExists when the
	// (user, listing) pair is already present. Uniqueness must be enforced
	// atomically by the store, not by a prior lookup.
	Add(ctx context.Context, favorite *Favorite) error
	FindByID(ctx context.Context, id string) (*Favorite, error)
	FindByUserID(ctx context.Context, userID string) ([]*Favorite, error)
	Remove(ctx context.Context, id string) error
	RemoveByPair(ctx context.Context, userID, listingID string) error
	RemoveByListing(ctx context.Context, listingID string) error
}

type PropertyRepository interface {
	FindAll(ctx context.Context) ([]*Property, error)
	ReplaceAll(ctx context.Context, properties []*Property) error
}
