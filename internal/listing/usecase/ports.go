package usecase

import (
	"context"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

// Cache is the listing read cache. GetListing returns (nil, nil) on a miss.
type Cache interface {
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	SetListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, id string) error
}

// Publisher emits domain events. Publishing is best effort: a failure is
// logged by the caller and never fails the request.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// Storage persists uploaded photo bytes and returns a public URL.
type Storage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
