package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

type NeighborhoodUsecase struct {
	listings  domain.ListingRepository
	places    domain.PlacesProvider
	walkScore domain.WalkScoreProvider
	logger    *zap.Logger
}

func NewNeighborhoodUsecase(
	listings domain.ListingRepository,
	places domain.PlacesProvider,
	walkScore domain.WalkScoreProvider,
	log *zap.Logger,
) *NeighborhoodUsecase {
	return &NeighborhoodUsecase{
		listings:  listings,
		places:    places,
		walkScore: walkScore,
		logger:    log,
	}
}

// Report fans out to the place and walk-score providers concurrently and
// merges whatever came back. A failing provider only degrades its own section
// of the report; the providers' own timeouts bound how long any one call can
// hold the report up.
func (uc *NeighborhoodUsecase) Report(ctx context.Context, listingID string) (*domain.NeighborhoodReport, error) {
	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	lat := listing.Coordinates.Latitude
	lng := listing.Coordinates.Longitude

	report := &domain.NeighborhoodReport{
		ListingID: listingID,
		Places:    make(map[string][]domain.Place, len(domain.PlaceCategories)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, category := range domain.PlaceCategories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			places, err := uc.places.NearbyPlaces(ctx, lat, lng, category)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.logger.Warn("places lookup failed",
					zap.String("listing_id", listingID),
					zap.String("category", category),
					zap.Error(err))
				report.Degraded = append(report.Degraded, category)
				return
			}
			report.Places[category] = places
		}(category)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		scores, err := uc.walkScore.Scores(ctx, lat, lng, listing.Location)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			uc.logger.Warn("walk score lookup failed",
				zap.String("listing_id", listingID),
				zap.Error(err))
			report.Degraded = append(report.Degraded, "walkscore")
			return
		}
		report.WalkScores = scores
	}()

	wg.Wait()
	return report, nil
}
