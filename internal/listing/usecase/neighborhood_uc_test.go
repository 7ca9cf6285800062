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

func TestNeighborhoodReport(t *testing.T) {
	ctx := context.Background()
	listings := new(MockListingRepository)
	places := new(MockPlacesProvider)
	walkScore := new(MockWalkScoreProvider)
	uc := NewNeighborhoodUsecase(listings, places, walkScore, zap.NewNop())

	stored := validListing()
	stored.ID = "listing-1"
	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()

	for _, category := range domain.PlaceCategories {
		places.On("NearbyPlaces", ctx, stored.Coordinates.Latitude, stored.Coordinates.Longitude, category).
			Return([]domain.Place{{Name: category + " spot"}}, nil).Once()
	}
	walkScore.On("Scores", ctx, stored.Coordinates.Latitude, stored.Coordinates.Longitude, stored.Location).
		Return(&domain.WalkScores{WalkScore: 87}, nil).Once()

	report, err := uc.Report(ctx, "listing-1")

	assert.NoError(t, err)
	assert.Equal(t, "listing-1", report.ListingID)
	assert.Len(t, report.Places, len(domain.PlaceCategories))
	assert.Empty(t, report.Degraded)
	assert.Equal(t, 87, report.WalkScores.WalkScore)
	places.AssertExpectations(t)
	walkScore.AssertExpectations(t)
}

func TestNeighborhoodReport_PartialFailure(t *testing.T) {
	ctx := context.Background()
	listings := new(MockListingRepository)
	places := new(MockPlacesProvider)
	walkScore := new(MockWalkScoreProvider)
	uc := NewNeighborhoodUsecase(listings, places, walkScore, zap.NewNop())

	stored := validListing()
	stored.ID = "listing-1"
	listings.On("FindByID", ctx, "listing-1").Return(stored, nil).Once()

	for _, category := range domain.PlaceCategories {
		if category == "park" {
			places.On("NearbyPlaces", ctx, mock.Anything, mock.Anything, category).
				Return(nil, errors.New("upstream timeout")).Once()
			continue
		}
		places.On("NearbyPlaces", ctx, mock.Anything, mock.Anything, category).
			Return([]domain.Place{{Name: category + " spot"}}, nil).Once()
	}
	walkScore.On("Scores", ctx, mock.Anything, mock.Anything, stored.Location).
		Return(nil, errors.New("upstream down")).Once()

	report, err := uc.Report(ctx, "listing-1")

	assert.NoError(t, err)
	assert.NotContains(t, report.Places, "park")
	assert.Len(t, report.Places, len(domain.PlaceCategories)-1)
	assert.Nil(t, report.WalkScores)
	assert.ElementsMatch(t, []string{"park", "walkscore"}, report.Degraded)
}

func TestNeighborhoodReport_ListingNotFound(t *testing.T) {
	ctx := context.Background()
	listings := new(MockListingRepository)
	uc := NewNeighborhoodUsecase(listings, new(MockPlacesProvider), new(MockWalkScoreProvider), zap.NewNop())

	listings.On("FindByID", ctx, "missing").Return(nil, domain.ErrListingNotFound).Once()

	_, err := uc.Report(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
