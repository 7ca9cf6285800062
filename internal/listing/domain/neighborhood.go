package domain

import "context"

// Place categories requested for the neighborhood report, matching what the
// insights panel renders.
var PlaceCategories = []string{"restaurant", "park", "shopping_mall", "school"}

// Place is a nearby amenity returned by the places provider.
type Place struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Rating   float64     `json:"rating,omitempty"`
	Distance float64     `json:"distance"`
	Location MapLocation `json:"location"`
	Address  string      `json:"address,omitempty"`
}

type WalkScores struct {
	WalkScore    int    `json:"walkScore"`
	TransitScore int    `json:"transitScore"`
	BikeScore    int    `json:"bikeScore"`
	Description  string `json:"description,omitempty"`
}

// NeighborhoodReport aggregates provider results for one listing. Sections
// whose provider call failed are left nil/empty and named in Degraded, so one
// slow or broken provider never takes down the whole report.
type NeighborhoodReport struct {
	ListingID  string             `json:"listingId"`
	Places     map[string][]Place `json:"places"`
	WalkScores *WalkScores        `json:"walkScores,omitempty"`
	Degraded   []string           `json:"degraded,omitempty"`
}

// PlacesProvider finds amenities of one category near a coordinate pair.
type PlacesProvider interface {
	NearbyPlaces(ctx context.Context, lat, lng float64, category string) ([]Place, error)
}

// WalkScoreProvider fetches walkability scores for an address.
type WalkScoreProvider interface {
	Scores(ctx context.Context, lat, lng float64, address string) (*WalkScores, error)
}
