package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

const (
	googleMapsBaseURL  = "https://maps.googleapis.com/maps/api"
	nearbySearchRadius = 1500 // meters
)

// GoogleClient talks to the Google Maps places API. Every call carries the
// client's bounded timeout so one slow provider cannot stall a report.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleClient(apiKey string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:     apiKey,
		baseURL:    googleMapsBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API host, used by tests.
func (c *GoogleClient) WithBaseURL(base string) *GoogleClient {
	c.baseURL = base
	return c
}

type nearbySearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		Rating   float64  `json:"rating"`
		Vicinity string   `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleClient) NearbyPlaces(ctx context.Context, lat, lng float64, category string) ([]domain.Place, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("radius", fmt.Sprintf("%d", nearbySearchRadius))
	query.Set("type", category)
	query.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/nearbysearch/json?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearby places request returned status %d", resp.StatusCode)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode nearby places response: %w", err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby places API status %s", payload.Status)
	}

	places := make([]domain.Place, 0, len(payload.Results))
	for _, result := range payload.Results {
		placeType := category
		if len(result.Types) > 0 {
			placeType = result.Types[0]
		}
		places = append(places, domain.Place{
			Name:     result.Name,
			Type:     placeType,
			Rating:   result.Rating,
			Distance: haversineKm(lat, lng, result.Geometry.Location.Lat, result.Geometry.Location.Lng),
			Location: domain.MapLocation{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
			Address:  result.Vicinity,
		})
	}
	return places, nil
}

// haversineKm returns the great-circle distance between two points in
// kilometers, rounded to two decimals for display.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}
