package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

const walkScoreBaseURL = "https://api.walkscore.com"

type WalkScoreClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWalkScoreClient(apiKey string, timeout time.Duration) *WalkScoreClient {
	return &WalkScoreClient{
		apiKey:     apiKey,
		baseURL:    walkScoreBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API host, used by tests.
func (c *WalkScoreClient) WithBaseURL(base string) *WalkScoreClient {
	c.baseURL = base
	return c
}

type walkScoreResponse struct {
	Status      int    `json:"status"`
	WalkScore   int    `json:"walkscore"`
	Description string `json:"description"`
	Transit     *struct {
		Score int `json:"score"`
	} `json:"transit"`
	Bike *struct {
		Score int `json:"score"`
	} `json:"bike"`
}

func (c *WalkScoreClient) Scores(ctx context.Context, lat, lng float64, address string) (*domain.WalkScores, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("address", address)
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))
	query.Set("wsapikey", c.apiKey)

	reqURL := fmt.Sprintf("%s/score?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("walkscore request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("walkscore request returned status %d", resp.StatusCode)
	}

	var payload walkScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode walkscore response: %w", err)
	}

	scores := &domain.WalkScores{
		WalkScore:   payload.WalkScore,
		Description: payload.Description,
	}
	if payload.Transit != nil {
		scores.TransitScore = payload.Transit.Score
	}
	if payload.Bike != nil {
		scores.BikeScore = payload.Bike.Score
	}
	return scores, nil
}
