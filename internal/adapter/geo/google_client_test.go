package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "restaurant", query.Get("type"))
		assert.Equal(t, "1500", query.Get("radius"))
		assert.Equal(t, "test-key", query.Get("key"))
		assert.NotEmpty(t, query.Get("location"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"name": "Cafe Corner",
					"types": ["cafe", "restaurant"],
					"rating": 4.2,
					"vicinity": "12 Main St",
					"geometry": {"location": {"lat": 21.342, "lng": 74.883}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewGoogleClient("test-key", 2*time.Second).WithBaseURL(server.URL)

	places, err := client.NearbyPlaces(context.Background(), 21.341, 74.882, "restaurant")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Cafe Corner", places[0].Name)
	assert.Equal(t, "cafe", places[0].Type)
	assert.Equal(t, 4.2, places[0].Rating)
	assert.Equal(t, "12 Main St", places[0].Address)
	assert.Equal(t, 21.342, places[0].Location.Lat)
	assert.Greater(t, places[0].Distance, 0.0)
}

func TestNearbyPlaces_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewGoogleClient("test-key", 2*time.Second).WithBaseURL(server.URL)

	places, err := client.NearbyPlaces(context.Background(), 21.341, 74.882, "park")

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestNearbyPlaces_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	}))
	defer server.Close()

	client := NewGoogleClient("bad-key", 2*time.Second).WithBaseURL(server.URL)

	_, err := client.NearbyPlaces(context.Background(), 21.341, 74.882, "school")

	assert.ErrorContains(t, err, "REQUEST_DENIED")
}

func TestNearbyPlaces_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewGoogleClient("test-key", 2*time.Second).WithBaseURL(server.URL)

	_, err := client.NearbyPlaces(context.Background(), 21.341, 74.882, "school")

	assert.ErrorContains(t, err, "502")
}

func TestNearbyPlaces_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewGoogleClient("test-key", 20*time.Millisecond).WithBaseURL(server.URL)

	_, err := client.NearbyPlaces(context.Background(), 21.341, 74.882, "restaurant")

	assert.Error(t, err)
}

func TestHaversineKm(t *testing.T) {
	// Same point.
	assert.Equal(t, 0.0, haversineKm(21.341, 74.882, 21.341, 74.882))

	// Roughly one degree of latitude is ~111km.
	d := haversineKm(21.0, 74.882, 22.0, 74.882)
	assert.InDelta(t, 111.2, d, 1.0)
}
