package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/port/http/handler"
)

func newTestRouter() http.Handler {
	log := zap.NewNop()
	listings := handler.NewListingHandler(nil, nil, nil, nil, log)
	favorites := handler.NewFavoriteHandler(nil, nil, log)
	properties := handler.NewPropertyHandler(nil, log)
	return New(listings, favorites, properties, "test-secret", nil, log)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/listings"},
		{http.MethodPut, "/api/listings/listing-1"},
		{http.MethodDelete, "/api/listings/listing-1"},
		{http.MethodPut, "/api/listings/listing-1/verify"},
		{http.MethodPost, "/api/listings/listing-1/photos"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodGet, "/api/favorites/user/user-1"},
		{http.MethodDelete, "/api/favorites/listing-1/user-1"},
		{http.MethodDelete, "/api/favorites/fav-1"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
