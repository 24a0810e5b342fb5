package nominatim

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/config"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
)

func newTestClient(baseURL string) *client {
	cfg := &config.NominatimConfig{
		BaseURL:        baseURL,
		UserAgent:      "trip-recommender-test",
		RequestTimeout: 2,
	}
	return NewNominatimClient(cfg, zap.NewNop()).(*client)
}

func TestClient_Geocode(t *testing.T) {
	t.Run("successful geocoding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Mumbai", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "trip-recommender-test", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"lat":"19.0785451","lon":"72.878176","display_name":"Mumbai, Maharashtra, India"}]`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		point, err := c.Geocode(context.Background(), "Mumbai")
		require.NoError(t, err)
		assert.InDelta(t, 19.0785451, point.Lat, 1e-9)
		assert.InDelta(t, 72.878176, point.Lon, 1e-9)
	})

	t.Run("empty result means location not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		point, err := c.Geocode(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.Nil(t, point)
		assert.True(t, errors.Is(err, apperrors.ErrLocationNotFound))
	})

	t.Run("server error is not a not-found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		point, err := c.Geocode(context.Background(), "Mumbai")
		require.Error(t, err)
		assert.Nil(t, point)
		assert.False(t, errors.Is(err, apperrors.ErrLocationNotFound))
	})

	t.Run("unparseable coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"lat":"not-a-number","lon":"72.8","display_name":"x"}]`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		point, err := c.Geocode(context.Background(), "Mumbai")
		require.Error(t, err)
		assert.Nil(t, point)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		c := newTestClient("http://localhost:0")

		point, err := c.Geocode(context.Background(), "")
		require.Error(t, err)
		assert.Nil(t, point)
	})
}
