package loaders

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const governoratesFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"gov_name_f": "Tunis"},
      "geometry": {"type": "Polygon", "coordinates": [[[10.0, 36.0], [10.4, 36.0], [10.4, 37.0], [10.0, 36.0]]]}
    },
    {
      "type": "Feature",
      "properties": {"gov_name_f": "Gabès"},
      "geometry": {"type": "Polygon", "coordinates": [[[9.0, 33.0], [10.2, 33.0], [10.2, 34.1], [9.0, 33.0]]]}
    }
  ]
}`

func TestLoadBoundaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(governoratesFixture))
	}))
	defer srv.Close()

	boundaries, err := LoadBoundaries(srv.URL)
	require.NoError(t, err)
	require.Len(t, boundaries.Regions, 2)
	assert.Equal(t, []string{"Tunis", "Gabès"}, boundaries.RegionNames())
	assert.Equal(t, srv.URL, boundaries.SourceURL)
	assert.JSONEq(t, governoratesFixture, string(boundaries.Raw), "raw document kept byte-faithful")

	// Bound covers both polygons
	assert.Equal(t, 9.0, boundaries.Bound.Min[0])
	assert.Equal(t, 33.0, boundaries.Bound.Min[1])
	assert.Equal(t, 10.4, boundaries.Bound.Max[0])
	assert.Equal(t, 37.0, boundaries.Bound.Max[1])
}

func TestLoadBoundariesErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := LoadBoundaries(srv.URL)
		assert.ErrorIs(t, err, ErrGeoLoad)
	})

	t.Run("not json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not geojson</html>"))
		}))
		defer srv.Close()

		_, err := LoadBoundaries(srv.URL)
		assert.ErrorIs(t, err, ErrGeoLoad)
	})

	t.Run("empty collection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
		}))
		defer srv.Close()

		_, err := LoadBoundaries(srv.URL)
		assert.ErrorIs(t, err, ErrGeoLoad)
	})

	t.Run("feature without name property", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
  "type": "FeatureCollection",
  "features": [{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [10, 36]}}]
}`))
		}))
		defer srv.Close()

		_, err := LoadBoundaries(srv.URL)
		assert.ErrorIs(t, err, ErrGeoLoad)
	})

	t.Run("connection refused", func(t *testing.T) {
		_, err := LoadBoundaries("http://127.0.0.1:1/governorates.geojson")
		assert.ErrorIs(t, err, ErrGeoLoad)
	})
}

func TestLoadBoundariesWithRetry(t *testing.T) {
	oldDelay := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = oldDelay }()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(governoratesFixture))
	}))
	defer srv.Close()

	boundaries, err := LoadBoundariesWithRetry(srv.URL, 3)
	require.NoError(t, err)
	assert.Len(t, boundaries.Regions, 2)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestLoadBoundariesWithRetryGivesUp(t *testing.T) {
	oldDelay := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = oldDelay }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	boundaries, err := LoadBoundariesWithRetry(srv.URL, 2)
	assert.Nil(t, boundaries)
	assert.Error(t, err)
}
