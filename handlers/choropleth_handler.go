package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ghribi31/GeneSmart-Dashboard/analytics"
	"github.com/ghribi31/GeneSmart-Dashboard/config"
	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

// GetChoropleth returns the full map payload for one metric: one joined row
// per boundary feature, the fixed colorscale, the raw GeoJSON and the map
// bounds. Payloads are memoized per metric, so re-selecting the active
// metric returns a byte-identical response.
func GetChoropleth(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}
	metric := activeMetric(w, r)
	if metric == "" {
		return
	}

	cacheKey := config.GetCacheKey("choropleth", metric)
	if cached, found := config.ChoroplethCache.Get(cacheKey); found {
		writeJSONBytes(w, cached.([]byte))
		return
	}

	log.Printf("GetChoropleth: building map payload for metric %q", metric)
	joined, avg, err := analytics.BuildJoinedView(st.Dataset, st.Boundaries, metric)
	if err != nil {
		if errors.Is(err, analytics.ErrNoAverage) {
			log.Printf("GetChoropleth: %v", err)
			writeJSONError(w, "National average is undefined for this metric", http.StatusUnprocessableEntity)
			return
		}
		log.Printf("GetChoropleth: join failed: %v", err)
		http.Error(w, "Error building map payload", http.StatusInternalServerError)
		return
	}

	bound := st.Boundaries.Bound
	response := models.ChoroplethResponse{
		Metric:       metric,
		Average:      avg,
		Regions:      joined,
		Colorscale:   analytics.Colorscale(),
		ZMin:         analytics.RatioMin,
		ZMax:         analytics.RatioMax,
		FeatureIDKey: "properties.gov_name_f",
		Bounds: models.Bounds{
			MinLon: bound.Min[0],
			MinLat: bound.Min[1],
			MaxLon: bound.Max[0],
			MaxLat: bound.Max[1],
		},
		GeoJSON: st.Boundaries.Raw,
	}

	body, err := json.Marshal(response)
	if err != nil {
		log.Printf("GetChoropleth: error encoding response: %v", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	config.ChoroplethCache.Set(cacheKey, body, gocache.DefaultExpiration)
	writeJSONBytes(w, body)
}

func writeJSONBytes(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
		"code":  status,
	})
}
