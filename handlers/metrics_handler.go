package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

// GetMetricTaxonomy returns the fixed sidebar taxonomy and the default
// selection. The taxonomy is hardcoded, not derived from the CSV header.
func GetMetricTaxonomy(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"categories":     models.MetricCategories(),
		"default_metric": models.DefaultMetric(),
	})
}
