package handlers

import (
	"log"
	"net/http"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

// Store is the immutable dataset context built during the startup load
// phase. Handlers only ever read from it; the active metric travels in the
// request, so there is no mutable selection state server side.
type Store struct {
	Dataset    *models.Dataset
	Boundaries *models.BoundaryCollection
}

var store *Store

// Bind installs the loaded dataset and boundary document. Called once from
// main after both loads succeed.
func Bind(ds *models.Dataset, boundaries *models.BoundaryCollection) {
	store = &Store{Dataset: ds, Boundaries: boundaries}
}

// currentStore guards against handlers running before Bind. Mirrors the
// nil-connection checks at the top of every handler.
func currentStore(w http.ResponseWriter) *Store {
	if store == nil || store.Dataset == nil || store.Boundaries == nil {
		log.Printf("Handler called before dataset was bound")
		http.Error(w, "Dataset not initialized", http.StatusInternalServerError)
		return nil
	}
	return store
}

// activeMetric resolves the metric query parameter, falling back to the
// default selection. Returns "" after writing an error when the metric is
// not part of the taxonomy.
func activeMetric(w http.ResponseWriter, r *http.Request) string {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = models.DefaultMetric()
	}
	if !models.IsKnownMetric(metric) {
		log.Printf("Unknown metric requested: %q", metric)
		http.Error(w, "Unknown metric", http.StatusBadRequest)
		return ""
	}
	return metric
}
