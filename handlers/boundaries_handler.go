package handlers

import "net/http"

// GetBoundaries serves the boundary FeatureCollection exactly as fetched
// from the upstream source.
func GetBoundaries(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(st.Boundaries.Raw)
}
