package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ghribi31/GeneSmart-Dashboard/config"
	"github.com/ghribi31/GeneSmart-Dashboard/utils"
)

// RegionInfo describes one governorate from the boundary document and
// whether the metrics dataset has rows for it.
type RegionInfo struct {
	Name    string `json:"name"`
	HasData bool   `json:"has_data"`
}

// GetRegions lists every governorate of the boundary document in feature
// order, with its data availability.
func GetRegions(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}

	regions := make([]RegionInfo, 0, len(st.Boundaries.Regions))
	for _, rg := range st.Boundaries.Regions {
		regions = append(regions, RegionInfo{
			Name:    rg.Name,
			HasData: hasData(st, rg.Name),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"regions": regions,
	})
}

// GetRegionSuggestions returns governorate names matching a search term,
// accent-insensitively.
func GetRegionSuggestions(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}
	searchTerm := r.URL.Query().Get("q")
	if searchTerm == "" {
		http.Error(w, "Search term is required", http.StatusBadRequest)
		return
	}

	cacheKey := config.GetCacheKey("suggest", utils.FoldRegionName(searchTerm))
	if cached, found := config.SuggestCache.Get(cacheKey); found {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached.([]byte))
		return
	}

	folded := utils.FoldRegionName(searchTerm)
	var suggestions []string
	for _, rg := range st.Boundaries.Regions {
		if strings.Contains(utils.FoldRegionName(rg.Name), folded) {
			suggestions = append(suggestions, rg.Name)
		}
		if len(suggestions) == 10 {
			break
		}
	}

	body, _ := json.Marshal(map[string]interface{}{
		"suggestions": suggestions,
	})
	config.SuggestCache.Set(cacheKey, body, gocache.DefaultExpiration)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func hasData(st *Store, region string) bool {
	if _, ok := st.Dataset.Row(region); ok {
		return true
	}
	for _, row := range st.Dataset.Rows {
		if utils.SameRegion(row.Region, region) {
			return true
		}
	}
	return false
}
