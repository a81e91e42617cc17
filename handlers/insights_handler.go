package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ghribi31/GeneSmart-Dashboard/analytics"
	"github.com/ghribi31/GeneSmart-Dashboard/config"
)

// GetInsights returns the ranking table, the leader/laggard callouts and
// the national mean and total for one metric. Aggregates cover the metrics
// dataset only: regions missing from the boundary document still count,
// boundary regions without data do not.
func GetInsights(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}
	metric := activeMetric(w, r)
	if metric == "" {
		return
	}

	summary, err := analytics.Summarize(st.Dataset, metric)
	if err != nil {
		if errors.Is(err, analytics.ErrNoAverage) {
			log.Printf("GetInsights: %v", err)
			writeJSONError(w, "Dataset is empty", http.StatusUnprocessableEntity)
			return
		}
		log.Printf("GetInsights: %v", err)
		http.Error(w, "Error computing insights", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// GetInsightsChart renders the ranking as a PNG bar chart, bars colored
// with the same ratio ramp as the map.
func GetInsightsChart(w http.ResponseWriter, r *http.Request) {
	st := currentStore(w)
	if st == nil {
		return
	}
	metric := activeMetric(w, r)
	if metric == "" {
		return
	}

	cacheKey := config.GetCacheKey("chart", metric)
	if cached, found := config.ChartCache.Get(cacheKey); found {
		writePNG(w, cached.([]byte))
		return
	}

	summary, err := analytics.Summarize(st.Dataset, metric)
	if err != nil {
		if errors.Is(err, analytics.ErrNoAverage) {
			writeJSONError(w, "Dataset is empty", http.StatusUnprocessableEntity)
			return
		}
		log.Printf("GetInsightsChart: %v", err)
		http.Error(w, "Error computing insights", http.StatusInternalServerError)
		return
	}

	bars := make([]chart.Value, 0, len(summary.Ranked))
	for _, rv := range summary.Ranked {
		ratio := 0.0
		if summary.Mean != 0 {
			ratio = rv.Value / summary.Mean
		}
		fill := drawing.ColorFromHex(strings.TrimPrefix(analytics.RatioColor(ratio), "#"))
		bars = append(bars, chart.Value{
			Label: rv.Region,
			Value: rv.Value,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}

	barChart := chart.BarChart{
		Title:    "Classement des régions : " + metric,
		Width:    1200,
		Height:   500,
		BarWidth: 30,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := barChart.Render(chart.PNG, &buf); err != nil {
		log.Printf("GetInsightsChart: render failed: %v", err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}

	config.ChartCache.Set(cacheKey, buf.Bytes(), gocache.DefaultExpiration)
	writePNG(w, buf.Bytes())
}

func writePNG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Write(body)
}
