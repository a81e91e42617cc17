package analytics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

// Summarize ranks every data region by the given metric, descending, and
// reports the leader, the laggard and the national aggregates. Ties keep the
// grouped row order (stable sort). A single-region dataset is its own leader
// and laggard.
func Summarize(ds *models.Dataset, metric string) (*models.Summary, error) {
	if !ds.HasMetric(metric) {
		return nil, fmt.Errorf("metric %q not present in dataset", metric)
	}
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("%w: dataset has no rows", ErrNoAverage)
	}

	ranked := make([]models.RegionValue, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		ranked = append(ranked, models.RegionValue{Region: row.Region, Value: row.Values[metric]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	values := ds.MetricValues(metric)
	mean := stat.Mean(values, nil)
	total := floats.Sum(values)

	return &models.Summary{
		Metric:      metric,
		Ranked:      ranked,
		Leader:      ranked[0],
		Laggard:     ranked[len(ranked)-1],
		Mean:        mean,
		Total:       total,
		RegionCount: len(ranked),
		Legend: []string{
			"Les couleurs vibrantes (vert foncé) indiquent une performance nettement supérieure à la moyenne.",
			fmt.Sprintf("Le jaune représente la performance moyenne nationale (%.3f).", mean),
			"Les tons rouges indiquent les zones nécessitant une attention (sous la moyenne).",
			"Le gris indique un manque de données pour la région.",
		},
	}, nil
}
