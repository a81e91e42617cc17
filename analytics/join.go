package analytics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
	"github.com/ghribi31/GeneSmart-Dashboard/utils"
)

// ErrNoAverage is returned when the national average for a metric is
// undefined: the dataset is empty or every value in the column is zero.
// Rendering stops instead of propagating NaN ratios.
var ErrNoAverage = errors.New("national average is undefined")

// MetricAverage computes the national mean of one metric over the dataset.
func MetricAverage(ds *models.Dataset, metric string) (float64, error) {
	values := ds.MetricValues(metric)
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no data rows for %q", ErrNoAverage, metric)
	}
	avg := stat.Mean(values, nil)
	if avg == 0 || math.IsNaN(avg) {
		return 0, fmt.Errorf("%w: mean of %q is %v", ErrNoAverage, metric, avg)
	}
	return avg, nil
}

// BuildJoinedView left-joins the metric values onto the complete region list
// of the boundary document. Every boundary region appears exactly once, in
// feature order; regions without a data row carry value 0, the MissingRatio
// sentinel and a missing status so the renderer greys them out. Data rows
// without a boundary match are silently excluded here but still count in
// the insights aggregates.
func BuildJoinedView(ds *models.Dataset, boundaries *models.BoundaryCollection, metric string) ([]models.ChoroplethRegion, float64, error) {
	if !ds.HasMetric(metric) {
		return nil, 0, fmt.Errorf("metric %q not present in dataset", metric)
	}
	avg, err := MetricAverage(ds, metric)
	if err != nil {
		return nil, 0, err
	}

	byName := make(map[string]models.MetricRow, len(ds.Rows))
	byFolded := make(map[string]models.MetricRow, len(ds.Rows))
	for _, row := range ds.Rows {
		byName[row.Region] = row
		byFolded[utils.FoldRegionName(row.Region)] = row
	}

	joined := make([]models.ChoroplethRegion, 0, len(boundaries.Regions))
	for _, rg := range boundaries.Regions {
		row, ok := byName[rg.Name]
		if !ok {
			// Accent-folded fallback for Gabès/Gabes style mismatches
			// between the sheet and the boundary document.
			row, ok = byFolded[utils.FoldRegionName(rg.Name)]
		}

		region := models.ChoroplethRegion{Region: rg.Name}
		if ok {
			region.Value = row.Values[metric]
			region.Ratio = region.Value / avg
			region.Status = models.StatusOK
		} else {
			region.Value = 0
			region.Ratio = MissingRatio
			region.Status = models.StatusMissing
		}
		region.Color = RatioColor(region.Ratio)
		region.Hover = fmt.Sprintf("%s : %.3f", rg.Name, region.Value)
		joined = append(joined, region)
	}
	return joined, avg, nil
}
