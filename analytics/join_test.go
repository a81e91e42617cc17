package analytics

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

func testDataset(rows ...models.MetricRow) *models.Dataset {
	return &models.Dataset{
		Rows:     rows,
		Metrics:  []string{"qpcr"},
		Source:   "test",
		LoadedAt: time.Now(),
	}
}

func row(region string, value float64) models.MetricRow {
	return models.MetricRow{Region: region, Values: map[string]float64{"qpcr": value}}
}

func testBoundaries(names ...string) *models.BoundaryCollection {
	fc := geojson.NewFeatureCollection()
	regions := make([]models.RegionGeometry, 0, len(names))
	for i, name := range names {
		x := float64(i)
		f := geojson.NewFeature(orb.Polygon{{{x, 0}, {x + 1, 0}, {x + 1, 1}, {x, 0}}})
		f.Properties["gov_name_f"] = name
		fc.Append(f)
		regions = append(regions, models.RegionGeometry{Name: name, Feature: f})
	}
	raw, _ := fc.MarshalJSON()
	return &models.BoundaryCollection{
		Regions:   regions,
		Raw:       raw,
		Bound:     orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{float64(len(names)), 1}},
		SourceURL: "test",
		FetchedAt: time.Now(),
	}
}

func TestBuildJoinedViewRatios(t *testing.T) {
	ds := testDataset(row("A", 10), row("B", 20), row("C", 30))
	boundaries := testBoundaries("A", "B", "C", "D")

	joined, avg, err := BuildJoinedView(ds, boundaries, "qpcr")
	require.NoError(t, err)
	assert.Equal(t, 20.0, avg)

	// One row per boundary feature, in feature order
	require.Len(t, joined, 4)
	assert.Equal(t, 0.5, joined[0].Ratio)
	assert.Equal(t, 1.0, joined[1].Ratio)
	assert.Equal(t, 1.5, joined[2].Ratio)

	// D has no data: zero value, exact -1 sentinel, missing status
	d := joined[3]
	assert.Equal(t, "D", d.Region)
	assert.Equal(t, 0.0, d.Value)
	assert.Equal(t, MissingRatio, d.Ratio)
	assert.Equal(t, models.StatusMissing, d.Status)
	assert.Equal(t, ColorMissing, d.Color)
}

func TestBuildJoinedViewRowCountTracksBoundaries(t *testing.T) {
	t.Run("data superset of boundaries", func(t *testing.T) {
		ds := testDataset(row("A", 1), row("B", 2), row("Z", 3))
		joined, _, err := BuildJoinedView(ds, testBoundaries("A", "B"), "qpcr")
		require.NoError(t, err)
		assert.Len(t, joined, 2, "Z has no geometry and is excluded from the map")
	})

	t.Run("data subset of boundaries", func(t *testing.T) {
		ds := testDataset(row("A", 1))
		joined, _, err := BuildJoinedView(ds, testBoundaries("A", "B", "C"), "qpcr")
		require.NoError(t, err)
		assert.Len(t, joined, 3)
	})
}

func TestBuildJoinedViewAccentFallback(t *testing.T) {
	ds := testDataset(row("Gabes", 10), row("Tunis", 30))
	joined, _, err := BuildJoinedView(ds, testBoundaries("Gabès", "Tunis"), "qpcr")
	require.NoError(t, err)

	assert.Equal(t, models.StatusOK, joined[0].Status, "Gabès should match the unaccented sheet row")
	assert.Equal(t, 10.0, joined[0].Value)
}

func TestBuildJoinedViewHoverText(t *testing.T) {
	ds := testDataset(row("A", 1.23456))
	joined, _, err := BuildJoinedView(ds, testBoundaries("A"), "qpcr")
	require.NoError(t, err)
	assert.Equal(t, "A : 1.235", joined[0].Hover, "raw value shown to 3 decimals")
}

func TestMetricAverageUndefined(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		_, err := MetricAverage(testDataset(), "qpcr")
		assert.ErrorIs(t, err, ErrNoAverage)
	})

	t.Run("all-zero column", func(t *testing.T) {
		_, err := MetricAverage(testDataset(row("A", 0), row("B", 0)), "qpcr")
		assert.ErrorIs(t, err, ErrNoAverage)
	})

	t.Run("join surfaces the error", func(t *testing.T) {
		_, _, err := BuildJoinedView(testDataset(), testBoundaries("A"), "qpcr")
		assert.ErrorIs(t, err, ErrNoAverage)
	})
}

func TestBuildJoinedViewUnknownMetric(t *testing.T) {
	ds := testDataset(row("A", 1))
	_, _, err := BuildJoinedView(ds, testBoundaries("A"), "pylori")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAverage)
}
