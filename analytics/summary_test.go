package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

func TestSummarizeRanking(t *testing.T) {
	ds := testDataset(row("A", 10), row("B", 20), row("C", 30))

	s, err := Summarize(ds, "qpcr")
	require.NoError(t, err)

	assert.Equal(t, []models.RegionValue{
		{Region: "C", Value: 30},
		{Region: "B", Value: 20},
		{Region: "A", Value: 10},
	}, s.Ranked)
	assert.Equal(t, "C", s.Leader.Region)
	assert.Equal(t, "A", s.Laggard.Region)
	assert.Equal(t, 20.0, s.Mean)
	assert.Equal(t, 60.0, s.Total)
	assert.Equal(t, 3, s.RegionCount)
}

func TestSummarizeStableTies(t *testing.T) {
	ds := testDataset(row("A", 5), row("B", 5), row("C", 5))

	s, err := Summarize(ds, "qpcr")
	require.NoError(t, err)

	// Ties keep the grouped row order
	assert.Equal(t, "A", s.Ranked[0].Region)
	assert.Equal(t, "B", s.Ranked[1].Region)
	assert.Equal(t, "C", s.Ranked[2].Region)
}

func TestSummarizeSingleRegion(t *testing.T) {
	ds := testDataset(row("Tunis", 7.5))

	s, err := Summarize(ds, "qpcr")
	require.NoError(t, err)

	assert.Equal(t, s.Leader, s.Laggard)
	assert.Equal(t, "Tunis", s.Leader.Region)
	assert.Equal(t, 7.5, s.Mean)
	assert.Equal(t, 7.5, s.Total)
}

func TestSummarizeCountsRegionsWithoutGeometry(t *testing.T) {
	// Insights aggregate over the dataset; the map joins against the
	// boundary document. The two views can disagree on region count.
	ds := testDataset(row("A", 10), row("B", 20), row("Offshore", 60))
	boundaries := testBoundaries("A", "B", "C")

	s, err := Summarize(ds, "qpcr")
	require.NoError(t, err)
	joined, _, err := BuildJoinedView(ds, boundaries, "qpcr")
	require.NoError(t, err)

	assert.Equal(t, 3, s.RegionCount)
	assert.Len(t, joined, 3)
	assert.Equal(t, 30.0, s.Mean, "Offshore still pulls the mean")
	assert.Equal(t, "Offshore", s.Leader.Region)
	for _, region := range joined {
		assert.NotEqual(t, "Offshore", region.Region)
	}
}

func TestSummarizeErrors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		_, err := Summarize(testDataset(), "qpcr")
		assert.ErrorIs(t, err, ErrNoAverage)
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, err := Summarize(testDataset(row("A", 1)), "zymo")
		assert.Error(t, err)
	})
}
