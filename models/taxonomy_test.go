package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyShape(t *testing.T) {
	cats := MetricCategories()
	assert.Len(t, cats, 5)
	assert.Len(t, AllMetrics(), 12)
}

func TestDefaultMetric(t *testing.T) {
	assert.Equal(t, "extraction adn", DefaultMetric())
	assert.Equal(t, MetricCategories()[0].Metrics[0], DefaultMetric())
	assert.True(t, IsKnownMetric(DefaultMetric()))
}

func TestIsKnownMetric(t *testing.T) {
	for _, m := range AllMetrics() {
		assert.True(t, IsKnownMetric(m), "metric %q", m)
	}
	assert.False(t, IsKnownMetric("chiffre affaires"))
	assert.False(t, IsKnownMetric(""))
	assert.False(t, IsKnownMetric("QPCR"), "metric names are case sensitive")
}
