package models

// MetricCategory groups related reagent metrics under a sidebar heading.
type MetricCategory struct {
	Label   string   `json:"label"`
	Metrics []string `json:"metrics"`
}

// metricCategories is the fixed taxonomy shown in the sidebar. It is not
// data driven: the dashboard exposes exactly these columns, grouped by
// laboratory workflow stage.
var metricCategories = []MetricCategory{
	{Label: "🧬 Pré-analytique", Metrics: []string{"extraction adn", "cfdna", "zymo"}},
	{Label: "🧪 Réactifs de base", Metrics: []string{"amorces pcr", "réactifs pcr", "taq polymerase"}},
	{Label: "🔬 PCR routinière", Metrics: []string{"kit pcr", "qpcr", "rt-pcr"}},
	{Label: "🛰️ PCR avancée", Metrics: []string{"pcr digital"}},
	{Label: "🩺 Applications cliniques", Metrics: []string{"hla b51", "pylori"}},
}

// MetricCategories returns the sidebar taxonomy in display order.
func MetricCategories() []MetricCategory {
	return metricCategories
}

// AllMetrics returns every selectable metric in taxonomy order.
func AllMetrics() []string {
	var metrics []string
	for _, cat := range metricCategories {
		metrics = append(metrics, cat.Metrics...)
	}
	return metrics
}

// DefaultMetric is the metric active on first load: the first metric of the
// first category.
func DefaultMetric() string {
	return metricCategories[0].Metrics[0]
}

// IsKnownMetric reports whether name is part of the taxonomy.
func IsKnownMetric(name string) bool {
	for _, cat := range metricCategories {
		for _, m := range cat.Metrics {
			if m == name {
				return true
			}
		}
	}
	return false
}
