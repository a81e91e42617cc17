package models

import "time"

// MetricRow is one aggregated record per region: the normalized region name
// plus one summed value per metric column from the source CSV.
type MetricRow struct {
	Region string             `json:"region"`
	Values map[string]float64 `json:"values"`
}

// Dataset holds the grouped metric rows loaded at startup. Built once, then
// read-only for the lifetime of the process.
type Dataset struct {
	Rows     []MetricRow `json:"rows"`
	Metrics  []string    `json:"metrics"`
	Source   string      `json:"source"`
	LoadedAt time.Time   `json:"loaded_at"`
}

// HasMetric reports whether the CSV header contained the given metric column.
func (d *Dataset) HasMetric(name string) bool {
	for _, m := range d.Metrics {
		if m == name {
			return true
		}
	}
	return false
}

// Row returns the aggregated row for a region, if one exists.
func (d *Dataset) Row(region string) (MetricRow, bool) {
	for _, row := range d.Rows {
		if row.Region == region {
			return row, true
		}
	}
	return MetricRow{}, false
}

// MetricValues returns the values of one metric column in row order.
func (d *Dataset) MetricValues(metric string) []float64 {
	values := make([]float64, 0, len(d.Rows))
	for _, row := range d.Rows {
		values = append(values, row.Values[metric])
	}
	return values
}
