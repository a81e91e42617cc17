package models

// RegionValue is one entry of the ranking table.
type RegionValue struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

// Summary is the insights payload for one metric: the full descending
// ranking plus the leader/laggard callouts and the national aggregates.
// Aggregates are computed over the metrics dataset only, so regions without
// a boundary match still count and boundary-only regions do not.
type Summary struct {
	Metric      string        `json:"metric"`
	Ranked      []RegionValue `json:"ranked"`
	Leader      RegionValue   `json:"leader"`
	Laggard     RegionValue   `json:"laggard"`
	Mean        float64       `json:"mean"`
	Total       float64       `json:"total"`
	RegionCount int           `json:"region_count"`
	Legend      []string      `json:"legend"`
}
