package models

import "encoding/json"

// Region render statuses.
const (
	StatusOK      = "ok"      // region has data rows
	StatusMissing = "missing" // region only exists in the boundary document
)

// ChoroplethRegion is one joined row of the map payload: exactly one entry
// per boundary feature. Regions without data carry value 0, the -1 ratio
// sentinel, and a missing status so the frontend can grey them out instead
// of coloring them as "low".
type ChoroplethRegion struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
	Ratio  float64 `json:"ratio"`
	Status string  `json:"status"`
	Color  string  `json:"color"`
	Hover  string  `json:"hover"`
}

// ColorStop is one entry of a Plotly colorscale. It marshals to the
// [position, color] pair Plotly expects.
type ColorStop struct {
	Position float64
	Color    string
}

func (s ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{s.Position, s.Color})
}

func (s *ColorStop) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &s.Position); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &s.Color)
}

// Bounds is the bounding box of the boundary document in lon/lat.
type Bounds struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// ChoroplethResponse is the full map payload for one metric.
type ChoroplethResponse struct {
	Metric       string             `json:"metric"`
	Average      float64            `json:"average"`
	Regions      []ChoroplethRegion `json:"regions"`
	Colorscale   []ColorStop        `json:"colorscale"`
	ZMin         float64            `json:"zmin"`
	ZMax         float64            `json:"zmax"`
	FeatureIDKey string             `json:"feature_id_key"`
	Bounds       Bounds             `json:"bounds"`
	GeoJSON      json.RawMessage    `json:"geojson"`
}
