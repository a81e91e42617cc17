package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RegionGeometry pairs a governorate name with its boundary feature. The
// name comes from the gov_name_f property and is the join key against the
// metrics dataset.
type RegionGeometry struct {
	Name    string
	Feature *geojson.Feature
}

// BoundaryCollection is the parsed boundary document. Raw keeps the fetched
// bytes so the browser receives the GeoJSON exactly as published, while the
// decoded features drive joins and map-bounds computation server side.
type BoundaryCollection struct {
	Regions   []RegionGeometry
	Raw       json.RawMessage
	Bound     orb.Bound
	SourceURL string
	FetchedAt time.Time
}

// RegionNames returns every governorate name in feature order. This is the
// complete set of regions to render, independent of the metrics data.
func (b *BoundaryCollection) RegionNames() []string {
	names := make([]string, 0, len(b.Regions))
	for _, r := range b.Regions {
		names = append(names, r.Name)
	}
	return names
}
