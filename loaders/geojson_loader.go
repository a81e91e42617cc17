package loaders

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
	"github.com/ghribi31/GeneSmart-Dashboard/utils"
)

// regionNameProperty is the feature property holding the governorate name
// used as the join key.
const regionNameProperty = "gov_name_f"

var (
	httpClient = &http.Client{Timeout: 30 * time.Second}
	retryDelay = 5 * time.Second
)

// LoadBoundaries fetches and parses the governorate boundary document. The
// raw bytes are kept alongside the decoded features so the browser receives
// the GeoJSON exactly as published.
func LoadBoundaries(url string) (*models.BoundaryCollection, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrGeoLoad, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: status %d", ErrGeoLoad, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrGeoLoad, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing feature collection: %v", ErrGeoLoad, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: feature collection is empty", ErrGeoLoad)
	}

	var bound orb.Bound
	regions := make([]models.RegionGeometry, 0, len(fc.Features))
	for i, feature := range fc.Features {
		name := utils.NormalizeRegionName(feature.Properties.MustString(regionNameProperty, ""))
		if name == "" {
			return nil, fmt.Errorf("%w: feature %d has no %s property", ErrGeoLoad, i, regionNameProperty)
		}
		if feature.Geometry == nil {
			return nil, fmt.Errorf("%w: feature %q has no geometry", ErrGeoLoad, name)
		}
		regions = append(regions, models.RegionGeometry{Name: name, Feature: feature})
		if i == 0 {
			bound = feature.Geometry.Bound()
		} else {
			bound = bound.Union(feature.Geometry.Bound())
		}
	}

	log.Printf("LoadBoundaries: %d governorate features from %s", len(regions), url)
	return &models.BoundaryCollection{
		Regions:   regions,
		Raw:       body,
		Bound:     bound,
		SourceURL: url,
		FetchedAt: time.Now(),
	}, nil
}

// LoadBoundariesWithRetry attempts the fetch up to maxRetries times with a
// fixed delay between attempts.
func LoadBoundariesWithRetry(url string, maxRetries int) (*models.BoundaryCollection, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		boundaries, err := LoadBoundaries(url)
		if err == nil {
			return boundaries, nil
		}
		lastErr = err
		log.Printf("Failed to load boundary document (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	return nil, fmt.Errorf("failed to load boundary document after %d attempts: %v", maxRetries, lastErr)
}
