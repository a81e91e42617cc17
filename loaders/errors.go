package loaders

import "errors"

// The two load failures the dashboard distinguishes. Either one aborts
// startup: there is no partial rendering and no fallback data source.
var (
	ErrDataLoad = errors.New("metrics data load failed")
	ErrGeoLoad  = errors.New("boundary document load failed")
)
