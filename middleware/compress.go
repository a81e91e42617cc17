package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressHandler gzips responses when the client advertises support. The
// choropleth payload embeds the full boundary GeoJSON, so this matters.
func CompressHandler(next http.Handler) http.Handler {
	return handlers.CompressHandler(next)
}
