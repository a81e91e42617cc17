package middleware

import (
	"log"
	"net/http"
)

// CORSDebugMiddleware logs origin and header details of every request.
// Only mounted when CORS_DEBUG=true; too chatty for normal operation.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[CORS Debug] Request from Origin: %s", r.Header.Get("Origin"))
		log.Printf("[CORS Debug] Request Method: %s", r.Method)

		// For preflight requests
		if r.Method == "OPTIONS" {
			log.Printf("[CORS Debug] Handling preflight request")
			w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Origin")
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)

		log.Printf("[CORS Debug] Response Headers: %v", w.Header())
	})
}
