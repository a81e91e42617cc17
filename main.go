package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ghribi31/GeneSmart-Dashboard/config"
	"github.com/ghribi31/GeneSmart-Dashboard/handlers"
	"github.com/ghribi31/GeneSmart-Dashboard/loaders"
	"github.com/ghribi31/GeneSmart-Dashboard/middleware"
	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Dataset struct {
		Source   string   `json:"source"`
		Regions  int      `json:"regions"`
		Metrics  []string `json:"metrics,omitempty"`
		LoadedAt string   `json:"loaded_at"`
	} `json:"dataset"`
	Boundaries struct {
		Source    string `json:"source"`
		Features  int    `json:"features"`
		FetchedAt string `json:"fetched_at"`
	} `json:"boundaries"`
	Error string `json:"error,omitempty"`
}

func healthCheck(ds *models.Dataset, boundaries *models.BoundaryCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{Status: "ok"}

		if ds == nil || boundaries == nil {
			response.Status = "error"
			response.Error = "Dataset not initialized"
		} else {
			response.Dataset.Source = ds.Source
			response.Dataset.Regions = len(ds.Rows)
			response.Dataset.Metrics = ds.Metrics
			response.Dataset.LoadedAt = ds.LoadedAt.Format(time.RFC3339)
			response.Boundaries.Source = boundaries.SourceURL
			response.Boundaries.Features = len(boundaries.Regions)
			response.Boundaries.FetchedAt = boundaries.FetchedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("No PORT environment variable found, using default: %s", port)
	}

	config.InitCache()

	// Load phase: both sources must be available before anything is served.
	log.Println("Loading reagent metrics dataset...")
	dataset, err := loaders.LoadMetrics(config.GetDataCSVPath())
	if err != nil {
		log.Fatalf("Failed to load metrics dataset: %v", err)
	}
	log.Printf("Metrics dataset loaded: %d regions, %d metrics", len(dataset.Rows), len(dataset.Metrics))

	log.Println("Loading governorate boundary document...")
	boundaries, err := loaders.LoadBoundariesWithRetry(config.GetGeoJSONURL(), config.GetGeoFetchRetries())
	if err != nil {
		log.Fatalf("Failed to load boundary document: %v", err)
	}
	log.Printf("Boundary document loaded: %d features", len(boundaries.Regions))

	handlers.Bind(dataset, boundaries)

	r := mux.NewRouter()

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"https://genesmart.tn",
			"https://www.genesmart.tn",
		},
		AllowedMethods: []string{
			"GET", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Origin",
			"Access-Control-Request-Method",
			"Access-Control-Request-Headers",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	if config.CORSDebugEnabled() {
		r.Use(middleware.CORSDebugMiddleware)
	}
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	// Dashboard page
	r.HandleFunc("/", handlers.GetDashboard).Methods("GET")

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	api.HandleFunc("/health/detailed", healthCheck(dataset, boundaries)).Methods("GET")
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Dashboard: http://localhost:%s/", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}

	runtime.GC()
}

func registerRoutes(api *mux.Router) {
	// Metric taxonomy
	api.HandleFunc("/metrics", handlers.GetMetricTaxonomy).Methods("GET", "OPTIONS")

	// Map routes
	api.HandleFunc("/choropleth", handlers.GetChoropleth).Methods("GET", "OPTIONS")
	api.HandleFunc("/boundaries", handlers.GetBoundaries).Methods("GET", "OPTIONS")

	// Insights routes
	api.HandleFunc("/insights", handlers.GetInsights).Methods("GET", "OPTIONS")
	api.HandleFunc("/insights/chart", handlers.GetInsightsChart).Methods("GET", "OPTIONS")

	// Region routes
	api.HandleFunc("/regions", handlers.GetRegions).Methods("GET", "OPTIONS")
	api.HandleFunc("/regions/suggest", handlers.GetRegionSuggestions).Methods("GET")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
}
