package api

import (
	"context"

	"github.com/gorilla/mux"

	"github.com/arliss/opensky-stats/airlines"
	"github.com/arliss/opensky-stats/types"
)

type Collector interface {
	GetStats() types.CollectionStats
	LastStatuses() types.StatusHistogram
	HourlyForPreviousDay(ctx context.Context, airport string) (*types.HourlyTable, error)
	SnapshotByCountry(ctx context.Context, limit int) ([]types.CountryCount, error)
}

type AirlineSource interface {
	FetchProfiles(ctx context.Context) ([]airlines.Profile, error)
}

// NewRouter creates and configures a new router with all API endpoints
func NewRouter(collector Collector, airlines AirlineSource) *mux.Router {
	r := mux.NewRouter()

	// Apply rate limiting middleware to all routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(RateLimit)

	// Hourly traffic table for the previous local day
	api.HandleFunc("/airports/{icao}/hourly", GetAirportHourly(collector)).Methods("GET")

	// Collector run statistics and last-run diagnostics
	api.HandleFunc("/collector/stats", GetCollectorStats(collector)).Methods("GET")
	api.HandleFunc("/collector/diagnostics", GetDiagnostics(collector)).Methods("GET")

	// Global snapshot aggregated by origin country
	api.HandleFunc("/snapshot/countries", GetSnapshotCountries(collector)).Methods("GET")

	// Airline profile comparison
	api.HandleFunc("/airlines/compare", GetAirlineComparison(airlines)).Methods("GET")

	return r
}
