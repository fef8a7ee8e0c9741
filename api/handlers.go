package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/arliss/opensky-stats/airlines"
)

// GetAirportHourly serves the previous-day 24-row hourly table for one
// airport. ICAO codes are four letters; anything else is rejected before a
// fetch run is spent on it.
func GetAirportHourly(collector Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		icao := strings.ToUpper(vars["icao"])

		if len(icao) != 4 || strings.IndexFunc(icao, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
			http.Error(w, "Invalid ICAO airport code", http.StatusBadRequest)
			return
		}

		table, err := collector.HourlyForPreviousDay(r.Context(), icao)
		if err != nil {
			log.Printf("Error building hourly table for %s: %v", icao, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": "Upstream flight data unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(table)
	}
}

func GetCollectorStats(collector Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(collector.GetStats())
	}
}

// GetDiagnostics exposes the last run's HTTP status distribution.
func GetDiagnostics(collector Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DiagnosticsResponse{
			StatusHistogram: collector.LastStatuses(),
		})
	}
}

// GetSnapshotCountries serves the current global snapshot aggregated by
// origin country. The limit defaults to the top 30, as the dashboard shows.
func GetSnapshotCountries(collector Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 30
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		counts, err := collector.SnapshotByCountry(r.Context(), limit)
		if err != nil {
			log.Printf("Error fetching snapshot: %v", err)
			http.Error(w, "Upstream snapshot unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SnapshotCountriesResponse{Countries: counts})
	}
}

// GetAirlineComparison serves one airline feature across carriers, sorted
// ascending, optionally filtered by country of origin.
func GetAirlineComparison(source AirlineSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feature := r.URL.Query().Get("feature")
		if feature == "" {
			feature = "fleet_size"
		}
		country := r.URL.Query().Get("country")

		profiles, err := source.FetchProfiles(r.Context())
		if err != nil {
			log.Printf("Error fetching airline profiles: %v", err)
			http.Error(w, "Upstream airline data unavailable", http.StatusBadGateway)
			return
		}

		values, err := airlines.Compare(profiles, feature, country)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ComparisonResponse{
			Feature:   feature,
			Country:   country,
			Airlines:  values,
			Countries: airlines.Countries(profiles),
		})
	}
}
