package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/arliss/opensky-stats/airlines"
	"github.com/arliss/opensky-stats/api"
	"github.com/arliss/opensky-stats/collector"
	"github.com/arliss/opensky-stats/opensky"
)

const (
	defaultAirport = "KRDU"
	defaultTZ      = "America/New_York"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	airport := os.Getenv("AIRPORT_ICAO")
	if airport == "" {
		airport = defaultAirport
	}

	tzName := os.Getenv("LOCAL_TZ")
	if tzName == "" {
		tzName = defaultTZ
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("Invalid LOCAL_TZ %q: %v", tzName, err)
	}

	// Refresh interval in minutes (default 60); a full anonymous day
	// fetch takes minutes, so anything shorter just burns rate limit.
	refreshInterval := 60
	if intervalStr := os.Getenv("UPDATE_INTERVAL"); intervalStr != "" {
		if interval, err := strconv.Atoi(intervalStr); err == nil {
			refreshInterval = interval
		}
	}

	ctx := context.Background()

	// Resolve credentials: OAuth2, then basic, then anonymous
	creds := opensky.ResolveCredentials(ctx, opensky.CredentialConfigFromEnv(), nil)
	log.Printf("OpenSky auth mode: %s", creds.Mode)

	client := opensky.NewClient(opensky.WithCredentials(creds))
	c := collector.NewCollector(client, loc)
	airlineClient := airlines.NewClient(os.Getenv("AVIATION_KEY"))

	router := api.NewRouter(c, airlineClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the API server in a goroutine
	go func() {
		log.Printf("Starting API server on :%s", port)
		if err := http.ListenAndServe(":"+port, router); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	log.Printf("Starting hourly traffic collector for %s (refresh interval: %d minutes)", airport, refreshInterval)

	// Initial collection warms the cache
	if _, err := c.HourlyForPreviousDay(ctx, airport); err != nil {
		log.Printf("Error collecting data: %v", err)
	}

	// Continuous collection
	ticker := time.NewTicker(time.Duration(refreshInterval) * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if _, err := c.HourlyForPreviousDay(ctx, airport); err != nil {
			log.Printf("Error collecting data: %v", err)
		}
	}
}
