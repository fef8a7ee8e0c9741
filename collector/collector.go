package collector

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/arliss/opensky-stats/opensky"
	"github.com/arliss/opensky-stats/stats"
	"github.com/arliss/opensky-stats/types"
)

const (
	// Span limits on the OpenSky flights endpoints: the per-airport
	// endpoints take two-hour windows, /flights/all only thirty minutes.
	directionWindowSize = 2 * time.Hour
	fallbackWindowSize  = 30 * time.Minute

	// A full anonymous day fetch takes minutes, so finished tables are
	// memoized per airport for a short while.
	defaultCacheTTL = 10 * time.Minute
)

type cachedTable struct {
	table   *types.HourlyTable
	fetched time.Time
}

// Collector runs the previous-day fetch/aggregate pipeline and keeps the
// last run's diagnostics, per-airport result cache and run statistics. All
// fetch state is owned here, so separate collectors cannot cross-talk.
type Collector struct {
	client   *opensky.Client
	loc      *time.Location
	cacheTTL time.Duration
	now      func() time.Time

	mu           sync.Mutex
	cache        map[string]cachedTable
	lastStatuses types.StatusHistogram
	stats        types.CollectionStats
}

func NewCollector(client *opensky.Client, loc *time.Location) *Collector {
	return &Collector{
		client:   client,
		loc:      loc,
		cacheTTL: defaultCacheTTL,
		now:      time.Now,
		cache:    make(map[string]cachedTable),
		stats: types.CollectionStats{
			StartTime: time.Now(),
		},
	}
}

func (c *Collector) GetStats() types.CollectionStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// LastStatuses returns the HTTP status histogram of the most recent fetch
// run, for failure triage. It is overwritten on every run.
func (c *Collector) LastStatuses() types.StatusHistogram {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastStatuses == nil {
		return types.StatusHistogram{}
	}
	return c.lastStatuses.Clone()
}

// HourlyForPreviousDay builds the 24-row arrivals/departures table for the
// previous local calendar day at the given airport. Results are cached per
// airport; a fresh run degrades gracefully on isolated window failures and
// errors only when OpenSky is unreachable outright.
func (c *Collector) HourlyForPreviousDay(ctx context.Context, airport string) (*types.HourlyTable, error) {
	c.mu.Lock()
	if entry, ok := c.cache[airport]; ok && c.now().Sub(entry.fetched) < c.cacheTTL {
		c.stats.CacheHits++
		c.mu.Unlock()
		return entry.table, nil
	}
	c.mu.Unlock()

	begin, end, day := opensky.PreviousDayRange(c.loc, c.now())
	windows := opensky.PlanWindows(begin, end, directionWindowSize)

	statuses := types.StatusHistogram{}

	arrRes, err := c.client.FetchFlights(ctx, opensky.DirectionArrival, airport, windows)
	if arrRes != nil {
		statuses.Merge(arrRes.Statuses)
	}
	if err != nil {
		c.finishRun(statuses, 0, false)
		return nil, fmt.Errorf("fetching arrivals: %w", err)
	}

	depRes, err := c.client.FetchFlights(ctx, opensky.DirectionDeparture, airport, windows)
	if depRes != nil {
		statuses.Merge(depRes.Statuses)
	}
	if err != nil {
		c.finishRun(statuses, 0, false)
		return nil, fmt.Errorf("fetching departures: %w", err)
	}

	arrivals := stats.Dedupe(arrRes.Records)
	departures := stats.Dedupe(depRes.Records)

	fellBack := false
	if len(arrivals) == 0 && len(departures) == 0 {
		// Endpoint-specific data gaps happen; one broad pass over
		// /flights/all filtered locally by airport compensates.
		log.Printf("No direction data for %s on %s, trying broad fetch", airport, day.Format("2006-01-02"))
		fellBack = true
		broad := opensky.PlanWindows(begin, end, fallbackWindowSize)
		allRes, err := c.client.FetchAllFlights(ctx, broad)
		if allRes != nil {
			statuses.Merge(allRes.Statuses)
		}
		if err != nil {
			c.finishRun(statuses, 0, true)
			return nil, fmt.Errorf("broad fetch: %w", err)
		}
		arrivals, departures = splitByAirport(allRes.Records, airport)
		arrivals = stats.Dedupe(arrivals)
		departures = stats.Dedupe(departures)
	}

	table := &types.HourlyTable{
		Airport:  airport,
		Date:     day.Format("2006-01-02"),
		Rows:     stats.HourlyCounts(arrivals, departures, c.loc),
		Statuses: statuses.Clone(),
	}

	c.mu.Lock()
	c.cache[airport] = cachedTable{table: table, fetched: c.now()}
	c.mu.Unlock()
	c.finishRun(statuses, len(arrivals)+len(departures), fellBack)

	return table, nil
}

// SnapshotByCountry fetches the current global snapshot and aggregates
// active flights per origin country, largest first.
func (c *Collector) SnapshotByCountry(ctx context.Context, limit int) ([]types.CountryCount, error) {
	states, _, err := c.client.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	return stats.TopCountries(states, limit), nil
}

// splitByAirport filters broad-fetch records into arrivals at and
// departures from the target airport.
func splitByAirport(records []types.FlightRecord, airport string) ([]types.FlightRecord, []types.FlightRecord) {
	var arrivals, departures []types.FlightRecord
	for _, r := range records {
		if r.EstArrivalAirport == airport {
			arrivals = append(arrivals, r)
		}
		if r.EstDepartureAirport == airport {
			departures = append(departures, r)
		}
	}
	return arrivals, departures
}

func (c *Collector) finishRun(statuses types.StatusHistogram, records int, fellBack bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastStatuses = statuses
	c.stats.LastUpdate = time.Now()
	c.stats.TotalRuns++
	c.stats.ProcessedRecords += int64(records)
	if fellBack {
		c.stats.FallbackRuns++
	}
}
