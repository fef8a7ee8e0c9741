package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/arliss/opensky-stats/types"
)

// Direction selects the OpenSky flights endpoint to query.
type Direction string

const (
	DirectionArrival   Direction = "arrival"
	DirectionDeparture Direction = "departure"
)

// FetchResult is everything one windowed fetch run produced: the raw
// (non-deduplicated) records plus the run's HTTP status histogram and the
// number of transport-level failures. The histogram lives here rather than
// in shared state so concurrent runs cannot cross-talk.
type FetchResult struct {
	Records         []types.FlightRecord
	Statuses        types.StatusHistogram
	TransportErrors int
}

// Empty reports whether the run collected no records at all.
func (r *FetchResult) Empty() bool {
	return len(r.Records) == 0
}

// FetchFlights retrieves arrivals or departures for one airport across the
// given time windows, one request per window with retry and pacing. Window
// failures are best-effort skips; an error is returned only when the
// context is cancelled or no window got any HTTP response at all.
func (c *Client) FetchFlights(ctx context.Context, direction Direction, airport string, windows []TimeWindow) (*FetchResult, error) {
	result, err := c.fetchWindows(ctx, "/flights/"+string(direction), airport, windows)
	if err != nil {
		return result, err
	}
	if result.Empty() {
		logEmptyDiagnostic(string(direction), airport, result.Statuses)
	}
	return result, nil
}

// FetchAllFlights retrieves all flights in the given windows without an
// airport filter. The /flights/all endpoint has tighter span limits, so
// callers pass smaller windows.
func (c *Client) FetchAllFlights(ctx context.Context, windows []TimeWindow) (*FetchResult, error) {
	return c.fetchWindows(ctx, "/flights/all", "", windows)
}

func (c *Client) fetchWindows(ctx context.Context, path, airport string, windows []TimeWindow) (*FetchResult, error) {
	result := &FetchResult{Statuses: types.StatusHistogram{}}
	limiter := rate.NewLimiter(rate.Every(c.pacing), 1)

	for _, w := range windows {
		if err := limiter.Wait(ctx); err != nil {
			return result, err
		}
		if err := c.fetchWindow(ctx, path, airport, w, result); err != nil {
			return result, err
		}
	}

	// A run that never saw an HTTP response but did hit transport errors
	// means the network is down, not that the day was quiet.
	if result.Statuses.Total() == 0 && result.TransportErrors > 0 {
		return result, fmt.Errorf("no response from OpenSky after %d transport errors", result.TransportErrors)
	}

	return result, nil
}

// fetchWindow issues up to maxAttempts requests for one window. A 200
// accumulates records, a 404 means no data, 429/502/503 and transport
// errors are retried with backoff, 401/403 are recorded and abandoned.
func (c *Client) fetchWindow(ctx context.Context, path, airport string, w TimeWindow, result *FetchResult) error {
	params := url.Values{
		"begin": {strconv.FormatInt(w.Begin.Unix(), 10)},
		"end":   {strconv.FormatInt(w.End.Unix(), 10)},
	}
	if airport != "" {
		params.Set("airport", airport)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		if err := c.creds.apply(ctx, req); err != nil {
			// Token refresh failure is not transient for this window.
			log.Printf("Error attaching credentials: %v", err)
			return nil
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result.TransportErrors++
			if attempt < maxAttempts {
				if err := sleepCtx(ctx, c.backoff*time.Duration(attempt)); err != nil {
					return err
				}
			}
			continue
		}

		result.Statuses.Record(resp.StatusCode)

		switch resp.StatusCode {
		case http.StatusOK:
			var rows []types.FlightRecord
			if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
				resp.Body.Close()
				log.Printf("Error decoding OpenSky response: %v", err)
				return nil
			}
			resp.Body.Close()
			result.Records = append(result.Records, rows...)
			return nil

		case http.StatusNotFound:
			// No data for this window.
			resp.Body.Close()
			return nil

		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
			delay := retryAfter(resp.Header)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if delay == 0 {
				delay = c.backoff * time.Duration(attempt)
			}
			if attempt < maxAttempts {
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
			}
			continue

		case http.StatusUnauthorized, http.StatusForbidden:
			// Not transient; it will recur on every window. Recorded for
			// diagnostics and the overall run continues.
			resp.Body.Close()
			return nil

		default:
			resp.Body.Close()
			return nil
		}
	}

	// Retries exhausted: skip the window, keep the run going.
	return nil
}

// retryAfter extracts a server-supplied retry delay, supporting both
// delay-seconds and HTTP-date forms.
func retryAfter(headers http.Header) time.Duration {
	v := headers.Get("Retry-After")
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// logEmptyDiagnostic summarizes the status distribution when a whole-day
// fetch came back empty, with hints for the usual causes.
func logEmptyDiagnostic(direction, airport string, h types.StatusHistogram) {
	codes := make([]int, 0, len(h))
	for code := range h {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	summary := ""
	for _, code := range codes {
		if summary != "" {
			summary += ", "
		}
		summary += fmt.Sprintf("%d x%d", code, h[code])
	}

	log.Printf("No %s records for %s (statuses: %s)", direction, airport, summary)
	if h[http.StatusUnauthorized] > 0 || h[http.StatusForbidden] > 0 {
		log.Printf("Hint: 401/403 from OpenSky - check credentials")
	}
	if h[http.StatusTooManyRequests] > 0 {
		log.Printf("Hint: 429 from OpenSky - rate limited, space out requests")
	}
	if h[http.StatusNotFound] > 0 {
		log.Printf("Hint: 404 from OpenSky - no data for the requested windows")
	}
}
