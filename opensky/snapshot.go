package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arliss/opensky-stats/types"
)

// stateResponse mirrors the JSON shape of /states/all: a timestamp plus
// positional arrays, one per aircraft.
type stateResponse struct {
	Time   int64           `json:"time"`
	States [][]interface{} `json:"states"`
}

// FetchSnapshot retrieves the current global state vectors from
// /states/all. Unlike the windowed flights fetch this is a single call with
// no retry; the caller decides how to handle failure.
func (c *Client) FetchSnapshot(ctx context.Context) ([]types.StateVector, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/states/all", nil)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("creating request: %w", err)
	}
	if err := c.creds.apply(ctx, req); err != nil {
		return nil, time.Time{}, fmt.Errorf("attaching credentials: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, time.Time{}, fmt.Errorf("snapshot request failed (status %d)", resp.StatusCode)
	}

	var raw stateResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	return parseStates(raw.States), time.Unix(raw.Time, 0).UTC(), nil
}

// parseStates converts the positional state arrays into typed vectors.
// Indexes follow the OpenSky /states/all documentation.
func parseStates(states [][]interface{}) []types.StateVector {
	vectors := make([]types.StateVector, 0, len(states))
	for _, s := range states {
		if len(s) < 17 {
			continue
		}
		v := types.StateVector{
			Icao24:        stringVal(s[0]),
			Callsign:      stringVal(s[1]),
			OriginCountry: stringVal(s[2]),
			TimePosition:  intVal(s[3]),
			LastContact:   intVal(s[4]),
			Longitude:     floatVal(s[5]),
			Latitude:      floatVal(s[6]),
			BaroAltitude:  floatVal(s[7]),
			OnGround:      boolVal(s[8]),
			Velocity:      floatVal(s[9]),
			TrueTrack:     floatVal(s[10]),
			VerticalRate:  floatVal(s[11]),
			GeoAltitude:   floatVal(s[13]),
			Squawk:        stringVal(s[14]),
		}
		vectors = append(vectors, v)
	}
	return vectors
}

func stringVal(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func floatVal(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

func intVal(v interface{}) int64 {
	if f, ok := v.(float64); ok {
		return int64(f)
	}
	return 0
}

func boolVal(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
