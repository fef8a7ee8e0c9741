package opensky

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSnapshot(t *testing.T) {
	payload := map[string]interface{}{
		"time": 1700000000,
		"states": [][]interface{}{
			{
				"abc123",   // 0  icao24
				"UAL456 ",  // 1  callsign
				"United States", // 2 origin_country
				1700000000, // 3  time_position
				1700000000, // 4  last_contact
				-73.9,      // 5  longitude
				40.7,       // 6  latitude
				10000.0,    // 7  baro_altitude
				false,      // 8  on_ground
				250.0,      // 9  velocity
				180.0,      // 10 true_track
				0.0,        // 11 vertical_rate
				nil,        // 12 sensors
				10500.0,    // 13 geo_altitude
				"1234",     // 14 squawk
				false,      // 15 spi
				0,          // 16 position_source
			},
			{"short", "row"}, // malformed rows are skipped
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/states/all", r.URL.Path)
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	states, at, err := testClient(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, states, 1)
	assert.Equal(t, "abc123", states[0].Icao24)
	assert.Equal(t, "United States", states[0].OriginCountry)
	assert.Equal(t, int64(1700000000), states[0].LastContact)
	assert.Equal(t, 40.7, states[0].Latitude)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), at)
}

func TestFetchSnapshotNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, _, err := testClient(srv.URL).FetchSnapshot(context.Background())
	assert.Error(t, err)
}
