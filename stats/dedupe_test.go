package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arliss/opensky-stats/types"
)

func TestDedupe(t *testing.T) {
	t.Run("First occurrence wins", func(t *testing.T) {
		records := []types.FlightRecord{
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 200, Callsign: "AAL1"},
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 200, Callsign: "AAL1X"},
			{Icao24: "def456", FirstSeen: 100, LastSeen: 200, Callsign: "DAL2"},
		}

		uniq := Dedupe(records)
		require.Len(t, uniq, 2)
		// Records with equal keys are the same flight; the first copy is kept
		assert.Equal(t, "AAL1", uniq[0].Callsign)
		assert.Equal(t, "DAL2", uniq[1].Callsign)
	})

	t.Run("Differing timestamps are distinct flights", func(t *testing.T) {
		records := []types.FlightRecord{
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 200},
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 300},
			{Icao24: "abc123", FirstSeen: 150, LastSeen: 200},
		}
		assert.Len(t, Dedupe(records), 3)
	})

	t.Run("Idempotent", func(t *testing.T) {
		records := []types.FlightRecord{
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 200},
			{Icao24: "abc123", FirstSeen: 100, LastSeen: 200},
			{Icao24: "def456", FirstSeen: 100, LastSeen: 200},
		}

		once := Dedupe(records)
		twice := Dedupe(once)
		assert.Equal(t, once, twice)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, Dedupe(nil))
	})
}
