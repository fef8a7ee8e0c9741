package stats

import "github.com/arliss/opensky-stats/types"

// flightKey identifies one physical flight observation. Records sharing a
// key are the same flight regardless of other field differences.
type flightKey struct {
	icao24    string
	firstSeen int64
	lastSeen  int64
}

// Dedupe removes duplicate flight records across fetch windows, keeping the
// first occurrence in input order. Running it on its own output is a no-op.
func Dedupe(records []types.FlightRecord) []types.FlightRecord {
	seen := make(map[flightKey]struct{}, len(records))
	uniq := make([]types.FlightRecord, 0, len(records))
	for _, r := range records {
		key := flightKey{icao24: r.Icao24, firstSeen: r.FirstSeen, lastSeen: r.LastSeen}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, r)
	}
	return uniq
}
