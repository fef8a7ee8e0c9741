package stats

import (
	"sort"

	"github.com/arliss/opensky-stats/types"
)

// TopCountries counts active flights per origin country and returns the
// top n entries, largest first. Ties break alphabetically so the table is
// stable across runs.
func TopCountries(states []types.StateVector, n int) []types.CountryCount {
	counts := make(map[string]int)
	for _, s := range states {
		if s.OriginCountry == "" {
			continue
		}
		counts[s.OriginCountry]++
	}

	out := make([]types.CountryCount, 0, len(counts))
	for country, flights := range counts {
		out = append(out, types.CountryCount{Country: country, Flights: flights})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Flights != out[j].Flights {
			return out[i].Flights > out[j].Flights
		}
		return out[i].Country < out[j].Country
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
