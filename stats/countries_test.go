package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arliss/opensky-stats/types"
)

func TestTopCountries(t *testing.T) {
	states := []types.StateVector{
		{Icao24: "a1", OriginCountry: "Germany"},
		{Icao24: "a2", OriginCountry: "United States"},
		{Icao24: "a3", OriginCountry: "United States"},
		{Icao24: "a4", OriginCountry: "Canada"},
		{Icao24: "a5", OriginCountry: "Germany"},
		{Icao24: "a6", OriginCountry: ""},
	}

	counts := TopCountries(states, 0)
	require.Len(t, counts, 3)
	assert.Equal(t, types.CountryCount{Country: "Germany", Flights: 2}, counts[0])
	assert.Equal(t, types.CountryCount{Country: "United States", Flights: 2}, counts[1])
	assert.Equal(t, types.CountryCount{Country: "Canada", Flights: 1}, counts[2])

	top1 := TopCountries(states, 1)
	require.Len(t, top1, 1)
	assert.Equal(t, "Germany", top1[0].Country)
}
