package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arliss/opensky-stats/airlines"
	"github.com/arliss/opensky-stats/types"
)

type stubCollector struct {
	table    *types.HourlyTable
	tableErr error
	statuses types.StatusHistogram
	counts   []types.CountryCount
}

func (s *stubCollector) GetStats() types.CollectionStats     { return types.CollectionStats{TotalRuns: 3} }
func (s *stubCollector) LastStatuses() types.StatusHistogram { return s.statuses }

func (s *stubCollector) HourlyForPreviousDay(ctx context.Context, airport string) (*types.HourlyTable, error) {
	return s.table, s.tableErr
}

func (s *stubCollector) SnapshotByCountry(ctx context.Context, limit int) ([]types.CountryCount, error) {
	return s.counts, nil
}

type stubAirlines struct {
	profiles []airlines.Profile
	err      error
}

func (s *stubAirlines) FetchProfiles(ctx context.Context) ([]airlines.Profile, error) {
	return s.profiles, s.err
}

func sampleTable() *types.HourlyTable {
	rows := make([]types.HourlyRow, 24)
	for h := range rows {
		rows[h].Hour = h
	}
	rows[8].Arrivals = 5
	return &types.HourlyTable{
		Airport:  "KRDU",
		Date:     "2025-01-14",
		Rows:     rows,
		Statuses: types.StatusHistogram{200: 24},
	}
}

func TestGetAirportHourly(t *testing.T) {
	t.Run("Serves the table", func(t *testing.T) {
		router := NewRouter(&stubCollector{table: sampleTable()}, &stubAirlines{})

		req := httptest.NewRequest(http.MethodGet, "/api/airports/krdu/hourly", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var table types.HourlyTable
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
		assert.Equal(t, "KRDU", table.Airport)
		require.Len(t, table.Rows, 24)
		assert.Equal(t, 5, table.Rows[8].Arrivals)
	})

	t.Run("Rejects malformed ICAO codes", func(t *testing.T) {
		router := NewRouter(&stubCollector{table: sampleTable()}, &stubAirlines{})

		req := httptest.NewRequest(http.MethodGet, "/api/airports/rd9/hourly", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Upstream failure maps to 502", func(t *testing.T) {
		router := NewRouter(&stubCollector{tableErr: errors.New("opensky down")}, &stubAirlines{})

		req := httptest.NewRequest(http.MethodGet, "/api/airports/KRDU/hourly", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetDiagnostics(t *testing.T) {
	router := NewRouter(&stubCollector{statuses: types.StatusHistogram{429: 2, 200: 10}}, &stubAirlines{})

	req := httptest.NewRequest(http.MethodGet, "/api/collector/diagnostics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DiagnosticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusHistogram{429: 2, 200: 10}, resp.StatusHistogram)
}

func TestGetSnapshotCountries(t *testing.T) {
	router := NewRouter(&stubCollector{
		counts: []types.CountryCount{{Country: "Germany", Flights: 12}},
	}, &stubAirlines{})

	req := httptest.NewRequest(http.MethodGet, "/api/snapshot/countries?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SnapshotCountriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Countries, 1)
	assert.Equal(t, "Germany", resp.Countries[0].Country)
}

func TestGetAirlineComparison(t *testing.T) {
	router := NewRouter(&stubCollector{}, &stubAirlines{profiles: []airlines.Profile{
		{AirlineName: "Lufthansa", CountryName: "Germany", FleetSize: "280"},
		{AirlineName: "Delta Air Lines", CountryName: "United States", FleetSize: "823"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/airlines/compare?feature=fleet_size", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fleet_size", resp.Feature)
	require.Len(t, resp.Airlines, 2)
	assert.Equal(t, "Lufthansa", resp.Airlines[0].Airline)
	assert.Equal(t, []string{"Germany", "United States"}, resp.Countries)
}
