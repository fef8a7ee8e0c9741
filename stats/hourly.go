package stats

import (
	"time"

	"github.com/arliss/opensky-stats/types"
)

// HourlyCounts buckets deduplicated arrival and departure records into
// local-hour-of-day counts. Arrivals bucket on lastSeen (when the aircraft
// was last observed), departures on firstSeen. The result always has
// exactly 24 rows, hours 0-23, zero-filled.
func HourlyCounts(arrivals, departures []types.FlightRecord, loc *time.Location) []types.HourlyRow {
	rows := make([]types.HourlyRow, 24)
	for h := range rows {
		rows[h].Hour = h
	}
	for _, r := range arrivals {
		rows[localHour(r.LastSeen, loc)].Arrivals++
	}
	for _, r := range departures {
		rows[localHour(r.FirstSeen, loc)].Departures++
	}
	return rows
}

func localHour(epoch int64, loc *time.Location) int {
	return time.Unix(epoch, 0).In(loc).Hour()
}
