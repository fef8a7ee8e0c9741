package opensky

import "time"

// TimeWindow is a half-open UTC interval [Begin, End) used to satisfy the
// OpenSky per-request time span limits.
type TimeWindow struct {
	Begin time.Time
	End   time.Time
}

// PreviousDayRange computes the previous local calendar day [00:00, 24:00)
// in loc and returns its boundaries as UTC instants plus the local date the
// span represents. On DST transition days the span is 23 or 25 hours, as
// the local calendar dictates.
func PreviousDayRange(loc *time.Location, now time.Time) (time.Time, time.Time, time.Time) {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	start := midnight.AddDate(0, 0, -1)
	return start.UTC(), midnight.UTC(), start
}

// PlanWindows slices [begin, end) into consecutive windows of at most size
// each, the final window truncated to end exactly at end. The windows are
// contiguous, non-overlapping and cover the full span. An empty span yields
// no windows.
func PlanWindows(begin, end time.Time, size time.Duration) []TimeWindow {
	var windows []TimeWindow
	for t := begin; t.Before(end); {
		next := t.Add(size)
		if next.After(end) {
			next = end
		}
		windows = append(windows, TimeWindow{Begin: t, End: next})
		t = next
	}
	return windows
}
