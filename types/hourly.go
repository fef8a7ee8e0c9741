package types

// StatusHistogram maps HTTP status codes to how often they were observed
// during one fetch run. It is rebuilt per run, never accumulated.
type StatusHistogram map[int]int

// Record adds one observation of the given status code.
func (h StatusHistogram) Record(code int) {
	h[code]++
}

// Merge adds all observations from another histogram.
func (h StatusHistogram) Merge(other StatusHistogram) {
	for code, n := range other {
		h[code] += n
	}
}

// Total returns the number of HTTP responses observed.
func (h StatusHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Clone returns a copy safe to hand out after the run completes.
func (h StatusHistogram) Clone() StatusHistogram {
	out := make(StatusHistogram, len(h))
	for code, n := range h {
		out[code] = n
	}
	return out
}

// HourlyRow is the movement count for one local hour of day.
type HourlyRow struct {
	Hour       int `json:"hour"`
	Arrivals   int `json:"arrivals"`
	Departures int `json:"departures"`
}

// HourlyTable is the finished per-airport aggregation for one local
// calendar day: exactly 24 rows (hours 0-23) plus the status histogram of
// the fetch run that produced it.
type HourlyTable struct {
	Airport  string          `json:"airport"`
	Date     string          `json:"date"`
	Rows     []HourlyRow     `json:"rows"`
	Statuses StatusHistogram `json:"status_histogram"`
}

// TotalArrivals sums the arrival counts across all hours.
func (t *HourlyTable) TotalArrivals() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Arrivals
	}
	return total
}

// TotalDepartures sums the departure counts across all hours.
func (t *HourlyTable) TotalDepartures() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Departures
	}
	return total
}
