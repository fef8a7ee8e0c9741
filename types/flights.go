package types

// FlightRecord is a single entry from the OpenSky /flights/arrival,
// /flights/departure and /flights/all endpoints. The est* airports can be
// null upstream, which decodes to an empty string.
type FlightRecord struct {
	Icao24                           string `json:"icao24"`
	FirstSeen                        int64  `json:"firstSeen"`
	EstDepartureAirport              string `json:"estDepartureAirport"`
	LastSeen                         int64  `json:"lastSeen"`
	EstArrivalAirport                string `json:"estArrivalAirport"`
	Callsign                         string `json:"callsign"`
	EstDepartureAirportHorizDistance int    `json:"estDepartureAirportHorizDistance"`
	EstDepartureAirportVertDistance  int    `json:"estDepartureAirportVertDistance"`
	EstArrivalAirportHorizDistance   int    `json:"estArrivalAirportHorizDistance"`
	EstArrivalAirportVertDistance    int    `json:"estArrivalAirportVertDistance"`
	DepartureAirportCandidatesCount  int    `json:"departureAirportCandidatesCount"`
	ArrivalAirportCandidatesCount    int    `json:"arrivalAirportCandidatesCount"`
}

// StateVector is one aircraft state from the OpenSky /states/all snapshot.
type StateVector struct {
	Icao24        string  `json:"icao24"`
	Callsign      string  `json:"callsign"`
	OriginCountry string  `json:"origin_country"`
	TimePosition  int64   `json:"time_position"`
	LastContact   int64   `json:"last_contact"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
	BaroAltitude  float64 `json:"baro_altitude"`
	OnGround      bool    `json:"on_ground"`
	Velocity      float64 `json:"velocity"`
	TrueTrack     float64 `json:"true_track"`
	VerticalRate  float64 `json:"vertical_rate"`
	GeoAltitude   float64 `json:"geo_altitude"`
	Squawk        string  `json:"squawk"`
}

// CountryCount is the number of active flights registered to one country.
type CountryCount struct {
	Country string `json:"country"`
	Flights int    `json:"flights"`
}
