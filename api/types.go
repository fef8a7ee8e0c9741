package api

import (
	"github.com/arliss/opensky-stats/airlines"
	"github.com/arliss/opensky-stats/types"
)

type DiagnosticsResponse struct {
	StatusHistogram types.StatusHistogram `json:"status_histogram"`
}

type SnapshotCountriesResponse struct {
	Countries []types.CountryCount `json:"countries"`
}

type ComparisonResponse struct {
	Feature   string                  `json:"feature"`
	Country   string                  `json:"country,omitempty"`
	Airlines  []airlines.FeatureValue `json:"airlines"`
	Countries []string                `json:"countries"`
}
