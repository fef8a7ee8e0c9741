package types

import "time"

type CollectionStats struct {
	LastUpdate       time.Time `json:"last_update"`
	TotalRuns        int64     `json:"total_runs"`
	CacheHits        int64     `json:"cache_hits"`
	FallbackRuns     int64     `json:"fallback_runs"`
	ProcessedRecords int64     `json:"processed_records"`
	StartTime        time.Time `json:"start_time"`
}
