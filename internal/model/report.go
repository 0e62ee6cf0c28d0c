package model

import "time"

// ScanMetadata holds the aggregate statistics for one complete run.
type ScanMetadata struct {
	ScanStart       time.Time `json:"scan_start"`
	ScanEnd         time.Time `json:"scan_end"`
	DurationSeconds float64   `json:"duration_seconds"`

	TotalFilesScanned      int     `json:"total_files_scanned"`
	FilesNeedingExtraction int     `json:"files_needing_i18n"`
	FilesErrored           int     `json:"files_errored"`
	TotalStringsFound      int     `json:"total_strings_found"`
	AverageStringsPerFile  float64 `json:"average_strings_per_file"`

	CacheHits    int     `json:"cache_hits"`
	CacheMisses  int     `json:"cache_misses"`
	CacheHitRate float64 `json:"cache_hit_rate"`

	Workers int `json:"workers"`
}

// ScanReport is the final aggregated output of one engine run.
// It is read-only once built.
type ScanReport struct {
	Metadata ScanMetadata       `json:"metadata"`
	Files    []ExtractionResult `json:"files"`
}
