package domain

import "time"

// UsageLogEntry is one observed app session from the device's usage stats.
// Entries are immutable inputs to the sync flow; the engine never mutates
// them.
type UsageLogEntry struct {
	AppPackageName  string    `json:"app_package_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
}
