package api

import "time"

// ReportFile describes one generated HTML report artifact.
type ReportFile struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}
