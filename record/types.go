// Package record implements the completed task record store: one immutable
// JSON file per submitted task, partitioned by user and Eastern calendar
// date for cheap "today" queries, with a full-tree scan reserved for
// analytics.
package record

import (
	"strings"
	"time"
)

// CompletedTask is one submitted task record. Records are written exactly
// once and never mutated. Field names follow the shared store schema;
// fields absent from files written under an older, narrower schema
// unmarshal to their zero values rather than failing the read.
type CompletedTask struct {
	TaskID            string    `json:"TaskID"`
	UserLogin         string    `json:"UserLogin"`
	FullName          string    `json:"FullName,omitempty"`
	TaskName          string    `json:"TaskName"`
	TaskCadence       string    `json:"TaskCadence"`
	CompanyGroup      string    `json:"CompanyGroup,omitempty"`
	IsCoveringFor     bool      `json:"IsCoveringFor"`
	CoveringFor       string    `json:"CoveringFor,omitempty"`
	Notes             string    `json:"Notes,omitempty"`
	PartiallyComplete bool      `json:"PartiallyComplete"`
	StartUTC          time.Time `json:"StartTimestampUTC"`
	EndUTC            time.Time `json:"EndTimestampUTC"`
	DurationSeconds   int64     `json:"DurationSeconds"`
	UploadedUTC       time.Time `json:"UploadTimestampUTC"`
	AppVersion        string    `json:"AppVersion"`
}

// DisplayName returns the full name when present, otherwise the login.
func (t CompletedTask) DisplayName() string {
	if name := strings.TrimSpace(t.FullName); name != "" {
		return name
	}
	return t.UserLogin
}
