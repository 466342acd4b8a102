// Package activity implements the live activity store: one mutable record
// per currently-active user, broadcast so peers can see who is working on
// what right now, and read back by its owner to restore an in-progress
// session.
//
// Each record is a single JSON file named user=<key>.json in a shared
// directory. A record is written only by the session that owns its user
// key, so there is no write-write conflict between users; cross-user reads
// go through a short-TTL cache and are eventually consistent.
package activity

import (
	"strings"
	"time"

	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

// Record is a user's in-progress task broadcast. Field names follow the
// shared store schema so files written by older application versions stay
// readable.
type Record struct {
	UserKey       string      `json:"UserKey"`
	UserLogin     string      `json:"UserLogin"`
	FullName      string      `json:"FullName,omitempty"`
	TaskName      string      `json:"TaskName"`
	TaskCadence   string      `json:"TaskCadence"`
	CompanyGroup  string      `json:"CompanyGroup,omitempty"`
	IsCoveringFor bool        `json:"IsCoveringFor"`
	CoveringFor   string      `json:"CoveringFor,omitempty"`
	Notes         string      `json:"Notes,omitempty"`
	StartUTC      time.Time   `json:"StartTimestampUTC"`
	State         timer.Phase `json:"State"`
	PausedSeconds int64       `json:"PausedSeconds"`
	PauseStartUTC *time.Time  `json:"PauseStartTimestampUTC,omitempty"`
}

// DisplayName returns the full name when present, otherwise the login.
func (r Record) DisplayName() string {
	if name := strings.TrimSpace(r.FullName); name != "" {
		return name
	}
	return r.UserLogin
}
