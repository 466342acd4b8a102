// Package state manages the local tracker session file.
//
// The session file (~/.local/state/tasktracker/session.json) stores the
// timer snapshot and the selections made before starting a task, so a
// tracker survives process restarts. All access is serialized through
// file locking to allow safe concurrent access from multiple processes.
package state

import "github.com/CNA-DataTeam/CNA-Logistics-App/timer"

// Session is the persisted tracking state for one machine user. It
// carries the timer across process runs together with the task
// selections, so a tracker can be reopened mid-task or after ending but
// before submitting.
type Session struct {
	Timer timer.Snapshot `json:"timer"`

	TaskName          string `json:"task_name,omitempty"`
	TaskCadence       string `json:"task_cadence,omitempty"`
	Account           string `json:"account,omitempty"`
	CoveringFor       string `json:"covering_for,omitempty"`
	Notes             string `json:"notes,omitempty"`
	PartiallyComplete bool   `json:"partially_complete,omitempty"`
}

// Empty reports whether the session carries no restorable timer state.
func (s *Session) Empty() bool {
	return s.Timer.Phase == "" || s.Timer.Phase == timer.PhaseIdle
}
