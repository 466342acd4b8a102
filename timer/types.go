// Package timer implements the task timing state machine.
//
// A Timer moves through Idle -> Running -> {Paused <-> Running} -> Ended.
// Elapsed time is pull-based: it is recomputed from the stored instants on
// every call, so no background ticker mutates timer state.
package timer

import "time"

// Phase represents the timer's current mode.
type Phase string

const (
	// PhaseIdle indicates no task is being timed.
	PhaseIdle Phase = "idle"

	// PhaseRunning indicates a task is being timed.
	PhaseRunning Phase = "running"

	// PhasePaused indicates timing is suspended mid-task.
	PhasePaused Phase = "paused"

	// PhaseEnded indicates the task finished and awaits submission.
	PhaseEnded Phase = "ended"
)

// ValidPhases returns all valid phase values.
func ValidPhases() []Phase {
	return []Phase{PhaseIdle, PhaseRunning, PhasePaused, PhaseEnded}
}

// IsValid returns true if the phase is a known valid value.
func (p Phase) IsValid() bool {
	for _, valid := range ValidPhases() {
		if p == valid {
			return true
		}
	}
	return false
}

// Active returns true when the phase represents an in-progress task that
// should be visible as live activity.
func (p Phase) Active() bool {
	return p == PhaseRunning || p == PhasePaused
}

// Snapshot captures the persistable fields of a timer so a session can be
// restored after a process restart.
type Snapshot struct {
	Phase         Phase     `json:"phase"`
	StartedAtUTC  time.Time `json:"start_timestamp_utc"`
	EndedAtUTC    time.Time `json:"end_timestamp_utc"`
	PauseStartUTC time.Time `json:"pause_start_timestamp_utc"`
	PausedSeconds int64     `json:"paused_seconds"`
}
