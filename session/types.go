// Package session coordinates the catalog, timer, and stores for one
// tracker user: start/pause/resume/end/reset transitions, live activity
// broadcast, restore after a restart, and final record submission.
package session

import (
	"time"

	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

// Status is a point-in-time view of the tracked task, for display.
type Status struct {
	Phase          timer.Phase
	TaskName       string
	Cadence        string
	Account        string
	CoveringFor    string
	Notes          string
	StartedAtUTC   time.Time
	EndedAtUTC     time.Time
	ElapsedSeconds int64
}

// StartOptions carries the selections made when starting a task.
type StartOptions struct {
	// Cadence selects the tracking cadence. Empty auto-selects the task's
	// preferred cadence.
	Cadence string
	// Account optionally attributes the task to an account.
	Account string
	// CoveringFor optionally names the colleague this task is covered for.
	CoveringFor string
	// Notes is free-form text carried onto the final record.
	Notes string
}

// SubmitOptions configures a submission.
type SubmitOptions struct {
	// EditedDuration optionally overrides the computed duration, in
	// H:MM:SS or H:MM form. Unparseable values fall back to the computed
	// duration rather than failing the submission.
	EditedDuration string
	// PartiallyComplete marks the task as not fully finished.
	PartiallyComplete bool
}
