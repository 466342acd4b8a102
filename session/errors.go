package session

import "errors"

var (
	// ErrTaskActive indicates a task is already being tracked.
	ErrTaskActive = errors.New("a task is already active")
	// ErrNotRunning indicates the timer is not running.
	ErrNotRunning = errors.New("no running task")
	// ErrNotPaused indicates the timer is not paused.
	ErrNotPaused = errors.New("no paused task")
	// ErrNotActive indicates no task is running or paused.
	ErrNotActive = errors.New("no active task")
	// ErrNotEnded indicates there is no ended task awaiting submission.
	ErrNotEnded = errors.New("no ended task to submit")
	// ErrUnknownTask indicates the task is not in the catalog.
	ErrUnknownTask = errors.New("unknown task")
	// ErrInvalidCadence indicates the cadence is not offered for the task.
	ErrInvalidCadence = errors.New("invalid cadence for task")
	// ErrUnknownAccount indicates the account is not in the catalog.
	ErrUnknownAccount = errors.New("unknown account")
)
