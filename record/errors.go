package record

import "errors"

var (
	// ErrNoUserLogin indicates a record is missing its user login.
	ErrNoUserLogin = errors.New("completed task record has no user login")

	// ErrNoTaskName indicates a record is missing its task name.
	ErrNoTaskName = errors.New("completed task record has no task name")

	// ErrNoCadence indicates a record is missing its cadence.
	ErrNoCadence = errors.New("completed task record has no cadence")

	// ErrNoStartInstant indicates a record is missing its start instant.
	ErrNoStartInstant = errors.New("completed task record has no start instant")

	// ErrNegativeDuration indicates a record's duration is negative.
	ErrNegativeDuration = errors.New("completed task record has negative duration")
)
