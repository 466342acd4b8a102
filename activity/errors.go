package activity

import "errors"

var (
	// ErrNoUserKey indicates a record or operation is missing its user key.
	ErrNoUserKey = errors.New("live activity record has no user key")

	// ErrNoTaskName indicates a record is missing its task name.
	ErrNoTaskName = errors.New("live activity record has no task name")
)
