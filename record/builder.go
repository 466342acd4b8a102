package record

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuildParams carries everything needed to assemble a completed record:
// the timer's final instants plus the user-supplied submission metadata.
type BuildParams struct {
	UserLogin         string
	FullName          string
	TaskName          string
	Cadence           string
	Account           string
	CoveringFor       string
	Notes             string
	PartiallyComplete bool
	StartUTC          time.Time
	EndUTC            time.Time
	DurationSeconds   int64
	UploadedUTC       time.Time
	AppVersion        string
}

// Build assembles and validates a completed task record. The TaskID is a
// fresh random UUID, so two submissions can never collide even within the
// same second. DurationSeconds is user-editable at submit time and may
// differ from EndUTC-StartUTC, but must be non-negative.
func Build(params BuildParams) (CompletedTask, error) {
	switch {
	case strings.TrimSpace(params.UserLogin) == "":
		return CompletedTask{}, ErrNoUserLogin
	case strings.TrimSpace(params.TaskName) == "":
		return CompletedTask{}, ErrNoTaskName
	case strings.TrimSpace(params.Cadence) == "":
		return CompletedTask{}, ErrNoCadence
	case params.StartUTC.IsZero():
		return CompletedTask{}, ErrNoStartInstant
	case params.DurationSeconds < 0:
		return CompletedTask{}, ErrNegativeDuration
	}

	coveringFor := strings.TrimSpace(params.CoveringFor)

	return CompletedTask{
		TaskID:            uuid.NewString(),
		UserLogin:         params.UserLogin,
		FullName:          strings.TrimSpace(params.FullName),
		TaskName:          strings.TrimSpace(params.TaskName),
		TaskCadence:       strings.TrimSpace(params.Cadence),
		CompanyGroup:      strings.TrimSpace(params.Account),
		IsCoveringFor:     coveringFor != "",
		CoveringFor:       coveringFor,
		Notes:             strings.TrimSpace(params.Notes),
		PartiallyComplete: params.PartiallyComplete,
		StartUTC:          params.StartUTC,
		EndUTC:            params.EndUTC,
		DurationSeconds:   params.DurationSeconds,
		UploadedUTC:       params.UploadedUTC,
		AppVersion:        params.AppVersion,
	}, nil
}
