package timer

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// Timer tracks elapsed working time for a single task instance.
// It is not safe for concurrent use; each user session owns one timer and
// mutates it from one goroutine at a time.
type Timer struct {
	clock  clock.Clock
	strict bool

	phase         Phase
	startedAt     time.Time
	endedAt       time.Time
	pauseStart    time.Time
	pausedSeconds int64
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock substitutes the wall clock, for deterministic tests.
func WithClock(c clock.Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// WithStrictTransitions makes invalid transitions return
// ErrInvalidTransition instead of being silent no-ops.
func WithStrictTransitions() Option {
	return func(t *Timer) { t.strict = true }
}

// New returns an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock: clock.New(),
		phase: PhaseIdle,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Restore rebuilds a timer from a snapshot, e.g. after a process restart.
// An invalid snapshot phase falls back to idle.
func Restore(snap Snapshot, opts ...Option) *Timer {
	t := New(opts...)
	if !snap.Phase.IsValid() {
		return t
	}
	t.phase = snap.Phase
	t.startedAt = snap.StartedAtUTC
	t.endedAt = snap.EndedAtUTC
	t.pauseStart = snap.PauseStartUTC
	t.pausedSeconds = snap.PausedSeconds
	return t
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// StartedAt returns the UTC start instant, zero while idle.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// EndedAt returns the UTC end instant, zero until the timer ends.
func (t *Timer) EndedAt() time.Time {
	return t.endedAt
}

// PauseStartedAt returns when the open pause began, zero unless paused.
func (t *Timer) PauseStartedAt() time.Time {
	return t.pauseStart
}

// PausedSeconds returns the accumulated whole seconds of all closed pause
// intervals. An open pause is not included until it closes.
func (t *Timer) PausedSeconds() int64 {
	return t.pausedSeconds
}

// Start begins timing a new task. Valid only from idle.
func (t *Timer) Start() error {
	if t.phase != PhaseIdle {
		return t.invalid("start")
	}
	t.phase = PhaseRunning
	t.startedAt = t.clock.Now().UTC()
	t.endedAt = time.Time{}
	t.pauseStart = time.Time{}
	t.pausedSeconds = 0
	return nil
}

// Pause suspends timing. Valid only from running.
func (t *Timer) Pause() error {
	if t.phase != PhaseRunning {
		return t.invalid("pause")
	}
	t.phase = PhasePaused
	t.pauseStart = t.clock.Now().UTC()
	return nil
}

// Resume closes the open pause interval, folding it into the accumulated
// pause total. Valid only from paused.
func (t *Timer) Resume() error {
	if t.phase != PhasePaused {
		return t.invalid("resume")
	}
	t.foldOpenPause(t.clock.Now().UTC())
	t.phase = PhaseRunning
	return nil
}

// End finishes the task. Valid from running or paused. Ending while paused
// folds the pending pause interval into the accumulated total first, so the
// final elapsed computation never depends on an open pause.
func (t *Timer) End() error {
	if t.phase != PhaseRunning && t.phase != PhasePaused {
		return t.invalid("end")
	}
	now := t.clock.Now().UTC()
	if t.phase == PhasePaused {
		t.foldOpenPause(now)
	}
	t.phase = PhaseEnded
	t.endedAt = now
	return nil
}

// Reset returns the timer to idle from any phase, clearing all fields.
func (t *Timer) Reset() {
	t.phase = PhaseIdle
	t.startedAt = time.Time{}
	t.endedAt = time.Time{}
	t.pauseStart = time.Time{}
	t.pausedSeconds = 0
}

// Elapsed computes whole elapsed seconds for the current task: wall-clock
// time since start, minus all pause time (including the open pause interval
// while paused), clamped to >= 0. Callable from any phase; idle returns 0.
func (t *Timer) Elapsed() int64 {
	if t.startedAt.IsZero() {
		return 0
	}

	reference := t.clock.Now().UTC()
	if t.phase == PhaseEnded {
		reference = t.endedAt
	}

	raw := int64(reference.Sub(t.startedAt).Seconds())
	paused := t.pausedSeconds
	if t.phase == PhasePaused && !t.pauseStart.IsZero() {
		paused += int64(reference.Sub(t.pauseStart).Seconds())
	}

	if elapsed := raw - paused; elapsed > 0 {
		return elapsed
	}
	return 0
}

// Snapshot captures the timer's persistable fields.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Phase:         t.phase,
		StartedAtUTC:  t.startedAt,
		EndedAtUTC:    t.endedAt,
		PauseStartUTC: t.pauseStart,
		PausedSeconds: t.pausedSeconds,
	}
}

func (t *Timer) foldOpenPause(now time.Time) {
	if !t.pauseStart.IsZero() {
		t.pausedSeconds += int64(now.Sub(t.pauseStart).Seconds())
	}
	t.pauseStart = time.Time{}
}

func (t *Timer) invalid(transition string) error {
	if !t.strict {
		return nil
	}
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, transition, t.phase)
}
