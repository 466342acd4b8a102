package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func newMockTimer(t *testing.T, opts ...Option) (*Timer, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	opts = append([]Option{WithClock(mock)}, opts...)
	return New(opts...), mock
}

func TestLifecycleWithPause(t *testing.T) {
	// Start, work 300s, pause 60s, work 120s, end: 420s elapsed.
	tm, mock := newMockTimer(t)

	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if tm.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, want running", tm.Phase())
	}

	mock.Add(300 * time.Second)
	if err := tm.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	mock.Add(60 * time.Second)
	if err := tm.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if tm.PausedSeconds() != 60 {
		t.Errorf("PausedSeconds = %d, want 60", tm.PausedSeconds())
	}

	mock.Add(120 * time.Second)
	if err := tm.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if got := tm.Elapsed(); got != 420 {
		t.Errorf("Elapsed = %d, want 420", got)
	}
	if tm.Phase() != PhaseEnded {
		t.Errorf("phase = %s, want ended", tm.Phase())
	}
	if tm.EndedAt().Sub(tm.StartedAt()) != 480*time.Second {
		t.Errorf("end-start = %v, want 480s", tm.EndedAt().Sub(tm.StartedAt()))
	}
}

func TestEndWithoutPausing(t *testing.T) {
	tm, mock := newMockTimer(t)

	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mock.Add(45 * time.Second)
	if err := tm.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if got := tm.Elapsed(); got != 45 {
		t.Errorf("Elapsed = %d, want 45", got)
	}
	if tm.PausedSeconds() != 0 {
		t.Errorf("PausedSeconds = %d, want 0", tm.PausedSeconds())
	}
}

func TestEndWhilePausedFoldsOpenPause(t *testing.T) {
	tm, mock := newMockTimer(t)

	tm.Start()
	mock.Add(100 * time.Second)
	tm.Pause()
	mock.Add(30 * time.Second)
	if err := tm.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if tm.PausedSeconds() != 30 {
		t.Errorf("PausedSeconds = %d, want 30 (open pause folded on end)", tm.PausedSeconds())
	}
	if !tm.PauseStartedAt().IsZero() {
		t.Error("PauseStartedAt not cleared on end")
	}
	if got := tm.Elapsed(); got != 100 {
		t.Errorf("Elapsed = %d, want 100", got)
	}
}

func TestElapsedWhilePausedIncludesOpenInterval(t *testing.T) {
	tm, mock := newMockTimer(t)

	tm.Start()
	mock.Add(200 * time.Second)
	tm.Pause()
	mock.Add(50 * time.Second)

	// The open pause is excluded from elapsed even before it is folded.
	if got := tm.Elapsed(); got != 200 {
		t.Errorf("Elapsed while paused = %d, want 200", got)
	}
	if tm.PausedSeconds() != 0 {
		t.Errorf("PausedSeconds = %d, want 0 before resume", tm.PausedSeconds())
	}
}

func TestRepeatedPauseResumeAccumulates(t *testing.T) {
	tm, mock := newMockTimer(t)

	tm.Start()
	total := int64(0)
	for i, pause := range []int64{10, 25, 5} {
		mock.Add(time.Duration(60+i) * time.Second)
		tm.Pause()
		mock.Add(time.Duration(pause) * time.Second)
		tm.Resume()
		total += pause
	}
	if tm.PausedSeconds() != total {
		t.Errorf("PausedSeconds = %d, want %d", tm.PausedSeconds(), total)
	}

	mock.Add(17 * time.Second)
	tm.End()
	want := int64(60+61+62+17)
	if got := tm.Elapsed(); got != want {
		t.Errorf("Elapsed = %d, want %d", got, want)
	}
}

func TestElapsedIdleIsZero(t *testing.T) {
	tm, _ := newMockTimer(t)
	if got := tm.Elapsed(); got != 0 {
		t.Errorf("Elapsed while idle = %d, want 0", got)
	}
}

func TestLenientInvalidTransitionsAreNoOps(t *testing.T) {
	tm, mock := newMockTimer(t)

	if err := tm.Pause(); err != nil {
		t.Errorf("Pause while idle: %v, want nil no-op", err)
	}
	if err := tm.Resume(); err != nil {
		t.Errorf("Resume while idle: %v, want nil no-op", err)
	}
	if err := tm.End(); err != nil {
		t.Errorf("End while idle: %v, want nil no-op", err)
	}
	if tm.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle after no-op transitions", tm.Phase())
	}

	tm.Start()
	started := tm.StartedAt()
	mock.Add(10 * time.Second)
	if err := tm.Start(); err != nil {
		t.Errorf("Start while running: %v, want nil no-op", err)
	}
	if !tm.StartedAt().Equal(started) {
		t.Error("double start moved the start instant")
	}
}

func TestStrictInvalidTransitionsError(t *testing.T) {
	tm, _ := newMockTimer(t, WithStrictTransitions())

	for name, fn := range map[string]func() error{
		"pause":  tm.Pause,
		"resume": tm.Resume,
		"end":    tm.End,
	} {
		if err := fn(); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s while idle: err = %v, want ErrInvalidTransition", name, err)
		}
	}

	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := tm.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Start: err = %v, want ErrInvalidTransition", err)
	}
	if err := tm.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resume while running: err = %v, want ErrInvalidTransition", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	tm, mock := newMockTimer(t)

	tm.Start()
	mock.Add(30 * time.Second)
	tm.Pause()
	tm.Reset()

	if tm.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", tm.Phase())
	}
	if !tm.StartedAt().IsZero() || !tm.EndedAt().IsZero() || !tm.PauseStartedAt().IsZero() {
		t.Error("Reset left instants set")
	}
	if tm.PausedSeconds() != 0 {
		t.Errorf("PausedSeconds = %d, want 0", tm.PausedSeconds())
	}
	if tm.Elapsed() != 0 {
		t.Errorf("Elapsed = %d, want 0", tm.Elapsed())
	}

	// Reset is valid from any phase, including a fresh idle timer.
	tm.Reset()
	if tm.Phase() != PhaseIdle {
		t.Errorf("phase after idle reset = %s, want idle", tm.Phase())
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	tm, mock := newMockTimer(t)
	tm.Start()
	mock.Add(120 * time.Second)
	tm.Pause()

	restored := Restore(tm.Snapshot(), WithClock(mock))
	if restored.Phase() != PhasePaused {
		t.Fatalf("restored phase = %s, want paused", restored.Phase())
	}
	if !restored.StartedAt().Equal(tm.StartedAt()) {
		t.Error("restored start instant differs")
	}
	if !restored.PauseStartedAt().Equal(tm.PauseStartedAt()) {
		t.Error("restored pause start differs")
	}

	mock.Add(60 * time.Second)
	restored.Resume()
	if restored.PausedSeconds() != 60 {
		t.Errorf("PausedSeconds after restored resume = %d, want 60", restored.PausedSeconds())
	}
}

func TestRestoreRejectsInvalidPhase(t *testing.T) {
	restored := Restore(Snapshot{Phase: Phase("bogus"), PausedSeconds: 99})
	if restored.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", restored.Phase())
	}
	if restored.PausedSeconds() != 0 {
		t.Errorf("PausedSeconds = %d, want 0", restored.PausedSeconds())
	}
}

func TestPhaseValidation(t *testing.T) {
	for _, phase := range ValidPhases() {
		if !phase.IsValid() {
			t.Errorf("phase %s should be valid", phase)
		}
	}
	if Phase("sleeping").IsValid() {
		t.Error("unknown phase should be invalid")
	}
	if !PhaseRunning.Active() || !PhasePaused.Active() {
		t.Error("running and paused should be active")
	}
	if PhaseIdle.Active() || PhaseEnded.Active() {
		t.Error("idle and ended should not be active")
	}
}
