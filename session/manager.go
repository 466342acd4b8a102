package session

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/CNA-DataTeam/CNA-Logistics-App/activity"
	"github.com/CNA-DataTeam/CNA-Logistics-App/catalog"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/config"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/identity"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/keys"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/state"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/record"
	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

// OpenOptions configures the session manager.
type OpenOptions struct {
	// Login overrides the OS login, for tests.
	Login string
	// Clock substitutes the wall clock, for tests.
	Clock clock.Clock
}

// SubmitResult captures the output of a submission.
type SubmitResult struct {
	Record record.CompletedTask
	// Path is the file the record was written to.
	Path string
	// UsedFallbackDuration reports that the edited duration was
	// unparseable and the computed elapsed time was used instead.
	UsedFallbackDuration bool
}

// Manager owns the tracking lifecycle for one user.
type Manager struct {
	login    string
	fullName string
	userKey  string

	clock   clock.Clock
	catalog *catalog.Catalog
	timer   *timer.Timer

	session *state.Store
	live    *activity.Store
	done    *record.Store

	taskName          string
	cadence           string
	account           string
	coveringFor       string
	notes             string
	partiallyComplete bool
}

// Open creates a session manager and restores any in-progress task: the
// local session file wins, and an own live activity record is the
// fallback after the session file is lost (for example on a new machine).
func Open(cfg *config.Config, opts OpenOptions) (*Manager, error) {
	login := opts.Login
	if login == "" {
		var err error
		if login, err = identity.Login(); err != nil {
			return nil, err
		}
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	m := &Manager{
		login:    login,
		fullName: cat.FullNameFor(login),
		userKey:  keys.Sanitize(login),
		clock:    clk,
		catalog:  cat,
		timer:    timer.New(timer.WithClock(clk)),
		session:  state.NewStore(cfg.StateDir),
		live:     activity.NewStore(cfg.LiveActivityDir()),
		done:     record.NewStore(cfg.CompletedTasksDir(), record.WithClock(clk)),
	}

	if err := m.restore(); err != nil {
		return nil, err
	}
	return m, nil
}

// restore rebuilds timer state and selections from the local session file,
// falling back to the user's own live activity record.
func (m *Manager) restore() error {
	sess, err := m.session.Load()
	if err != nil {
		return err
	}
	if !sess.Empty() {
		m.timer = timer.Restore(sess.Timer, timer.WithClock(m.clock))
		m.taskName = sess.TaskName
		m.cadence = sess.TaskCadence
		m.account = sess.Account
		m.coveringFor = sess.CoveringFor
		m.notes = sess.Notes
		m.partiallyComplete = sess.PartiallyComplete
		return nil
	}

	rec, err := m.live.LoadOwn(m.userKey)
	if err != nil {
		return err
	}
	if rec == nil || !rec.State.Active() {
		return nil
	}

	snap := timer.Snapshot{
		Phase:         rec.State,
		StartedAtUTC:  rec.StartUTC,
		PausedSeconds: rec.PausedSeconds,
	}
	if rec.PauseStartUTC != nil {
		snap.PauseStartUTC = *rec.PauseStartUTC
	}
	m.timer = timer.Restore(snap, timer.WithClock(m.clock))
	m.taskName = rec.TaskName
	m.cadence = rec.TaskCadence
	m.account = rec.CompanyGroup
	m.coveringFor = rec.CoveringFor
	m.notes = rec.Notes

	return m.persist()
}

// Start begins tracking a task. Only one task can be tracked at a time;
// an ended task must be submitted or reset first.
func (m *Manager) Start(taskName string, opts StartOptions) error {
	if m.timer.Phase() != timer.PhaseIdle {
		return fmt.Errorf("%w: %s", ErrTaskActive, m.taskName)
	}
	if !m.catalog.HasTask(taskName) {
		return fmt.Errorf("%w: %q", ErrUnknownTask, taskName)
	}

	cadence := opts.Cadence
	if cadence == "" {
		var ok bool
		if cadence, ok = m.catalog.DefaultCadence(taskName); !ok {
			return fmt.Errorf("%w: %q has no cadence", ErrInvalidCadence, taskName)
		}
	} else if !m.catalog.ValidCadence(taskName, cadence) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidCadence, cadence, taskName)
	}

	if opts.Account != "" && !m.catalog.HasAccount(opts.Account) {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, opts.Account)
	}

	if err := m.timer.Start(); err != nil {
		return err
	}
	m.taskName = taskName
	m.cadence = cadence
	m.account = opts.Account
	m.coveringFor = opts.CoveringFor
	m.notes = opts.Notes
	m.partiallyComplete = false

	if err := m.persist(); err != nil {
		return err
	}
	return m.live.Publish(m.liveRecord())
}

// Pause suspends the running task.
func (m *Manager) Pause() error {
	if m.timer.Phase() != timer.PhaseRunning {
		return ErrNotRunning
	}
	if err := m.timer.Pause(); err != nil {
		return err
	}
	if err := m.persist(); err != nil {
		return err
	}
	pauseStart := m.timer.PauseStartedAt()
	return m.live.UpdatePhase(m.userKey, timer.PhasePaused, m.timer.PausedSeconds(), &pauseStart)
}

// Resume continues a paused task.
func (m *Manager) Resume() error {
	if m.timer.Phase() != timer.PhasePaused {
		return ErrNotPaused
	}
	if err := m.timer.Resume(); err != nil {
		return err
	}
	if err := m.persist(); err != nil {
		return err
	}
	return m.live.UpdatePhase(m.userKey, timer.PhaseRunning, m.timer.PausedSeconds(), nil)
}

// End finishes the active task. The task stays pending locally until it is
// submitted or reset, but it disappears from live activity immediately.
func (m *Manager) End() error {
	if !m.timer.Phase().Active() {
		return ErrNotActive
	}
	if err := m.timer.End(); err != nil {
		return err
	}
	if err := m.persist(); err != nil {
		return err
	}
	return m.live.Delete(m.userKey)
}

// Reset abandons the current task without recording it, from any phase.
func (m *Manager) Reset() error {
	m.timer.Reset()
	m.clearSelections()
	if err := m.session.Clear(); err != nil {
		return err
	}
	return m.live.Delete(m.userKey)
}

// SetNotes updates the notes for the current task and republishes live
// activity when the task is still visible to peers.
func (m *Manager) SetNotes(notes string) error {
	m.notes = notes
	if err := m.persist(); err != nil {
		return err
	}
	if !m.timer.Phase().Active() {
		return nil
	}
	return m.live.Publish(m.liveRecord())
}

// Submit records the ended task as a completed record and clears the
// session. An unparseable edited duration falls back to the computed
// elapsed time instead of failing the submission.
func (m *Manager) Submit(opts SubmitOptions) (*SubmitResult, error) {
	if m.timer.Phase() != timer.PhaseEnded {
		return nil, ErrNotEnded
	}

	duration := m.timer.Elapsed()
	usedFallback := false
	if opts.EditedDuration != "" {
		if parsed := timefmt.ParseHMS(opts.EditedDuration); parsed >= 0 {
			duration = parsed
		} else {
			usedFallback = true
			logrus.WithField("duration", opts.EditedDuration).
				Warn("unparseable edited duration, keeping computed elapsed time")
		}
	}

	task, err := record.Build(record.BuildParams{
		UserLogin:         m.login,
		FullName:          m.fullName,
		TaskName:          m.taskName,
		Cadence:           m.cadence,
		Account:           m.account,
		CoveringFor:       m.coveringFor,
		Notes:             m.notes,
		PartiallyComplete: opts.PartiallyComplete,
		StartUTC:          m.timer.StartedAt(),
		EndUTC:            m.timer.EndedAt(),
		DurationSeconds:   duration,
		UploadedUTC:       m.clock.Now().UTC(),
		AppVersion:        config.AppVersion,
	})
	if err != nil {
		return nil, err
	}

	path, err := m.done.Append(task)
	if err != nil {
		return nil, err
	}

	m.timer.Reset()
	m.clearSelections()
	if err := m.session.Clear(); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Record:               task,
		Path:                 path,
		UsedFallbackDuration: usedFallback,
	}, nil
}

// Status returns a display view of the current task.
func (m *Manager) Status() Status {
	return Status{
		Phase:          m.timer.Phase(),
		TaskName:       m.taskName,
		Cadence:        m.cadence,
		Account:        m.account,
		CoveringFor:    m.coveringFor,
		Notes:          m.notes,
		StartedAtUTC:   m.timer.StartedAt(),
		EndedAtUTC:     m.timer.EndedAt(),
		ElapsedSeconds: m.timer.Elapsed(),
	}
}

// LiveOthers returns the live activity of every other user.
func (m *Manager) LiveOthers() ([]activity.Record, error) {
	return m.live.ListOthers(m.userKey)
}

// Today returns the caller's completed tasks for today, newest first.
func (m *Manager) Today(limit int) ([]record.CompletedTask, error) {
	return m.done.LoadRecent(m.userKey, limit)
}

// TodayAll returns everyone's completed tasks for today, newest first.
func (m *Manager) TodayAll(limit int) ([]record.CompletedTask, error) {
	return m.done.LoadRecent("", limit)
}

// History returns every completed task in the store, newest first.
func (m *Manager) History() ([]record.CompletedTask, error) {
	return m.done.LoadAll()
}

// Catalog exposes the loaded task catalog.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Login returns the resolved OS login.
func (m *Manager) Login() string {
	return m.login
}

// FullName returns the directory full name for the login.
func (m *Manager) FullName() string {
	return m.fullName
}

// UserKey returns the sanitized store key for the login.
func (m *Manager) UserKey() string {
	return m.userKey
}

func (m *Manager) clearSelections() {
	m.taskName = ""
	m.cadence = ""
	m.account = ""
	m.coveringFor = ""
	m.notes = ""
	m.partiallyComplete = false
}

func (m *Manager) persist() error {
	return m.session.Update(func(sess *state.Session) error {
		sess.Timer = m.timer.Snapshot()
		sess.TaskName = m.taskName
		sess.TaskCadence = m.cadence
		sess.Account = m.account
		sess.CoveringFor = m.coveringFor
		sess.Notes = m.notes
		sess.PartiallyComplete = m.partiallyComplete
		return nil
	})
}

func (m *Manager) liveRecord() activity.Record {
	rec := activity.Record{
		UserKey:       m.userKey,
		UserLogin:     m.login,
		FullName:      m.fullName,
		TaskName:      m.taskName,
		TaskCadence:   m.cadence,
		CompanyGroup:  m.account,
		CoveringFor:   m.coveringFor,
		Notes:         m.notes,
		StartUTC:      m.timer.StartedAt(),
		State:         m.timer.Phase(),
		PausedSeconds: m.timer.PausedSeconds(),
	}
	if pauseStart := m.timer.PauseStartedAt(); !pauseStart.IsZero() {
		rec.PauseStartUTC = &pauseStart
	}
	return rec
}
