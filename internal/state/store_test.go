package state

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

func TestStore_LoadEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load empty session: %v", err)
	}
	if sess == nil {
		t.Fatal("expected non-nil session")
	}
	if !sess.Empty() {
		t.Errorf("expected empty session, got phase %q", sess.Timer.Phase)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStore(t.TempDir())

	started := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)
	sess := &Session{
		Timer: timer.Snapshot{
			Phase:         timer.PhasePaused,
			StartedAtUTC:  started,
			PauseStartUTC: started.Add(5 * time.Minute),
			PausedSeconds: 30,
		},
		TaskName:    "Invoice review",
		TaskCadence: "Daily",
		Account:     "Northwind",
		CoveringFor: "Sam Smith",
		Notes:       "covering front desk",
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if loaded.Timer.Phase != timer.PhasePaused {
		t.Errorf("expected paused phase, got %q", loaded.Timer.Phase)
	}
	if !loaded.Timer.StartedAtUTC.Equal(started) {
		t.Errorf("expected start %v, got %v", started, loaded.Timer.StartedAtUTC)
	}
	if loaded.Timer.PausedSeconds != 30 {
		t.Errorf("expected 30 paused seconds, got %d", loaded.Timer.PausedSeconds)
	}
	if loaded.TaskName != "Invoice review" || loaded.TaskCadence != "Daily" {
		t.Errorf("selections not restored: %+v", loaded)
	}
	if loaded.Empty() {
		t.Error("restored session should not be empty")
	}
}

func TestStore_SaveSkipsUnchangedContent(t *testing.T) {
	store := NewStore(t.TempDir())
	sess := &Session{TaskName: "Inbox triage"}

	if err := store.Save(sess); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	before, err := os.Stat(store.sessionPath())
	if err != nil {
		t.Fatalf("failed to stat session file: %v", err)
	}

	if err := store.Save(sess); err != nil {
		t.Fatalf("failed to re-save session: %v", err)
	}
	after, err := os.Stat(store.sessionPath())
	if err != nil {
		t.Fatalf("failed to stat session file: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unchanged content should not rewrite the file")
	}
}

func TestStore_Update(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.Update(func(sess *Session) error {
		sess.TaskName = "Month-end close"
		sess.Timer.Phase = timer.PhaseRunning
		return nil
	})
	if err != nil {
		t.Fatalf("failed to update session: %v", err)
	}

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if sess.TaskName != "Month-end close" {
		t.Errorf("expected updated task name, got %q", sess.TaskName)
	}
}

func TestStore_UpdateErrorDiscardsChanges(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save(&Session{TaskName: "Invoice review"}); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	wantErr := errors.New("boom")
	err := store.Update(func(sess *Session) error {
		sess.TaskName = "changed"
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected update error, got %v", err)
	}

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if sess.TaskName != "Invoice review" {
		t.Errorf("failed update should not persist, got %q", sess.TaskName)
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore(t.TempDir())

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Update(func(sess *Session) error {
				sess.Timer.PausedSeconds++
				return nil
			})
			if err != nil {
				t.Errorf("concurrent update failed: %v", err)
			}
		}()
	}
	wg.Wait()

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if sess.Timer.PausedSeconds != workers {
		t.Errorf("expected %d increments, got %d", workers, sess.Timer.PausedSeconds)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save(&Session{TaskName: "Invoice review"}); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if _, err := os.Stat(store.sessionPath()); !os.IsNotExist(err) {
		t.Error("expected session file to be removed")
	}

	// Clearing again is a no-op.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load after clear: %v", err)
	}
	if !sess.Empty() {
		t.Error("expected empty session after clear")
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Fatal("expected error loading corrupt session file")
	}
}
