package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Store manages the session file with locking.
type Store struct {
	dir string
}

// NewStore creates a session store using the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// sessionPath returns the path to the session file.
func (s *Store) sessionPath() string {
	return filepath.Join(s.dir, "session.json")
}

// lockPath returns the path to the lock file.
func (s *Store) lockPath() string {
	return filepath.Join(s.dir, "session.lock")
}

// Load reads the session from disk. Returns an empty session if the file
// doesn't exist.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.sessionPath())
	if os.IsNotExist(err) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &sess, nil
}

// Save writes the session to disk. The write is skipped when the content
// is unchanged and is otherwise atomic via a temp file.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if existing, err := os.ReadFile(s.sessionPath()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read session file: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.sessionPath())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := os.Rename(name, s.sessionPath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename session file: %w", err)
	}

	return nil
}

// Update atomically reads, modifies, and writes the session with file
// locking.
func (s *Store) Update(fn func(sess *Session) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	sess, err := s.Load()
	if err != nil {
		return err
	}

	if err := fn(sess); err != nil {
		return err
	}

	return s.Save(sess)
}

// Clear removes the session file. Missing files are not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.sessionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
