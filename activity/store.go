package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

const (
	filePrefix = "user="
	fileSuffix = ".json"

	// listCacheTTL bounds how stale a cross-user listing may be. Staleness
	// is acceptable here; blocking readers on every scan is not.
	listCacheTTL = 15 * time.Second

	listCacheKey = "all"
)

// Store reads and writes live activity records in a shared directory.
type Store struct {
	dir   string
	cache *lru.LRU[string, []Record]
}

// Option configures a Store.
type Option func(*Store)

// WithCacheTTL overrides the listing cache TTL, for tests.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.cache = lru.NewLRU[string, []Record](1, nil, ttl)
	}
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on first write.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:   dir,
		cache: lru.NewLRU[string, []Record](1, nil, listCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish upserts the record for its user key. It is idempotent: publishing
// twice yields one record, and the write atomically replaces any previous
// file so readers never observe a partial record.
func (s *Store) Publish(rec Record) error {
	if rec.UserKey == "" {
		return ErrNoUserKey
	}
	if strings.TrimSpace(rec.TaskName) == "" {
		return ErrNoTaskName
	}

	rec.IsCoveringFor = strings.TrimSpace(rec.CoveringFor) != ""
	rec.Notes = strings.TrimSpace(rec.Notes)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create live activity dir: %w", err)
	}
	if err := s.writeRecord(rec); err != nil {
		return err
	}

	s.cache.Remove(listCacheKey)
	return nil
}

// UpdatePhase partially updates only the mutable timing fields of an
// existing record. It is a no-op when no record exists for the key.
func (s *Store) UpdatePhase(userKey string, phase timer.Phase, pausedSeconds int64, pauseStartUTC *time.Time) error {
	if userKey == "" {
		return ErrNoUserKey
	}

	rec, err := s.LoadOwn(userKey)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	rec.State = phase
	rec.PausedSeconds = pausedSeconds
	rec.PauseStartUTC = pauseStartUTC
	if err := s.writeRecord(*rec); err != nil {
		return err
	}

	s.cache.Remove(listCacheKey)
	return nil
}

// LoadOwn reads the caller's own record, used once per session start to
// restore timer state after a reload. Returns nil when no record exists.
func (s *Store) LoadOwn(userKey string) (*Record, error) {
	if userKey == "" {
		return nil, ErrNoUserKey
	}

	rec, err := readRecord(s.userPath(userKey))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load own live activity: %w", err)
	}
	return rec, nil
}

// Delete removes the record for the key. Deleting an absent record is a
// no-op, not an error.
func (s *Store) Delete(userKey string) error {
	if userKey == "" {
		return ErrNoUserKey
	}

	if err := os.Remove(s.userPath(userKey)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete live activity: %w", err)
	}

	s.cache.Remove(listCacheKey)
	return nil
}

// ListOthers returns every live record except the caller's own, ordered by
// start instant ascending. Results may be up to the cache TTL stale.
// Unreadable files are skipped with a logged warning rather than failing
// the whole listing.
func (s *Store) ListOthers(excludeUserKey string) ([]Record, error) {
	all, err := s.listAll()
	if err != nil {
		return nil, err
	}

	others := make([]Record, 0, len(all))
	for _, rec := range all {
		if rec.UserKey == excludeUserKey {
			continue
		}
		others = append(others, rec)
	}
	return others, nil
}

func (s *Store) listAll() ([]Record, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached, nil
	}

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read live activity dir: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		rec, err := readRecord(filepath.Join(s.dir, name))
		if err != nil {
			// A record may be mid-replace or corrupt; one bad file must not
			// take down the whole listing.
			logrus.WithError(err).WithField("path", filepath.Join(s.dir, name)).
				Warn("skipping unreadable live activity record")
			continue
		}
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartUTC.Before(records[j].StartUTC)
	})

	s.cache.Add(listCacheKey, records)
	return records, nil
}

func (s *Store) userPath(userKey string) string {
	return filepath.Join(s.dir, filePrefix+userKey+fileSuffix)
}

func readRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return &rec, nil
}

// writeRecord writes the full record content to a temp file and atomically
// renames it into place, so a crash mid-write never leaves a partial file.
func (s *Store) writeRecord(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	path := s.userPath(rec.UserKey)
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp record file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp record file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename record file: %w", err)
	}

	return nil
}
