package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/keys"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
)

const (
	userPrefix = "user="
	fileExt    = ".json"

	// recentCacheTTL bounds staleness of the "today" listing. The hot
	// path re-reads at most every 30 seconds.
	recentCacheTTL = 30 * time.Second
)

// Store appends and reads completed task records under a partitioned
// directory tree: user=<key>/year=YYYY/month=MM/day=DD/.
type Store struct {
	dir   string
	clock clock.Clock
	cache *lru.LRU[string, []CompletedTask]
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the wall clock used to resolve "today", for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// NewStore returns a store rooted at dir. Partition directories are
// created as records are appended.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:   dir,
		clock: clock.New(),
		cache: lru.NewLRU[string, []CompletedTask](4, nil, recentCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append durably writes exactly one new record file and returns its path.
// The partition day comes from the record's start instant in the display
// timezone; the filename embeds the Eastern start timestamp plus the first
// eight characters of the TaskID, so same-second submissions by the same
// user cannot collide. The content is written to a temp file and renamed
// into place in one atomic step: a crash mid-write never leaves a
// partially-visible record, and the record must not be reported as
// submitted unless this returns nil.
func (s *Store) Append(task CompletedTask) (string, error) {
	if err := validateForAppend(task); err != nil {
		return "", err
	}

	partitionDir := filepath.Join(s.dir, partitionPath(task))
	if err := os.MkdirAll(partitionDir, 0755); err != nil {
		return "", fmt.Errorf("create partition dir: %w", err)
	}

	path := filepath.Join(partitionDir, fileName(task))
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	tmpFile, err := os.CreateTemp(partitionDir, filepath.Base(path)+".tmp")
	if err != nil {
		return "", fmt.Errorf("create temp record file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("write temp record file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("rename record file: %w", err)
	}

	s.cache.Purge()
	return path, nil
}

// LoadRecent returns up to limit records started today (in the display
// timezone), most recent start first. An empty userKey scans every user's
// today partition; otherwise only that user's. Results may be up to the
// cache TTL stale.
func (s *Store) LoadRecent(userKey string, limit int) ([]CompletedTask, error) {
	cacheKey := "recent/" + userKey
	records, ok := s.cache.Get(cacheKey)
	if !ok {
		dirs, err := s.todayPartitions(userKey)
		if err != nil {
			return nil, err
		}

		records = nil
		for _, dir := range dirs {
			loaded, err := readPartition(dir)
			if err != nil {
				return nil, err
			}
			records = append(records, loaded...)
		}

		sort.Slice(records, func(i, j int) bool {
			return records[i].StartUTC.After(records[j].StartUTC)
		})
		s.cache.Add(cacheKey, records)
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// LoadAll scans the entire partition tree. This is the expensive analytics
// path and is never cached.
func (s *Store) LoadAll() ([]CompletedTask, error) {
	var records []CompletedTask

	err := filepath.WalkDir(s.dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			return nil
		}

		task, err := readRecordFile(path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).
				Warn("skipping unreadable completed task record")
			return nil
		}
		records = append(records, *task)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("walk completed tasks: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartUTC.After(records[j].StartUTC)
	})
	return records, nil
}

func validateForAppend(task CompletedTask) error {
	switch {
	case task.TaskID == "" || len(task.TaskID) < 8:
		return fmt.Errorf("completed task record has no usable id")
	case strings.TrimSpace(task.UserLogin) == "":
		return ErrNoUserLogin
	case strings.TrimSpace(task.TaskName) == "":
		return ErrNoTaskName
	case strings.TrimSpace(task.TaskCadence) == "":
		return ErrNoCadence
	case task.StartUTC.IsZero():
		return ErrNoStartInstant
	case task.DurationSeconds < 0:
		return ErrNegativeDuration
	}
	return nil
}

// partitionPath derives user=<key>/year=YYYY/month=MM/day=DD from the
// record's start instant in the display timezone.
func partitionPath(task CompletedTask) string {
	start := timefmt.ToDisplay(task.StartUTC)
	return filepath.Join(
		userPrefix+keys.Sanitize(task.UserLogin),
		fmt.Sprintf("year=%04d", start.Year()),
		fmt.Sprintf("month=%02d", int(start.Month())),
		fmt.Sprintf("day=%02d", start.Day()),
	)
}

func fileName(task CompletedTask) string {
	start := timefmt.ToDisplay(task.StartUTC)
	return fmt.Sprintf("task_%s_%s%s", start.Format("20060102_150405"), task.TaskID[:8], fileExt)
}

// todayPartitions returns existing partition directories for today's date,
// scoped to one user key or (when empty) all users.
func (s *Store) todayPartitions(userKey string) ([]string, error) {
	today := timefmt.ToDisplay(s.clock.Now())
	dayPart := filepath.Join(
		fmt.Sprintf("year=%04d", today.Year()),
		fmt.Sprintf("month=%02d", int(today.Month())),
		fmt.Sprintf("day=%02d", today.Day()),
	)

	if userKey != "" {
		dir := filepath.Join(s.dir, userPrefix+userKey, dayPart)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return nil, nil
		}
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read completed tasks dir: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), userPrefix) {
			continue
		}
		dir := filepath.Join(s.dir, entry.Name(), dayPart)
		if _, err := os.Stat(dir); err == nil {
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

func readPartition(dir string) ([]CompletedTask, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read partition dir: %w", err)
	}

	var records []CompletedTask
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		task, err := readRecordFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logrus.WithError(err).WithField("path", filepath.Join(dir, entry.Name())).
				Warn("skipping unreadable completed task record")
			continue
		}
		records = append(records, *task)
	}
	return records, nil
}

func readRecordFile(path string) (*CompletedTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var task CompletedTask
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return &task, nil
}
