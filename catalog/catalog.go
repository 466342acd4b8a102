// Package catalog loads task, user, and account metadata from a TOML file.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// CadenceOrder is the preference order used when auto-selecting a cadence
// for a task that supports more than one.
var CadenceOrder = []string{"Daily", "Weekly", "Periodic"}

// Catalog holds the task list, the login-to-full-name directory, and the
// account list for a deployment.
type Catalog struct {
	Tasks    []Task            `toml:"task"`
	Users    map[string]string `toml:"users"`
	Accounts []string          `toml:"accounts"`
}

// Task is a single catalog entry. A task may be tracked under more than
// one cadence; Inactive entries are dropped at load time.
type Task struct {
	Name     string   `toml:"name"`
	Cadences []string `toml:"cadences"`
	Inactive bool     `toml:"inactive"`
}

// Load reads and normalizes a catalog file. A missing file is reported as
// ErrNoCatalog; callers treat that as fatal at session start.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file %s: %w", path, ErrNoCatalog)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var cat Catalog
	if _, err := toml.Decode(string(data), &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	cat.normalize()
	return &cat, nil
}

// normalize trims names, drops inactive and empty entries, and title-cases
// cadence values so lookups are case-stable.
func (c *Catalog) normalize() {
	tasks := make([]Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" || t.Inactive {
			continue
		}
		cadences := make([]string, 0, len(t.Cadences))
		for _, cad := range t.Cadences {
			cad = titleCase(cad)
			if cad != "" {
				cadences = append(cadences, cad)
			}
		}
		t.Cadences = cadences
		tasks = append(tasks, t)
	}
	c.Tasks = tasks

	accounts := make([]string, 0, len(c.Accounts))
	seen := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		accounts = append(accounts, a)
	}
	c.Accounts = accounts

	users := make(map[string]string, len(c.Users))
	for login, name := range c.Users {
		login = strings.ToLower(strings.TrimSpace(login))
		name = strings.TrimSpace(name)
		if login == "" || name == "" {
			continue
		}
		users[login] = name
	}
	c.Users = users
}

// TaskNames returns the active task names in file order, deduplicated.
func (c *Catalog) TaskNames() []string {
	names := make([]string, 0, len(c.Tasks))
	seen := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		names = append(names, t.Name)
	}
	return names
}

// HasTask reports whether name is an active catalog task.
func (c *Catalog) HasTask(name string) bool {
	for _, t := range c.Tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Cadences returns the cadences available for a task, ordered by
// CadenceOrder with any non-standard values appended in file order.
func (c *Catalog) Cadences(taskName string) []string {
	available := make(map[string]bool)
	var extra []string
	for _, t := range c.Tasks {
		if t.Name != taskName {
			continue
		}
		for _, cad := range t.Cadences {
			if available[cad] {
				continue
			}
			available[cad] = true
			if !isStandardCadence(cad) {
				extra = append(extra, cad)
			}
		}
	}

	out := make([]string, 0, len(available))
	for _, cad := range CadenceOrder {
		if available[cad] {
			out = append(out, cad)
		}
	}
	return append(out, extra...)
}

// DefaultCadence returns the preferred cadence for a task, following
// CadenceOrder. ok is false when the task has no usable cadence.
func (c *Catalog) DefaultCadence(taskName string) (cadence string, ok bool) {
	cadences := c.Cadences(taskName)
	if len(cadences) == 0 {
		return "", false
	}
	return cadences[0], true
}

// ValidCadence reports whether cadence is offered for the given task.
func (c *Catalog) ValidCadence(taskName, cadence string) bool {
	for _, cad := range c.Cadences(taskName) {
		if cad == cadence {
			return true
		}
	}
	return false
}

// FullNameFor maps an OS login to the directory full name. Unknown logins
// fall back to the login itself.
func (c *Catalog) FullNameFor(login string) string {
	key := strings.ToLower(strings.TrimSpace(login))
	if name, ok := c.Users[key]; ok {
		return name
	}
	return login
}

// FullNames returns every directory full name, sorted and unique.
func (c *Catalog) FullNames() []string {
	seen := make(map[string]bool, len(c.Users))
	names := make([]string, 0, len(c.Users))
	for _, name := range c.Users {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasAccount reports whether name is a known account.
func (c *Catalog) HasAccount(name string) bool {
	for _, a := range c.Accounts {
		if a == name {
			return true
		}
	}
	return false
}

func isStandardCadence(cadence string) bool {
	for _, cad := range CadenceOrder {
		if cad == cadence {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
