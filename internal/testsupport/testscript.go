package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/config"
)

var (
	buildOnce   sync.Once
	trackerPath string
	buildErr    error
)

// ScriptCatalog is the catalog file written into every testscript data root.
const ScriptCatalog = `
accounts = ["Northwind", "Contoso"]

[[task]]
name = "Invoice review"
cadences = ["Daily", "Weekly"]

[[task]]
name = "Month-end close"
cadences = ["Periodic"]

[users]
jdoe = "Jane Doe"
`

// BuildTracker builds the tasktracker binary once and returns its path.
func BuildTracker(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tasktracker-bin-")
		if err != nil {
			buildErr = err
			return
		}

		trackerPath = filepath.Join(binDir, "tasktracker")
		cmd := exec.Command("go", "build", "-o", trackerPath, "./cmd/tasktracker")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tasktracker: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return trackerPath
}

// SetupScriptEnv configures common environment variables for testscript:
// an isolated HOME, a data root with a catalog, and a local state dir.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TRACKER", BuildTracker(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	dataRoot := filepath.Join(env.WorkDir, "data")
	if err := os.MkdirAll(dataRoot, 0o755); err != nil {
		return err
	}
	catalogPath := filepath.Join(dataRoot, "catalog.toml")
	if err := os.WriteFile(catalogPath, []byte(ScriptCatalog), 0o644); err != nil {
		return err
	}

	env.Setenv(config.EnvDataRoot, dataRoot)
	env.Setenv(config.EnvCatalog, catalogPath)
	env.Setenv(config.EnvStateDir, filepath.Join(env.WorkDir, "state"))
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
