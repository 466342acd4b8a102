package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/config"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/testsupport"
	"github.com/CNA-DataTeam/CNA-Logistics-App/session"
)

type promptFunc func(message string) (bool, error)

func (f promptFunc) Confirm(message string) (bool, error) { return f(message) }

func setupSubmitEnv(t *testing.T) {
	t.Helper()

	testsupport.SetupTestHome(t)

	dataRoot := t.TempDir()
	catalogPath := filepath.Join(dataRoot, "catalog.toml")
	if err := os.WriteFile(catalogPath, []byte(testsupport.ScriptCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	t.Setenv(config.EnvDataRoot, dataRoot)
	t.Setenv(config.EnvCatalog, catalogPath)
	t.Setenv(config.EnvStateDir, filepath.Join(dataRoot, "state"))
}

func TestSubmitWithoutEndedTaskFailsBeforePrompting(t *testing.T) {
	setupSubmitEnv(t)

	defer func(prompter Prompter, interactive func() bool) {
		submitPrompter = prompter
		submitInteractive = interactive
	}(submitPrompter, submitInteractive)

	submitInteractive = func() bool { return true }
	prompted := false
	submitPrompter = promptFunc(func(string) (bool, error) {
		prompted = true
		return true, nil
	})

	err := runSubmit(submitCmd, nil)
	if !errors.Is(err, session.ErrNotEnded) {
		t.Fatalf("expected ErrNotEnded, got %v", err)
	}
	if prompted {
		t.Fatal("confirmation prompt shown with no ended task")
	}
}
