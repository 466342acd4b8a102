// Package main implements the tasktracker CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/config"
	"github.com/CNA-DataTeam/CNA-Logistics-App/session"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tasktracker",
	Short:         "Track working time on recurring team tasks",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// openManager loads config and opens a session manager for the current
// OS user, restoring any in-progress task.
func openManager() (*session.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return session.Open(cfg, session.OpenOptions{})
}
