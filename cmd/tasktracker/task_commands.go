package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
	"github.com/CNA-DataTeam/CNA-Logistics-App/session"
	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

var (
	startCadence     string
	startAccount     string
	startCoveringFor string
	startNotes       string

	statusJSON bool
)

var startCmd = &cobra.Command{
	Use:   "start <task>",
	Short: "Start timing a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStart,
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running task",
	Args:  cobra.NoArgs,
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the paused task",
	Args:  cobra.NoArgs,
	RunE:  runResume,
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish the active task (submit it afterwards)",
	Args:  cobra.NoArgs,
	RunE:  runEnd,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the current task without recording it",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current task and elapsed time",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var notesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Set notes on the current task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotes,
}

func init() {
	rootCmd.AddCommand(startCmd, pauseCmd, resumeCmd, endCmd, resetCmd, statusCmd, notesCmd)

	startCmd.Flags().StringVar(&startCadence, "cadence", "", "Cadence (Daily, Weekly, Periodic); defaults to the task's preferred cadence")
	startCmd.Flags().StringVar(&startAccount, "account", "", "Account to attribute the task to")
	startCmd.Flags().StringVar(&startCoveringFor, "covering-for", "", "Colleague this task is covered for")
	startCmd.Flags().StringVar(&startNotes, "notes", "", "Free-form notes")

	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}

func runStart(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	taskName := strings.Join(args, " ")
	err = m.Start(taskName, session.StartOptions{
		Cadence:     startCadence,
		Account:     startAccount,
		CoveringFor: startCoveringFor,
		Notes:       startNotes,
	})
	if err != nil {
		return err
	}

	status := m.Status()
	fmt.Printf("Started %s (%s)\n", status.TaskName, status.Cadence)
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	if err := m.Pause(); err != nil {
		return err
	}
	fmt.Printf("Paused at %s\n", timefmt.FormatHMS(m.Status().ElapsedSeconds))
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	if err := m.Resume(); err != nil {
		return err
	}
	fmt.Printf("Resumed at %s\n", timefmt.FormatHMS(m.Status().ElapsedSeconds))
	return nil
}

func runEnd(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	if err := m.End(); err != nil {
		return err
	}
	status := m.Status()
	fmt.Printf("Ended %s at %s; run 'tasktracker submit' to record it\n",
		status.TaskName, timefmt.FormatHMS(status.ElapsedSeconds))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	if err := m.Reset(); err != nil {
		return err
	}
	fmt.Println("Reset; nothing was recorded")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	status := m.Status()

	if statusJSON {
		return printJSON(status)
	}

	if status.Phase == timer.PhaseIdle {
		fmt.Println(ui.Muted("No active task"))
		return nil
	}

	fmt.Printf("%s  %s\n", ui.PhaseLabel(status.Phase), status.TaskName)
	fmt.Printf("Cadence:  %s\n", status.Cadence)
	if status.Account != "" {
		fmt.Printf("Account:  %s\n", status.Account)
	}
	if status.CoveringFor != "" {
		fmt.Printf("Covering: %s\n", status.CoveringFor)
	}
	if status.Notes != "" {
		fmt.Printf("Notes:    %s\n", status.Notes)
	}
	fmt.Printf("Started:  %s\n", timefmt.FormatClock(status.StartedAtUTC))
	fmt.Printf("Elapsed:  %s\n", timefmt.FormatHMS(status.ElapsedSeconds))
	return nil
}

func runNotes(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	return m.SetNotes(strings.Join(args, " "))
}
