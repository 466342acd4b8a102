package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
	"github.com/CNA-DataTeam/CNA-Logistics-App/session"
	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

var (
	submitDuration string
	submitPartial  bool
	submitYes      bool

	// submitPrompter and submitInteractive are replaced in tests.
	submitPrompter    Prompter = StdioPrompter{}
	submitInteractive          = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Record the ended task as completed",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&submitDuration, "duration", "", "Override the recorded duration (H:MM:SS or H:MM)")
	submitCmd.Flags().BoolVar(&submitPartial, "partial", false, "Mark the task as partially complete")
	submitCmd.Flags().BoolVarP(&submitYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	// Guard before prompting so an empty submit fails immediately instead
	// of asking the user to confirm a blank record.
	status := m.Status()
	if status.Phase != timer.PhaseEnded {
		return session.ErrNotEnded
	}

	if !submitYes && submitInteractive() {
		duration := timefmt.FormatHMS(status.ElapsedSeconds)
		if submitDuration != "" {
			duration = submitDuration
		}
		message := fmt.Sprintf("Submit %s (%s, %s)?", status.TaskName, status.Cadence, duration)
		confirmed, err := submitPrompter.Confirm(message)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if !confirmed {
			fmt.Println("Submission cancelled")
			return nil
		}
	}

	result, err := m.Submit(session.SubmitOptions{
		EditedDuration:    submitDuration,
		PartiallyComplete: submitPartial,
	})
	if err != nil {
		return err
	}

	if result.UsedFallbackDuration {
		fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf(
			"could not parse duration %q; recorded the computed elapsed time instead", submitDuration)))
	}

	rec := result.Record
	fmt.Printf("%s %s (%s, %s)\n", ui.Success("Recorded"),
		rec.TaskName, rec.TaskCadence, timefmt.FormatHMS(rec.DurationSeconds))
	return nil
}
