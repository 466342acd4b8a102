package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
)

var liveJSON bool

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Show what everyone else is working on right now",
	Args:  cobra.NoArgs,
	RunE:  runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveCmd.Flags().BoolVar(&liveJSON, "json", false, "Output as JSON")
}

func runLive(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	records, err := m.LiveOthers()
	if err != nil {
		return err
	}

	if liveJSON {
		return printJSON(records)
	}

	if len(records) == 0 {
		fmt.Println(ui.Muted("No live activity from others"))
		return nil
	}

	now := time.Now().UTC()
	tbl := ui.NewTable("USER", "TASK", "CADENCE", "STATE", "STARTED", "NOTES")
	for _, rec := range records {
		tbl.Row(
			rec.DisplayName(),
			ui.Clip(rec.TaskName),
			rec.TaskCadence,
			ui.PhaseLabel(rec.State),
			timefmt.FormatTimeAgo(rec.StartUTC, now),
			ui.Clip(rec.Notes),
		)
	}
	fmt.Print(tbl.Render())
	return nil
}
