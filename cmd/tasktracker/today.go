package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
	"github.com/CNA-DataTeam/CNA-Logistics-App/record"
)

var (
	todayAll   bool
	todayLimit int
	todayJSON  bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List tasks completed today",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayAll, "all", false, "Include everyone's tasks, not just yours")
	todayCmd.Flags().IntVar(&todayLimit, "limit", 50, "Maximum number of tasks to list")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}

func runToday(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	var records []record.CompletedTask
	if todayAll {
		records, err = m.TodayAll(todayLimit)
	} else {
		records, err = m.Today(todayLimit)
	}
	if err != nil {
		return err
	}

	if todayJSON {
		return printJSON(records)
	}

	if len(records) == 0 {
		fmt.Println(ui.Muted("No tasks completed today"))
		return nil
	}

	columns := []string{"TIME", "TASK", "CADENCE", "DURATION", "PARTIAL"}
	if todayAll {
		columns = append([]string{"USER"}, columns...)
	}
	tbl := ui.NewTable(columns...)
	for _, rec := range records {
		row := []string{
			timefmt.FormatClock(rec.StartUTC),
			ui.Clip(rec.TaskName),
			rec.TaskCadence,
			timefmt.FormatHMS(rec.DurationSeconds),
			partialMark(rec.PartiallyComplete),
		}
		if todayAll {
			row = append([]string{rec.DisplayName()}, row...)
		}
		tbl.Row(row...)
	}
	fmt.Print(tbl.Render())
	return nil
}

func partialMark(partial bool) string {
	if partial {
		return "yes"
	}
	return ""
}
