package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CNA-DataTeam/CNA-Logistics-App/analytics"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/ui"
)

var (
	statsUser     string
	statsTasks    []string
	statsCadences []string
	statsFrom     string
	statsTo       string
	statsJSON     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize completed task history",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsUser, "user", "", "Filter by full name")
	statsCmd.Flags().StringArrayVar(&statsTasks, "task", nil, "Filter by task name (repeatable)")
	statsCmd.Flags().StringArrayVar(&statsCadences, "cadence", nil, "Filter by cadence (repeatable)")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Start date, inclusive (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "End date, inclusive (YYYY-MM-DD)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}

	filter := analytics.Filter{
		FullName: statsUser,
		Tasks:    statsTasks,
		Cadences: statsCadences,
	}
	if filter.From, err = parseStatsDate(statsFrom); err != nil {
		return err
	}
	if filter.To, err = parseStatsDate(statsTo); err != nil {
		return err
	}

	history, err := m.History()
	if err != nil {
		return err
	}
	filtered := analytics.Apply(history, filter)
	summary := analytics.Summarize(filtered)

	if statsJSON {
		return printJSON(struct {
			Summary   analytics.Summary
			PerDay    []analytics.DayCount
			ByCadence []analytics.Total
			TopTasks  []analytics.Total
		}{
			Summary:   summary,
			PerDay:    analytics.TasksPerDay(filtered),
			ByCadence: analytics.SecondsByCadence(filtered),
			TopTasks:  analytics.TopTasksBySeconds(filtered, 10),
		})
	}

	if summary.TaskCount == 0 {
		fmt.Println("No completed tasks match")
		return nil
	}

	fmt.Println(ui.Header("Summary"))
	fmt.Printf("Tasks:         %d\n", summary.TaskCount)
	fmt.Printf("Total time:    %s\n", analytics.FormatDuration(float64(summary.TotalSeconds)))
	fmt.Printf("Avg time/task: %s\n", analytics.FormatDuration(summary.AverageSeconds))
	if summary.PartialCount > 0 {
		fmt.Printf("Partial:       %d (%.0f%%)\n", summary.PartialCount, summary.PartialRate*100)
	}

	if byCadence := analytics.SecondsByCadence(filtered); len(byCadence) > 0 {
		fmt.Println()
		fmt.Println(ui.Header("Time by cadence"))
		tbl := ui.NewTable("CADENCE", "TIME")
		for _, total := range byCadence {
			tbl.Row(total.Key, analytics.FormatDuration(float64(total.Seconds)))
		}
		fmt.Print(tbl.Render())
	}

	if topTasks := analytics.TopTasksBySeconds(filtered, 10); len(topTasks) > 0 {
		fmt.Println()
		fmt.Println(ui.Header("Top tasks"))
		tbl := ui.NewTable("TASK", "TIME")
		for _, total := range topTasks {
			tbl.Row(ui.Clip(total.Key), analytics.FormatDuration(float64(total.Seconds)))
		}
		fmt.Print(tbl.Render())
	}

	if statsUser != "" {
		comparison := analytics.Compare(analytics.Apply(history, analytics.Filter{
			Tasks:    filter.Tasks,
			Cadences: filter.Cadences,
			From:     filter.From,
			To:       filter.To,
		}), statsUser)
		fmt.Println()
		fmt.Println(ui.Header("Versus team"))
		fmt.Printf("You:          %s\n", analytics.FormatDuration(float64(comparison.UserSeconds)))
		fmt.Printf("Team total:   %s\n", analytics.FormatDuration(float64(comparison.TeamSeconds)))
		if comparison.OtherAverageSeconds > 0 {
			fmt.Printf("Peer average: %s\n", analytics.FormatDuration(comparison.OtherAverageSeconds))
		}
	}

	return nil
}

func parseStatsDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, timefmt.DisplayZone())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return parsed, nil
}
