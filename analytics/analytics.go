// Package analytics computes summary statistics over completed task
// records: KPI totals, per-day and per-task groupings, and a
// user-versus-team comparison.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/timefmt"
	"github.com/CNA-DataTeam/CNA-Logistics-App/record"
)

// Filter narrows a record set before summarizing. Zero fields match
// everything.
type Filter struct {
	// FullName keeps only records by one user.
	FullName string
	// Tasks keeps only the named tasks.
	Tasks []string
	// Cadences keeps only the named cadences.
	Cadences []string
	// From and To bound the start date, inclusive, in the display
	// timezone. A zero bound is open.
	From time.Time
	To   time.Time
}

// Summary holds the KPI tile values for a record set.
type Summary struct {
	TaskCount      int
	TotalSeconds   int64
	AverageSeconds float64
	PartialCount   int
	PartialRate    float64
}

// DayCount is the number of tasks completed on one display-timezone day.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Total is a grouped duration sum.
type Total struct {
	Key     string
	Seconds int64
}

// Comparison contrasts one user's total time with the rest of the team.
type Comparison struct {
	UserSeconds int64
	TeamSeconds int64
	// OtherAverageSeconds is the team total averaged over the other
	// users' records. Zero when the user has no peers in the set.
	OtherAverageSeconds float64
}

// Apply returns the records matching the filter, preserving order.
func Apply(tasks []record.CompletedTask, f Filter) []record.CompletedTask {
	out := make([]record.CompletedTask, 0, len(tasks))
	for _, t := range tasks {
		if f.FullName != "" && t.FullName != f.FullName {
			continue
		}
		if len(f.Tasks) > 0 && !contains(f.Tasks, t.TaskName) {
			continue
		}
		if len(f.Cadences) > 0 && !contains(f.Cadences, t.TaskCadence) {
			continue
		}
		day := displayDate(t.StartUTC)
		if !f.From.IsZero() && day.Before(dateOnly(f.From)) {
			continue
		}
		if !f.To.IsZero() && day.After(dateOnly(f.To)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize computes the KPI totals for a record set.
func Summarize(tasks []record.CompletedTask) Summary {
	s := Summary{TaskCount: len(tasks)}
	for _, t := range tasks {
		s.TotalSeconds += t.DurationSeconds
		if t.PartiallyComplete {
			s.PartialCount++
		}
	}
	if s.TaskCount > 0 {
		s.AverageSeconds = float64(s.TotalSeconds) / float64(s.TaskCount)
		s.PartialRate = float64(s.PartialCount) / float64(s.TaskCount)
	}
	return s
}

// TasksPerDay counts completed tasks per display-timezone day, ascending
// by date.
func TasksPerDay(tasks []record.CompletedTask) []DayCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[displayDate(t.StartUTC).Format("2006-01-02")]++
	}

	out := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		out = append(out, DayCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SecondsByCadence sums durations per cadence, largest first.
func SecondsByCadence(tasks []record.CompletedTask) []Total {
	return groupSeconds(tasks, func(t record.CompletedTask) string { return t.TaskCadence }, 0)
}

// TopTasksBySeconds sums durations per task and returns the top n,
// largest first.
func TopTasksBySeconds(tasks []record.CompletedTask, n int) []Total {
	return groupSeconds(tasks, func(t record.CompletedTask) string { return t.TaskName }, n)
}

// Compare contrasts fullName's total time against the rest of the set.
func Compare(tasks []record.CompletedTask, fullName string) Comparison {
	var c Comparison
	otherRecords := 0
	for _, t := range tasks {
		c.TeamSeconds += t.DurationSeconds
		if t.FullName == fullName {
			c.UserSeconds += t.DurationSeconds
		} else {
			otherRecords++
		}
	}
	if otherRecords > 0 {
		c.OtherAverageSeconds = float64(c.TeamSeconds) / float64(otherRecords)
	}
	return c
}

// FormatDuration renders a duration by magnitude: whole seconds under 90
// seconds, minutes to one decimal under an hour, hours to two decimals
// beyond that.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 90:
		return fmt.Sprintf("%d sec", int64(seconds))
	case seconds < 3600:
		return minimalFloat(seconds/60, 1) + " min"
	default:
		return minimalFloat(seconds/3600, 2) + " hr"
	}
}

func groupSeconds(tasks []record.CompletedTask, key func(record.CompletedTask) string, n int) []Total {
	sums := make(map[string]int64)
	for _, t := range tasks {
		sums[key(t)] += t.DurationSeconds
	}

	out := make([]Total, 0, len(sums))
	for k, seconds := range sums {
		out = append(out, Total{Key: k, Seconds: seconds})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seconds != out[j].Seconds {
			return out[i].Seconds > out[j].Seconds
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// minimalFloat rounds to the given decimals and drops trailing zeros, but
// always keeps at least one decimal so "2" renders as "2.0".
func minimalFloat(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	rounded := math.Round(v*scale) / scale
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if rounded == math.Trunc(rounded) {
		s = strconv.FormatFloat(rounded, 'f', 1, 64)
	}
	return s
}

func displayDate(utc time.Time) time.Time {
	return dateOnly(timefmt.ToDisplay(utc))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
