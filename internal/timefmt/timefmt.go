// Package timefmt converts between UTC instants, the Eastern display
// timezone, and the fixed-width duration strings the tracker shows.
//
// All stored timestamps are UTC. Eastern time is used only for display and
// for deriving the calendar-day partition of a completed record.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// DisplayZoneName is the IANA name of the display timezone.
const DisplayZoneName = "America/New_York"

var eastern = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation(DisplayZoneName)
	if err != nil {
		// Unreachable with the embedded tzdata.
		panic(fmt.Sprintf("load display timezone: %v", err))
	}
	return loc
}

// DisplayZone returns the Eastern display timezone.
func DisplayZone() *time.Location {
	return eastern
}

// ToDisplay converts an instant to the display timezone. Zero instants pass
// through unchanged so optional timestamps stay absent.
func ToDisplay(instant time.Time) time.Time {
	if instant.IsZero() {
		return instant
	}
	return instant.In(eastern)
}

// FormatHMS renders seconds as "HH:MM:SS". Negative input is clamped to
// zero. The hour field is zero-padded to two digits but never truncated, so
// durations past 99 hours widen the field instead of wrapping.
func FormatHMS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatHMParts renders seconds as separate "HH" and "MM" strings, for
// callers that style the two fields independently. Negative input is
// clamped to zero.
func FormatHMParts(seconds int64) (string, string) {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d", seconds/3600), fmt.Sprintf("%02d", (seconds%3600)/60)
}

// ParseHMS parses "HH:MM:SS" or "HH:MM" into seconds. It returns -1 on any
// malformed input (wrong token count, non-numeric or negative components).
// Callers treat the sentinel as "keep the previously computed duration"; a
// bad edit never blocks submission.
func ParseHMS(text string) int64 {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return -1
	}

	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseInt(part, 10, 64)
		if err != nil || value < 0 {
			return -1
		}
		values = append(values, value)
	}

	seconds := values[0]*3600 + values[1]*60
	if len(values) == 3 {
		seconds += values[2]
	}
	return seconds
}

// FormatTimeAgo renders how long ago an instant was, relative to now:
// "less than a minute ago", "N min ago", "N hr ago", or "N day(s) ago".
// Zero instants render as "".
func FormatTimeAgo(instant time.Time, now time.Time) string {
	if instant.IsZero() {
		return ""
	}

	seconds := int64(now.Sub(instant).Seconds())
	switch {
	case seconds < 60:
		return "less than a minute ago"
	case seconds < 3600:
		return fmt.Sprintf("%d min ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hr ago", seconds/3600)
	}

	days := seconds / 86400
	if days > 1 {
		return fmt.Sprintf("%d days ago", days)
	}
	return "1 day ago"
}

// FormatClock renders an instant as a lowercase Eastern wall-clock time,
// e.g. "9:05 am".
func FormatClock(instant time.Time) string {
	if instant.IsZero() {
		return ""
	}
	return strings.ToLower(ToDisplay(instant).Format("3:04 PM"))
}
