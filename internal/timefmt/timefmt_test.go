package timefmt

import (
	"testing"
	"time"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"negative clamps to zero", -5, "00:00:00"},
		{"seconds only", 59, "00:00:59"},
		{"minutes", 61, "00:01:01"},
		{"hours", 7215, "02:00:15"},
		{"hours keep growing past two digits", 100*3600 + 62, "100:01:02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHMS(tt.seconds); got != tt.want {
				t.Errorf("FormatHMS(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatHMParts(t *testing.T) {
	hh, mm := FormatHMParts(3*3600 + 42*60 + 59)
	if hh != "03" || mm != "42" {
		t.Errorf("FormatHMParts = (%q, %q), want (03, 42)", hh, mm)
	}

	hh, mm = FormatHMParts(-1)
	if hh != "00" || mm != "00" {
		t.Errorf("FormatHMParts(-1) = (%q, %q), want (00, 00)", hh, mm)
	}
}

func TestParseHMS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"full form", "02:00:15", 7215},
		{"short form", "02:30", 9000},
		{"surrounding whitespace", " 01:00:00 ", 3600},
		{"empty", "", -1},
		{"non-numeric", "abc", -1},
		{"too many tokens", "1:2:3:4", -1},
		{"one token", "90", -1},
		{"negative component", "-1:00:00", -1},
		{"blank component", "1::5", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHMS(tt.input); got != tt.want {
				t.Errorf("ParseHMS(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHMSRoundTripsFormatHMS(t *testing.T) {
	for _, seconds := range []int64{0, 1, 59, 60, 3599, 3600, 7215, 86399, 86400, 123 * 3600} {
		if got := ParseHMS(FormatHMS(seconds)); got != seconds {
			t.Errorf("ParseHMS(FormatHMS(%d)) = %d", seconds, got)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"zero instant", time.Time{}, ""},
		{"just now", now.Add(-30 * time.Second), "less than a minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 min ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hr ago"},
		{"one day singular", now.Add(-25 * time.Hour), "1 day ago"},
		{"days plural", now.Add(-50 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimeAgo(tt.then, now); got != tt.want {
				t.Errorf("FormatTimeAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDisplay(t *testing.T) {
	t.Run("zero passes through", func(t *testing.T) {
		if got := ToDisplay(time.Time{}); !got.IsZero() {
			t.Errorf("ToDisplay(zero) = %v, want zero", got)
		}
	})

	t.Run("converts UTC to Eastern", func(t *testing.T) {
		// 2025-01-15 is EST (UTC-5).
		utc := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
		got := ToDisplay(utc)
		if got.Hour() != 9 || got.Minute() != 30 {
			t.Errorf("ToDisplay = %v, want 09:30 Eastern", got)
		}
		if !got.Equal(utc) {
			t.Error("ToDisplay changed the instant, not just the zone")
		}
	})

	t.Run("summer uses EDT", func(t *testing.T) {
		utc := time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC)
		if got := ToDisplay(utc); got.Hour() != 10 {
			t.Errorf("ToDisplay July hour = %d, want 10 (EDT)", got.Hour())
		}
	})
}

func TestFormatClock(t *testing.T) {
	utc := time.Date(2025, 1, 15, 14, 5, 0, 0, time.UTC)
	if got := FormatClock(utc); got != "9:05 am" {
		t.Errorf("FormatClock = %q, want %q", got, "9:05 am")
	}
	if got := FormatClock(time.Time{}); got != "" {
		t.Errorf("FormatClock(zero) = %q, want empty", got)
	}
}
