package ui

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable("TASK", "STATE")
	tbl.Row("Invoice review", "running")
	tbl.Row("Inbox triage", "paused")

	expected := "TASK            STATE\n" +
		"Invoice review  running\n" +
		"Inbox triage    paused\n"
	if got := tbl.Render(); got != expected {
		t.Fatalf("expected aligned table output, got %q", got)
	}
}

func TestTableMeasuresStyledCellsByVisibleWidth(t *testing.T) {
	tbl := NewTable("STATE", "TASK")
	tbl.Row("\x1b[1;32mrunning\x1b[0m", "Invoice review")
	tbl.Row("paused", "Inbox triage")

	expected := "STATE    TASK\n" +
		"\x1b[1;32mrunning\x1b[0m  Invoice review\n" +
		"paused   Inbox triage\n"
	if got := tbl.Render(); got != expected {
		t.Fatalf("expected escape codes excluded from widths, got %q", got)
	}
}

func TestTableRowPadsAndDropsCells(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.Row("1")
	tbl.Row("1", "2", "3")

	expected := "A  B\n" +
		"1  \n" +
		"1  2\n"
	if got := tbl.Render(); got != expected {
		t.Fatalf("expected missing cells empty and extras dropped, got %q", got)
	}
}

func TestTableFlattensLineBreaks(t *testing.T) {
	tbl := NewTable("COL")
	tbl.Row("Hello\nWorld\r\nAgain\tTab")

	expected := "COL\nHello World Again Tab\n"
	if got := tbl.Render(); got != expected {
		t.Fatalf("expected line breaks folded to spaces, got %q", got)
	}
}

func TestClipCountsRunes(t *testing.T) {
	value := strings.Repeat("a", clipWidth-1) + "é"

	if got := Clip(value); got != value {
		t.Fatalf("expected value to remain unclipped, got %q", got)
	}
}

func TestClipShortensLongValues(t *testing.T) {
	got := Clip(strings.Repeat("a", clipWidth+10))

	if n := len([]rune(got)); n != clipWidth {
		t.Fatalf("expected width %d, got %d in %q", clipWidth, n, got)
	}
	if !strings.HasSuffix(got, clipEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestClipFlattensLineBreaks(t *testing.T) {
	if got := Clip("Hello\nWorld\r\nAgain\tTab"); got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks folded to spaces, got %q", got)
	}
}
