package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestFromHistoryMarksToday(t *testing.T) {
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
	days := FromHistory(now, []int{0, 1, 1})
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if !days[2].IsToday || days[2].Date.Day() != 5 {
		t.Fatalf("expected last day to be today, got %+v", days[2])
	}
	if days[0].Level != 0 || days[1].Level != 1 {
		t.Fatalf("unexpected levels: %+v", days)
	}
}

func TestRenderAlignsWeeks(t *testing.T) {
	// 2025-03-02 is a Sunday.
	now := time.Date(2025, time.March, 8, 10, 0, 0, 0, time.Local)
	days := FromHistory(now, make([]int, 7))
	out := Render(days, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one week, got %q", out)
	}
	if !strings.HasPrefix(lines[1], " 2  3") {
		t.Fatalf("expected week to start on Sunday the 2nd, got %q", lines[1])
	}
}
