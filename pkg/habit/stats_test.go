package habit

import (
	"testing"
	"time"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		habits []Habit
		want   int
	}{
		{name: "none", habits: nil, want: 0},
		{name: "one of three", habits: []Habit{{Completed: true}, {}, {}}, want: 33},
		{name: "two of three", habits: []Habit{{Completed: true}, {Completed: true}, {}}, want: 67},
		{name: "all", habits: []Habit{{Completed: true}}, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.habits); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	if got := LongestStreak(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := LongestStreak([]Habit{{Streak: 3}, {Streak: 11}, {Streak: 0}}); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
}

func TestWeeklySeries(t *testing.T) {
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	habits := []Habit{
		{History: []int{1, 0, 0, 0, 0, 0, 0, 1}},
		{History: []int{1, 1}},
		{History: nil},
	}
	series := WeeklySeries(habits, now)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	want := []int{0, 0, 0, 0, 0, 1, 2}
	for i, p := range series {
		if p.Completed != want[i] {
			t.Fatalf("day %d: got %d, want %d", i, p.Completed, want[i])
		}
		if p.Total != 3 {
			t.Fatalf("day %d: total %d", i, p.Total)
		}
	}
	if series[6].Label != "Mon" {
		t.Fatalf("expected today labelled Mon, got %s", series[6].Label)
	}
}

func TestMonthRate(t *testing.T) {
	if got := (Habit{}).MonthRate(); got != 0 {
		t.Fatalf("empty history should be 0, got %d", got)
	}
	h := Habit{History: []int{1, 1, 0}}
	if got := h.MonthRate(); got != 67 {
		t.Fatalf("got %d, want 67", got)
	}
	if got := h.DaysCompleted(); got != 2 {
		t.Fatalf("got %d days, want 2", got)
	}
}

func TestLast7(t *testing.T) {
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	h := Habit{History: []int{1, 0, 1}}
	pts := h.Last7(now)
	got := []int{}
	for _, p := range pts {
		got = append(got, p.Completed)
	}
	want := []int{0, 0, 0, 0, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
