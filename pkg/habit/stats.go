package habit

import (
	"math"
	"time"

	"tableflip.dev/habits/pkg/timeutil"
)

// DayPoint is one bar of a daily completion chart.
type DayPoint struct {
	Date      time.Time
	Label     string
	Completed int
	Total     int
}

// CompletedCount counts habits done today.
func CompletedCount(habits []Habit) int {
	n := 0
	for _, h := range habits {
		if h.Completed {
			n++
		}
	}
	return n
}

// CompletionRate is the rounded percentage of habits done today; 0 when there
// are no habits.
func CompletionRate(habits []Habit) int {
	if len(habits) == 0 {
		return 0
	}
	return percent(CompletedCount(habits), len(habits))
}

// LongestStreak is the largest streak across habits; 0 when there are none.
func LongestStreak(habits []Habit) int {
	longest := 0
	for _, h := range habits {
		if h.Streak > longest {
			longest = h.Streak
		}
	}
	return longest
}

// WeeklySeries returns the last seven days, oldest first, with the number of
// habits completed on each day according to their histories.
func WeeklySeries(habits []Habit, now time.Time) []DayPoint {
	return Series(habits, now, 7)
}

// Series generalises WeeklySeries to an arbitrary trailing window of days.
func Series(habits []Habit, now time.Time, days int) []DayPoint {
	dates := timeutil.LastNDays(now, days)
	out := make([]DayPoint, len(dates))
	for i, d := range dates {
		back := len(dates) - 1 - i
		completed := 0
		for _, h := range habits {
			if h.doneDaysAgo(back) {
				completed++
			}
		}
		out[i] = DayPoint{
			Date:      d,
			Label:     timeutil.ShortWeekday(d),
			Completed: completed,
			Total:     len(habits),
		}
	}
	return out
}

// Last7 is the single-habit counterpart of WeeklySeries; Completed is 0 or 1.
func (h Habit) Last7(now time.Time) []DayPoint {
	return Series([]Habit{h}, now, 7)
}

// DaysCompleted counts completed days in the history window.
func (h Habit) DaysCompleted() int {
	n := 0
	for _, v := range h.History {
		if v == 1 {
			n++
		}
	}
	return n
}

// MonthRate is the rounded completion percentage over the history window; 0
// for an empty history.
func (h Habit) MonthRate() int {
	if len(h.History) == 0 {
		return 0
	}
	return percent(h.DaysCompleted(), len(h.History))
}

func (h Habit) doneDaysAgo(back int) bool {
	pos := len(h.History) - 1 - back
	return pos >= 0 && pos < len(h.History) && h.History[pos] == 1
}

func percent(n, d int) int {
	if d < 1 {
		d = 1
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}
