package task

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tableflip.dev/habits/pkg/timeutil"
)

// Filter selects a subset of tasks for the task list.
type Filter string

const (
	FilterToday     Filter = "today"
	FilterPending   Filter = "pending"
	FilterUpcoming  Filter = "upcoming"
	FilterCompleted Filter = "completed"
	FilterAll       Filter = "all"
)

// Filters lists the filters in display order.
func Filters() []Filter {
	return []Filter{FilterToday, FilterPending, FilterUpcoming, FilterCompleted, FilterAll}
}

// ParseFilter accepts a case-insensitive filter name; blank means all.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	for _, known := range Filters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("task: unknown filter %q", s)
}

// Label is the list heading for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterToday:
		return "Today's Tasks"
	case FilterPending:
		return "Pending Tasks"
	case FilterUpcoming:
		return "Upcoming Tasks"
	case FilterCompleted:
		return "Completed Tasks"
	case FilterAll, "":
		return "All Tasks"
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:] + " Tasks"
}

// TodayKey is today's date as YYYY-MM-DD.
func TodayKey(now time.Time) string {
	return timeutil.DateKey(now)
}

// Match reports whether t passes filter f. Deadlines compare as ISO strings.
func (f Filter) Match(t Task, today string) bool {
	switch f {
	case FilterToday:
		return t.Deadline == today
	case FilterPending:
		return !t.Completed
	case FilterUpcoming:
		return t.Deadline > today && !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the tasks matching f, in collection order.
func Apply(tasks []Task, f Filter, now time.Time) []Task {
	today := TodayKey(now)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t, today) {
			out = append(out, t)
		}
	}
	return out
}

// Search narrows tasks to those whose title, any tag, or priority contains
// query, case-insensitively. A blank query returns tasks unchanged.
func Search(tasks []Task, query string) []Task {
	if strings.TrimSpace(query) == "" {
		return tasks
	}
	q := strings.ToLower(query)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t Task, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(string(t.Priority)), q)
}

// Today returns tasks due today.
func Today(tasks []Task, now time.Time) []Task {
	return Apply(tasks, FilterToday, now)
}

// PendingCount counts incomplete tasks.
func PendingCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// MinBarWidth is the visual floor, in percent, for a non-empty bucket.
const MinBarWidth = 20

// Bucket is one bar of the priority distribution.
type Bucket struct {
	Priority Priority
	Count    int
	// Percent is Count relative to the largest bucket (at least 1).
	Percent int
}

// Width is the display width in percent of the widest bar, given the largest
// count across buckets. Empty buckets are 0; others never drop below
// MinBarWidth.
func (b Bucket) Width(maxCount int) int {
	if b.Count <= 0 {
		return 0
	}
	if maxCount < 1 {
		maxCount = 1
	}
	w := int(math.Round(100 * float64(b.Count) / float64(maxCount)))
	if w < MinBarWidth {
		w = MinBarWidth
	}
	return w
}

// Distribution counts incomplete tasks per priority, highest first.
func Distribution(tasks []Task) []Bucket {
	counts := map[Priority]int{}
	for _, t := range tasks {
		if !t.Completed {
			counts[t.Priority]++
		}
	}
	maxCount := 1
	buckets := make([]Bucket, 0, 3)
	for _, p := range Priorities() {
		buckets = append(buckets, Bucket{Priority: p, Count: counts[p]})
		if counts[p] > maxCount {
			maxCount = counts[p]
		}
	}
	for i := range buckets {
		buckets[i].Percent = int(math.Round(100 * float64(buckets[i].Count) / float64(maxCount)))
	}
	return buckets
}

// MaxCount is the largest bucket count, never less than 1.
func MaxCount(buckets []Bucket) int {
	m := 1
	for _, b := range buckets {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}
