package app

import (
	"time"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/task"
)

// DashboardTaskLimit caps the tasks shown in the dashboard's today section.
const DashboardTaskLimit = 5

// DashboardView is everything the dashboard renders.
type DashboardView struct {
	Date            time.Time
	Habits          []habit.Habit
	CompletionRate  int
	CompletedHabits int
	TotalHabits     int
	LongestStreak   int
	PendingTasks    int
	Weekly          []habit.DayPoint
	TodayTasks      []task.Task
	TodayPending    int
	TodayDone       int
	// CanCompleteHabit is false once every habit is done today.
	CanCompleteHabit bool
}

// Dashboard derives the dashboard from the current collections.
func (s *Store) Dashboard(now time.Time) DashboardView {
	habits := s.Habits()
	tasks := s.Tasks()
	return BuildDashboard(habits, tasks, now, 7)
}

// BuildDashboard is the pure form of Dashboard. days sets the length of the
// completion series.
func BuildDashboard(habits []habit.Habit, tasks []task.Task, now time.Time, days int) DashboardView {
	today := task.Today(tasks, now)
	v := DashboardView{
		Date:            now,
		Habits:          habits,
		CompletionRate:  habit.CompletionRate(habits),
		CompletedHabits: habit.CompletedCount(habits),
		TotalHabits:     len(habits),
		LongestStreak:   habit.LongestStreak(habits),
		PendingTasks:    task.PendingCount(tasks),
		Weekly:          habit.Series(habits, now, days),
	}
	v.CanCompleteHabit = v.CompletedHabits < v.TotalHabits
	for _, t := range today {
		if t.Completed {
			v.TodayDone++
		} else {
			v.TodayPending++
		}
	}
	if len(today) > DashboardTaskLimit {
		today = today[:DashboardTaskLimit]
	}
	v.TodayTasks = today
	return v
}

// HabitDetailView is the habit detail screen. Found is false when the habit
// no longer exists; the screen then offers a way back to the dashboard.
type HabitDetailView struct {
	Found         bool
	Habit         habit.Habit
	Last7         []habit.DayPoint
	MonthRate     int
	DaysCompleted int
}

// HabitDetail derives the detail view for id.
func (s *Store) HabitDetail(id habit.ID, now time.Time) HabitDetailView {
	h, ok := s.Habit(id)
	if !ok {
		return HabitDetailView{}
	}
	return HabitDetailView{
		Found:         true,
		Habit:         h,
		Last7:         h.Last7(now),
		MonthRate:     h.MonthRate(),
		DaysCompleted: h.DaysCompleted(),
	}
}

// TaskListView is the tasks screen.
type TaskListView struct {
	Header       string
	Filter       task.Filter
	Query        string
	Tasks        []task.Task
	Distribution []task.Bucket
	MaxBucket    int
	Selected     *task.Task
}

// TaskList applies the current filter and search query.
func (s *Store) TaskList(now time.Time) TaskListView {
	tasks := s.Tasks()
	f := s.TaskFilter()
	q := s.SearchQuery()
	v := BuildTaskList(tasks, f, q, now)
	if sel, ok := s.SelectedTask(); ok {
		v.Selected = &sel
	}
	return v
}

// BuildTaskList is the pure form of TaskList.
func BuildTaskList(tasks []task.Task, f task.Filter, query string, now time.Time) TaskListView {
	dist := task.Distribution(tasks)
	return TaskListView{
		Header:       f.Label(),
		Filter:       f,
		Query:        query,
		Tasks:        task.Search(task.Apply(tasks, f, now), query),
		Distribution: dist,
		MaxBucket:    task.MaxCount(dist),
	}
}
