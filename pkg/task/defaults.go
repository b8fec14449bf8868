package task

import (
	"time"

	"tableflip.dev/habits/pkg/timeutil"
)

// Defaults returns the sample task list, with deadlines relative to now.
func Defaults(now time.Time) []Task {
	day := func(offset int) string {
		return timeutil.DateKey(now.AddDate(0, 0, offset))
	}
	return []Task{
		{
			ID:          "task-1",
			Title:       "Review weekly goals",
			Description: "Look back at last week and plan the next one.",
			Priority:    High,
			Deadline:    day(0),
			Tags:        []string{"planning"},
		},
		{
			ID:          "task-2",
			Title:       "Buy groceries",
			Description: "Vegetables, oats, coffee.",
			Priority:    Medium,
			Deadline:    day(0),
			Tags:        []string{"errands", "home"},
		},
		{
			ID:          "task-3",
			Title:       "Call the dentist",
			Description: "",
			Priority:    Low,
			Deadline:    day(0),
			Completed:   true,
			Tags:        []string{"health"},
		},
		{
			ID:          "task-4",
			Title:       "Finish project proposal",
			Description: "Draft the scope and timeline sections.",
			Priority:    High,
			Deadline:    day(2),
			Tags:        []string{"work"},
		},
		{
			ID:          "task-5",
			Title:       "Book train tickets",
			Description: "",
			Priority:    Medium,
			Deadline:    day(5),
			Tags:        []string{"travel"},
		},
		{
			ID:          "task-6",
			Title:       "Renew library card",
			Description: "",
			Priority:    Low,
			Deadline:    day(-3),
			Completed:   true,
			Tags:        []string{},
		},
	}
}
