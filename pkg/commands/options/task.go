package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/task"
	"tableflip.dev/habits/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// TaskOptions collects the optional fields of a new task.
type TaskOptions struct {
	Description string
	Priority    string
	Deadline    string
	Tags        []string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description of the task.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", string(task.Medium),
		"Priority. One of high, medium or low.")
	cmd.Flags().StringVar(&o.Deadline, "deadline", "",
		`Due date, example: --deadline="2020-2-28" or --deadline="2/28". Defaults to today.`)
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the task, repeatable.")
}

// Input builds a task.Input, resolving the deadline relative to now.
func (o *TaskOptions) Input(title string, now time.Time) (task.Input, error) {
	prio, err := task.ParsePriority(o.Priority)
	if err != nil {
		return task.Input{}, err
	}
	deadline, err := ParseDeadline(o.Deadline, now)
	if err != nil {
		return task.Input{}, err
	}
	return task.Input{
		Title:       title,
		Description: o.Description,
		Priority:    prio,
		Deadline:    deadline,
		Tags:        o.Tags,
	}, nil
}

// ParseDeadline accepts "2020-2-28" or "2/28" and returns a date key. A
// month/day that already passed this year means next year. Blank stays blank.
func ParseDeadline(s string, now time.Time) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISO, s, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, s, now.Location())
		if err != nil {
			return "", fmt.Errorf("%w: %q", task.ErrInvalidDeadline, s)
		}
		t = t.AddDate(now.Year(), 0, 0)
		if t.Before(timeutil.StartOfDay(now)) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return timeutil.DateKey(t), nil
}

// FilterOptions select which tasks a listing shows.
type FilterOptions struct {
	Filter       string
	Search       string
	Distribution bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", string(task.FilterAll),
		"One of today, pending, upcoming, completed or all.")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only tasks whose title, tags or priority contain this text.")
	cmd.Flags().BoolVar(&o.Distribution, "distribution", false,
		"Also print pending tasks per priority.")
}
