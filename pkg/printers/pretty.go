// Package printers renders habits, tasks and summaries for the CLI.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/task"
)

const titleWidth = 48

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	if count == 1 {
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	} else {
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func check(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.Faint).Sprint("○")
}

// Habits prints one row per habit.
func (pp *PrettyPrint) Habits(habits ...habit.Habit) {
	if len(habits) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range habits {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(h.ID))
		}
		row = append(row,
			check(h.Completed),
			strings.TrimSpace(h.Icon+" "+truncate.StringWithTail(h.DisplayName(), titleWidth, "…")),
			f.Sprint(h.Category),
			fmt.Sprintf("🔥 %d", h.Streak),
			fmt.Sprintf("%d%%", h.MonthRate()),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// HabitDetail prints a single habit with its history grid.
func (pp *PrettyPrint) HabitDetail(v app.HabitDetailView) {
	if !v.Found {
		_, _ = color.New(color.FgRed).Fprintln(pp.out(), "Habit not found")
		return
	}
	h := v.Habit
	pp.Title(strings.TrimSpace(h.Icon + " " + h.DisplayName()))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("id", h.ID)
	tbl.AddRow("category", h.Category)
	tbl.AddRow("today", check(h.Completed))
	tbl.AddRow("streak", fmt.Sprintf("%d days", h.Streak))
	tbl.AddRow("30 days", fmt.Sprintf("%d%% (%d/%d)", v.MonthRate, v.DaysCompleted, habit.HistoryWindow))
	tbl.AddRow("tags", strings.Join(h.Tags, ", "))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Series("Last 7 days", v.Last7)
	pp.History(h.History)

	if strings.TrimSpace(h.Notes) != "" {
		_, _ = color.New(color.Italic).Fprintln(pp.out(), "Notes")
		_, _ = fmt.Fprintln(pp.out(), h.Notes)
		pp.NewLine()
	}
}

// Tasks prints one row per task.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(t.ID))
		}
		title := truncate.StringWithTail(t.Title, titleWidth, "…")
		if t.Completed {
			title = color.New(color.CrossedOut, color.Faint).Sprint(title)
		}
		row = append(row,
			check(t.Completed),
			title,
			priority(t.Priority),
			t.Deadline,
			f.Sprint(strings.Join(t.Tags, " ")),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// TaskDetail prints every field of one task.
func (pp *PrettyPrint) TaskDetail(t task.Task) {
	pp.Title(t.Title)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("id", t.ID)
	tbl.AddRow("status", check(t.Completed))
	tbl.AddRow("priority", priority(t.Priority))
	tbl.AddRow("deadline", t.Deadline)
	tbl.AddRow("tags", strings.Join(t.Tags, ", "))
	if t.Description != "" {
		tbl.AddRow("description", t.Description)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Distribution prints the pending-tasks-per-priority bars.
func (pp *PrettyPrint) Distribution(buckets []task.Bucket) {
	const width = 30
	largest := task.MaxCount(buckets)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, b := range buckets {
		n := b.Width(largest) * width / 100
		tbl.AddRow(priority(b.Priority), priorityColor(b.Priority).Sprint(strings.Repeat("█", n)), b.Count)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Dashboard prints the stats summary.
func (pp *PrettyPrint) Dashboard(v app.DashboardView, window string) {
	pp.Title("Today · " + v.Date.Format("January 2, 2006"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Today's Progress", fmt.Sprintf("%d%%", v.CompletionRate), fmt.Sprintf("%d/%d habits completed", v.CompletedHabits, v.TotalHabits))
	tbl.AddRow("Longest Streak", v.LongestStreak, "days in a row")
	tbl.AddRow("Tasks Pending", v.PendingTasks, "items to complete")
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Series("Completed habits · last "+window, v.Weekly)

	pp.TitleWithCount("Today's Tasks", v.TodayPending, "pending")
	pp.Tasks(v.TodayTasks...)
}

// Series prints a horizontal bar per day.
func (pp *PrettyPrint) Series(title string, points []habit.DayPoint) {
	_, _ = color.New(color.Italic).Fprintln(pp.out(), title)
	bar := color.New(color.FgMagenta)
	tbl := uitable.New()
	tbl.Separator = " "
	for _, p := range points {
		label := fmt.Sprintf("%s %s", p.Label, p.Date.Format("01/02"))
		tbl.AddRow(label, bar.Sprint(strings.Repeat("■", p.Completed))+strings.Repeat("·", max(p.Total-p.Completed, 0)), fmt.Sprintf("%d/%d", p.Completed, p.Total))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func priority(p task.Priority) string {
	return priorityColor(p).Sprint(p.Label())
}

func priorityColor(p task.Priority) *color.Color {
	switch p {
	case task.High:
		return color.New(color.FgRed)
	case task.Medium:
		return color.New(color.FgYellow)
	case task.Low:
		return color.New(color.FgGreen)
	}
	return color.New()
}
