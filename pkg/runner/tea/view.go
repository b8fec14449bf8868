package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/router"
	"tableflip.dev/habits/pkg/runner/tea/internal/calendar"
	"tableflip.dev/habits/pkg/task"
)

const (
	barCells     = 20
	defaultWidth = 80
)

// View renders the current screen, any modal, and the footer.
func (m Model) View() string {
	var body string
	switch m.route.Screen {
	case router.Habit:
		body = m.viewHabit()
	case router.Tasks:
		body = m.viewTasks()
	default:
		body = m.viewDashboard()
	}

	switch m.mode {
	case modeAddTask:
		body += "\n\n" + m.viewAddTask()
	case modeTaskModal:
		body += "\n\n" + m.viewTaskModal()
	case modeNotes, modeTag:
		label := "Notes: "
		if m.mode == modeTag {
			label = "Tag: "
		}
		body += "\n\n" + label + m.input.View()
	case modeHelp:
		body += "\n\n" + m.theme.Subtle.Italic(true).Render(helpText)
	}

	header := m.theme.Title.Render("Habit Tracker") + "  " +
		m.theme.Subtle.Render(m.store.Now().Format("Monday, January 2")+"  "+m.router.Path())
	return header + "\n\n" + body + "\n\n" + m.bottom.View()
}

const helpText = "Keys: [ back, ] forward, q quit. Dashboard: j/k move, space toggle, enter details, t tasks, h first habit, c complete next. " +
	"Habit: space toggle, n notes, + add tag, - remove tag, b back. Tasks: 1-5 filter, / search, a add, enter open, d delete."

func (m Model) width() int {
	if m.termWidth > 0 {
		return m.termWidth
	}
	return defaultWidth
}

func (m Model) viewDashboard() string {
	v := m.store.Dashboard(m.store.Now())
	th := m.theme

	card := func(title, value string) string {
		return th.Card.Render(th.CardHead.Render(title) + "\n" + th.CardBody.Render(value))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Completion Rate", fmt.Sprintf("%d%%", v.CompletionRate)),
		card("Habits Done", fmt.Sprintf("%d/%d", v.CompletedHabits, v.TotalHabits)),
		card("Longest Streak", fmt.Sprintf("%d days", v.LongestStreak)),
		card("Pending Tasks", fmt.Sprintf("%d", v.PendingTasks)),
	)

	var lines []string
	lines = append(lines, th.Title.Render("Today's Habits"))
	if len(v.Habits) == 0 {
		lines = append(lines, th.Subtle.Render("  no habits"))
	}
	for i, h := range v.Habits {
		lines = append(lines, m.habitRow(h, i == m.habitCursor))
	}

	lines = append(lines, "", th.Title.Render("This Week"))
	lines = append(lines, m.seriesRows(v.Weekly)...)

	lines = append(lines, "", th.Title.Render(fmt.Sprintf("Today's Tasks  %d pending · %d done", v.TodayPending, v.TodayDone)))
	if len(v.TodayTasks) == 0 {
		lines = append(lines, th.Subtle.Render("  nothing due today"))
	}
	for _, t := range v.TodayTasks {
		lines = append(lines, m.taskRow(t, false))
	}

	lines = append(lines, "", th.Title.Render("Quick Actions"))
	complete := "c Complete Habit"
	switch {
	case m.busy:
		complete = th.Footer.Busy.Render("c Completing...")
	case !v.CanCompleteHabit:
		complete = th.Subtle.Render("c All habits done")
	}
	lines = append(lines, "  t Manage Tasks · h Track Habit · "+complete)

	return cards + "\n\n" + strings.Join(lines, "\n")
}

func (m Model) habitRow(h habit.Habit, active bool) string {
	indicator := "  "
	if active {
		indicator = m.theme.Cursor.Render("→ ")
	}
	check := "[ ]"
	name := h.DisplayName()
	if h.Icon != "" {
		name = h.Icon + " " + name
	}
	if h.Completed {
		check = "[x]"
		name = m.theme.Done.Render(name)
	}
	meta := m.theme.Subtle.Render(fmt.Sprintf("%s · %d day streak", h.Category, h.Streak))
	return fmt.Sprintf("%s%s %s  %s", indicator, check, name, meta)
}

func (m Model) seriesRows(points []habit.DayPoint) []string {
	rows := make([]string, 0, len(points))
	for _, p := range points {
		level := 0.0
		if p.Total > 0 {
			level = float64(p.Completed) / float64(p.Total)
		}
		cells := int(level*barCells + 0.5)
		bar := m.theme.Heat(level).Render(strings.Repeat("█", cells)) + strings.Repeat(" ", barCells-cells)
		rows = append(rows, fmt.Sprintf("  %-3s %s %d/%d", p.Label, bar, p.Completed, p.Total))
	}
	return rows
}

func (m Model) taskRow(t task.Task, active bool) string {
	indicator := "  "
	if active {
		indicator = m.theme.Cursor.Render("→ ")
	}
	check := "[ ]"
	title := truncate.StringWithTail(t.Title, uint(max(m.width()-40, 16)), "…")
	if t.Completed {
		check = "[x]"
		title = m.theme.Done.Render(title)
	}
	prio := m.theme.Priority(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority))
	row := fmt.Sprintf("%s%s %s %s  %s", indicator, check, prio, title, m.theme.Subtle.Render(t.Deadline))
	for _, tag := range t.Tags {
		row += " " + m.theme.Tag.Render("#"+tag)
	}
	return row
}

func (m Model) viewHabit() string {
	th := m.theme
	now := m.store.Now()
	v := m.store.HabitDetail(habit.ID(m.route.ID), now)
	if !v.Found {
		return th.Error.Render("Habit not found") + "\n\n" + th.Cursor.Render("← Back to Dashboard") + th.Subtle.Render(" (enter)")
	}
	h := v.Habit

	title := h.DisplayName()
	if h.Icon != "" {
		title = h.Icon + " " + title
	}
	status := "not done today"
	if h.Completed {
		status = "done today"
	}

	var lines []string
	lines = append(lines,
		th.Title.Render(title)+"  "+th.Subtle.Render(h.Category+" · "+status),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			th.Card.Render(th.CardHead.Render("Current Streak")+"\n"+th.CardBody.Render(fmt.Sprintf("%d days", h.Streak))),
			th.Card.Render(th.CardHead.Render("Completion Rate")+"\n"+th.CardBody.Render(fmt.Sprintf("%d%%", v.MonthRate))),
			th.Card.Render(th.CardHead.Render("Days Completed")+"\n"+th.CardBody.Render(fmt.Sprintf("%d/%d", v.DaysCompleted, len(h.History)))),
		),
		"",
		th.Title.Render("Last 7 Days"),
	)
	var labels, marks []string
	for _, p := range v.Last7 {
		labels = append(labels, fmt.Sprintf("%-3s", p.Label))
		mark := th.Heat(0).Render("·  ")
		if p.Completed > 0 {
			mark = th.Heat(1).Render("✓  ")
		}
		marks = append(marks, mark)
	}
	lines = append(lines, "  "+strings.Join(labels, " "), "  "+strings.Join(marks, " "))

	lines = append(lines, "", th.Title.Render("History"))
	lines = append(lines, calendar.Render(calendar.FromHistory(now, h.History), calendar.Options{
		HeaderStyle: th.Subtle,
		EmptyStyle:  th.Subtle,
		TodayStyle:  lipgloss.NewStyle().Underline(true),
		Cell:        th.Heat,
		ShowHeader:  true,
	}))

	lines = append(lines, "", th.Title.Render("Notes"))
	notes := h.Notes
	if strings.TrimSpace(notes) == "" {
		notes = th.Subtle.Render("no notes yet, press n to add")
	} else {
		notes = wordwrap.String(notes, max(m.width()-4, 20))
	}
	lines = append(lines, notes)

	lines = append(lines, "", th.Title.Render("Tags"))
	if len(h.Tags) == 0 {
		lines = append(lines, th.Subtle.Render("no tags"))
	} else {
		var tags []string
		for _, tag := range h.Tags {
			tags = append(tags, th.Tag.Render("#"+tag))
		}
		lines = append(lines, strings.Join(tags, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewTasks() string {
	th := m.theme
	v := m.store.TaskList(m.store.Now())

	var tabs []string
	for i, f := range task.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == v.Filter {
			label = th.Cursor.Render(label)
		} else {
			label = th.Subtle.Render(label)
		}
		tabs = append(tabs, label)
	}

	var lines []string
	lines = append(lines, strings.Join(tabs, "  "), "")
	header := fmt.Sprintf("%s (%d)", v.Header, len(v.Tasks))
	if v.Query != "" {
		header += th.Subtle.Render(fmt.Sprintf("  matching %q", v.Query))
	}
	lines = append(lines, th.Title.Render(header))
	if len(v.Tasks) == 0 {
		lines = append(lines, th.Subtle.Render("  no tasks"))
	}
	for i, t := range v.Tasks {
		lines = append(lines, m.taskRow(t, i == m.taskCursor))
	}

	lines = append(lines, "", th.Title.Render("Priority Distribution"))
	for _, b := range v.Distribution {
		cells := b.Width(v.MaxBucket) * barCells / 100
		bar := th.Priority(b.Priority).Render(strings.Repeat("█", cells)) + strings.Repeat(" ", barCells-cells)
		lines = append(lines, fmt.Sprintf("  %-6s %s %d", b.Priority.Label(), bar, b.Count))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewAddTask() string {
	th := m.theme
	f := m.form
	row := func(i int, label, value string) string {
		marker := "  "
		if f.focus == i {
			marker = th.Cursor.Render("→ ")
		}
		return fmt.Sprintf("%s%-12s %s", marker, label, value)
	}
	prio := th.Priority(f.priority).Render(f.priority.Label())
	lines := []string{
		th.Title.Render("Add Task"),
		"",
		row(fieldTitle, "Title", f.title.View()),
	}
	if f.err != "" {
		lines = append(lines, "  "+th.Error.Render(f.err))
	}
	lines = append(lines,
		row(fieldDescription, "Description", f.description.View()),
		row(fieldPriority, "Priority", prio),
		row(fieldDeadline, "Deadline", f.deadline.View()),
		row(fieldTags, "Tags", f.tags.View()),
	)
	return th.Modal.Render(strings.Join(lines, "\n"))
}

func (m Model) viewTaskModal() string {
	th := m.theme
	t, ok := m.store.SelectedTask()
	if !ok {
		return ""
	}
	status := "Pending"
	if t.Completed {
		status = "Completed"
	}
	lines := []string{
		th.Title.Render(t.Title),
		"",
		"Priority: " + th.Priority(t.Priority).Render(t.Priority.Label()),
		"Deadline: " + t.Deadline,
		"Status:   " + status,
	}
	if t.Description != "" {
		lines = append(lines, "", wordwrap.String(t.Description, 48))
	}
	if len(t.Tags) > 0 {
		var tags []string
		for _, tag := range t.Tags {
			tags = append(tags, th.Tag.Render("#"+tag))
		}
		lines = append(lines, "", strings.Join(tags, " "))
	}
	return th.Modal.Render(strings.Join(lines, "\n"))
}
