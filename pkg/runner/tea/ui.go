package teaui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/router"
	"tableflip.dev/habits/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/habits/pkg/runner/tea/internal/theme"
	"tableflip.dev/habits/pkg/task"
)

const (
	// busyDelay is how long the quick action stays disabled after use.
	busyDelay = 500 * time.Millisecond
	toastTTL  = 3 * time.Second
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeAddTask
	modeTaskModal
	modeNotes
	modeTag
	modeHelp
)

// add-task form fields, in tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDeadline
	fieldTags
	fieldCount
)

type addForm struct {
	focus       int
	title       textinput.Model
	description textinput.Model
	deadline    textinput.Model
	tags        textinput.Model
	priority    task.Priority
	err         string
}

// messages
type busyDoneMsg struct{}
type toastExpiredMsg struct{ id int }
type storeEventMsg struct{ ev app.Event }
// routeMsg reports that the router moved. Sends can arrive out of order, so
// the handler reads the router rather than trusting a carried route.
type routeMsg struct{}

// Model contains UI state. Domain state lives in the app.Store; the model
// only holds cursors, modes and inputs.
type Model struct {
	store  *app.Store
	router *router.Router
	theme  theme.Theme

	route router.Route
	mode  mode

	habitCursor int
	taskCursor  int

	input textinput.Model
	form  addForm

	busy    bool
	toastID int
	bottom  bottombar.Model

	termWidth  int
	termHeight int
}

// New creates a UI model over store, starting at the router's current path.
func New(store *app.Store, rt *router.Router, th theme.Theme) Model {
	if rt == nil {
		rt = router.New("/dashboard")
	}
	ti := newInput("")
	m := Model{
		store:  store,
		router: rt,
		theme:  th,
		route:  rt.Current(),
		mode:   modeNormal,
		input:  ti,
		form:   newAddForm(),
		bottom: bottombar.New(th.Footer),
	}
	m.updateBottomContext()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline
	return ti
}

func newAddForm() addForm {
	f := addForm{
		title:       newInput("What needs to be done?"),
		description: newInput("Optional details"),
		deadline:    newInput("YYYY-MM-DD (default today)"),
		tags:        newInput("comma separated"),
		priority:    task.Medium,
	}
	f.deadline.CharLimit = 10
	return f
}

// Init has nothing to load; the store is populated before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case busyDoneMsg:
		m.busy = false
		m.bottom.SetBusy(false)
	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.bottom.SetToast("")
		}
	case storeEventMsg:
		m.clampCursors()
	case routeMsg:
		m.route = m.router.Current()
		m.updateBottomContext()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeSearch:
			cmds = append(cmds, m.updateSearch(msg))
		case modeAddTask:
			cmds = append(cmds, m.updateAddTask(msg))
		case modeTaskModal:
			cmds = append(cmds, m.updateTaskModal(msg))
		case modeNotes, modeTag:
			cmds = append(cmds, m.updateHabitInput(msg))
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg))
		}
	}

	m.updateBottomContext()
	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "?":
		m.mode = modeHelp
		return nil
	case "[":
		if m.router.Back() {
			m.syncRoute()
		}
		return nil
	case "]":
		if m.router.Forward() {
			m.syncRoute()
		}
		return nil
	}

	switch m.route.Screen {
	case router.Habit:
		return m.updateHabitScreen(msg)
	case router.Tasks:
		return m.updateTasksScreen(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m *Model) updateDashboard(msg tea.KeyPressMsg) tea.Cmd {
	habits := m.store.Habits()
	switch msg.String() {
	case "j", "down":
		if m.habitCursor < len(habits)-1 {
			m.habitCursor++
		}
	case "k", "up":
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case "space", " ", "x":
		if h, ok := m.cursorHabit(habits); ok {
			m.store.ToggleHabit(h.ID)
		}
	case "enter":
		if h, ok := m.cursorHabit(habits); ok {
			m.navigate(router.Habit, int64(h.ID))
		}
	case "t":
		m.navigate(router.Tasks, 0)
	case "h":
		// With no habits this resolves to the dashboard.
		var id int64
		if len(habits) > 0 {
			id = int64(habits[0].ID)
		}
		m.navigate(router.Habit, id)
	case "c":
		return m.completeNextHabit()
	}
	return nil
}

func (m *Model) completeNextHabit() tea.Cmd {
	if m.busy {
		return nil
	}
	h, ok := m.store.CompleteNextHabit()
	if !ok {
		return m.toast("Every habit is done today")
	}
	m.busy = true
	m.bottom.SetBusy(true)
	return tea.Batch(
		tea.Tick(busyDelay, func(time.Time) tea.Msg { return busyDoneMsg{} }),
		m.toast("Completed "+h.DisplayName()),
	)
}

func (m *Model) updateHabitScreen(msg tea.KeyPressMsg) tea.Cmd {
	id := habit.ID(m.route.ID)
	h, found := m.store.Habit(id)
	key := msg.String()
	if !found {
		switch key {
		case "enter", "b", "esc":
			m.navigate(router.Dashboard, 0)
		}
		return nil
	}
	switch key {
	case "esc", "b":
		m.navigate(router.Dashboard, 0)
	case "space", " ", "x":
		m.store.ToggleHabit(id)
	case "n":
		m.mode = modeNotes
		return m.focusInput("Notes for "+h.DisplayName(), h.Notes)
	case "+":
		m.mode = modeTag
		return m.focusInput("New tag", "")
	case "-":
		if n := len(h.Tags); n > 0 {
			m.store.RemoveHabitTag(id, h.Tags[n-1])
		}
	}
	return nil
}

func (m *Model) updateHabitInput(msg tea.KeyPressMsg) tea.Cmd {
	id := habit.ID(m.route.ID)
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		if m.mode == modeNotes {
			m.store.UpdateHabit(app.HabitPatch{ID: id, Notes: &value})
		} else if strings.TrimSpace(value) != "" {
			m.store.AddHabitTag(id, value)
		}
		m.blurInput()
		return nil
	case "esc":
		m.blurInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateTasksScreen(msg tea.KeyPressMsg) tea.Cmd {
	view := m.store.TaskList(m.store.Now())
	key := msg.String()
	switch key {
	case "1", "2", "3", "4", "5":
		filters := task.Filters()
		m.store.SetTaskFilter(filters[int(key[0]-'1')])
		m.taskCursor = 0
	case "/":
		m.mode = modeSearch
		m.bottom.SetMode(bottombar.ModeSearch)
		cmd := m.focusInput("search title, tag or priority", m.store.SearchQuery())
		m.bottom.UpdateSearchInput(m.input.View())
		return cmd
	case "j", "down":
		if m.taskCursor < len(view.Tasks)-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "space", " ", "x":
		if t, ok := m.cursorTask(view.Tasks); ok {
			m.store.ToggleTask(t.ID)
		}
	case "enter":
		if t, ok := m.cursorTask(view.Tasks); ok && m.store.SelectTask(t.ID) {
			m.mode = modeTaskModal
		}
	case "a":
		return m.openAddTask()
	case "d":
		if t, ok := m.cursorTask(view.Tasks); ok && m.store.DeleteTask(t.ID) {
			m.clampCursors()
			return m.toast("Task deleted")
		}
	case "esc":
		m.navigate(router.Dashboard, 0)
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.blurInput()
		return nil
	case "esc":
		m.store.SetSearchQuery("")
		m.blurInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetSearchQuery(m.input.Value())
	m.taskCursor = 0
	m.bottom.UpdateSearchInput(m.input.View())
	return cmd
}

func (m *Model) updateTaskModal(msg tea.KeyPressMsg) tea.Cmd {
	sel, ok := m.store.SelectedTask()
	if !ok {
		m.mode = modeNormal
		return nil
	}
	switch msg.String() {
	case "space", " ", "x":
		m.store.ToggleTask(sel.ID)
	case "d":
		m.store.DeleteTask(sel.ID)
		m.mode = modeNormal
		m.clampCursors()
		return m.toast("Task deleted")
	case "esc", "enter", "q":
		m.store.ClearSelection()
		m.mode = modeNormal
	}
	return nil
}

func (m *Model) openAddTask() tea.Cmd {
	m.form = newAddForm()
	m.mode = modeAddTask
	return tea.Batch(m.form.title.Focus(), textinput.Blink)
}

func (m *Model) updateAddTask(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return nil
	case "tab", "down":
		return m.focusField((m.form.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.form.focus + fieldCount - 1) % fieldCount)
	case "enter":
		return m.submitAddTask()
	}
	if m.form.focus == fieldPriority {
		switch msg.String() {
		case "space", " ", "right", "left", "p":
			m.form.priority = m.form.priority.Next()
		}
		return nil
	}
	var cmd tea.Cmd
	in := m.form.field(m.form.focus)
	*in, cmd = in.Update(msg)
	return cmd
}

func (m *Model) submitAddTask() tea.Cmd {
	in := task.Input{
		Title:       m.form.title.Value(),
		Description: m.form.description.Value(),
		Priority:    m.form.priority,
		Deadline:    strings.TrimSpace(m.form.deadline.Value()),
		Tags:        task.SplitTags(m.form.tags.Value()),
	}
	if _, err := m.store.AddTask(in); err != nil {
		// The form stays open so the input can be corrected.
		m.form.err = err.Error()
		if errors.Is(err, task.ErrEmptyTitle) {
			return m.focusField(fieldTitle)
		}
		return m.focusField(fieldDeadline)
	}
	m.mode = modeNormal
	m.taskCursor = 0
	return m.toast("Task added successfully")
}

func (m *Model) focusField(i int) tea.Cmd {
	for _, in := range []*textinput.Model{&m.form.title, &m.form.description, &m.form.deadline, &m.form.tags} {
		in.Blur()
	}
	m.form.focus = i
	if in := m.form.field(i); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *addForm) field(i int) *textinput.Model {
	switch i {
	case fieldTitle:
		return &f.title
	case fieldDescription:
		return &f.description
	case fieldDeadline:
		return &f.deadline
	case fieldTags:
		return &f.tags
	}
	return nil
}

func (m *Model) focusInput(placeholder, value string) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) blurInput() {
	m.mode = modeNormal
	m.bottom.SetMode(bottombar.ModeNormal)
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) toast(text string) tea.Cmd {
	m.toastID++
	id := m.toastID
	m.bottom.SetToast(text)
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) navigate(screen router.Screen, id int64) {
	if err := m.router.Navigate(screen, id); err != nil {
		m.bottom.SetStatus("ERR: " + err.Error())
		return
	}
	m.syncRoute()
}

func (m *Model) syncRoute() {
	m.route = m.router.Current()
	m.mode = modeNormal
	m.store.ClearSelection()
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if n := len(m.store.Habits()); m.habitCursor >= n {
		m.habitCursor = max(n-1, 0)
	}
	if n := len(m.store.TaskList(m.store.Now()).Tasks); m.taskCursor >= n {
		m.taskCursor = max(n-1, 0)
	}
}

func (m *Model) cursorHabit(habits []habit.Habit) (habit.Habit, bool) {
	if m.habitCursor < 0 || m.habitCursor >= len(habits) {
		return habit.Habit{}, false
	}
	return habits[m.habitCursor], true
}

func (m *Model) cursorTask(tasks []task.Task) (task.Task, bool) {
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.taskCursor], true
}

// updateBottomContext refreshes the contextual help for the current screen.
func (m *Model) updateBottomContext() {
	var help string
	switch m.mode {
	case modeAddTask:
		help = "tab next field · space cycles priority · enter save · esc cancel"
	case modeTaskModal:
		help = "space toggle · d delete · esc close"
	case modeNotes, modeTag:
		help = "enter save · esc cancel"
	case modeHelp:
		help = "esc close help"
	default:
		switch m.route.Screen {
		case router.Habit:
			help = "space toggle · n notes · +/- tags · b back · [/] history · q quit"
		case router.Tasks:
			help = "1-5 filter · / search · a add · enter open · space toggle · d delete · esc dashboard · q quit"
		default:
			help = "j/k move · space toggle · enter details · t tasks · h habit · c complete · q quit"
		}
	}
	m.bottom.SetHelp(help)
}
