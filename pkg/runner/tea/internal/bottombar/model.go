// Package bottombar renders the help, toast and status line under each screen.
package bottombar

import (
	"strings"

	"tableflip.dev/habits/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeInput
	ModeModal
)

// Model tracks footer rendering state.
type Model struct {
	mode       Mode
	helpLine   string
	statusLine string
	toast      string
	busy       bool
	inputView  string
	styles     theme.FooterTheme
}

// New returns a footer model using the given styles.
func New(styles theme.FooterTheme) Model {
	return Model{mode: ModeNormal, styles: styles}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	if mode != ModeSearch {
		m.inputView = ""
	}
}

// Mode reports the current footer mode.
func (m Model) Mode() Mode { return m.mode }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the persistent status message.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// SetToast shows a transient notice; an empty string clears it.
func (m *Model) SetToast(toast string) {
	m.toast = toast
}

// Toast returns the notice currently shown.
func (m Model) Toast() string { return m.toast }

// SetBusy toggles the busy indicator.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
}

// UpdateSearchInput refreshes the rendered search line.
func (m *Model) UpdateSearchInput(view string) {
	m.inputView = "/" + view
}

// View renders the footer.
func (m Model) View() string {
	if m.mode == ModeSearch {
		return m.inputView
	}
	var segments []string
	if m.toast != "" {
		segments = append(segments, m.styles.Toast.Render(m.toast))
	}
	if m.busy {
		segments = append(segments, m.styles.Busy.Render("Completing..."))
	}
	if m.statusLine != "" {
		segments = append(segments, m.styles.Status.Render(m.statusLine))
	}
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
