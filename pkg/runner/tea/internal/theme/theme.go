// Package theme holds the palette shared by the habits TUI screens.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/habits/pkg/task"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Card     lipgloss.Style
	CardHead lipgloss.Style
	CardBody lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Bar      lipgloss.Style
	Tag      lipgloss.Style

	Footer FooterTheme

	empty colorful.Color
	full  colorful.Color
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Toast  lipgloss.Style
	Busy   lipgloss.Style
}

// Default returns the built-in theme; dark selects the palette for dark
// terminal backgrounds.
func Default(dark bool) Theme {
	subtle := lipgloss.Color("241")
	accent := lipgloss.Color("212")
	text := lipgloss.Color("252")
	empty, _ := colorful.Hex("#2d333b")
	if !dark {
		subtle = lipgloss.Color("245")
		accent = lipgloss.Color("99")
		text = lipgloss.Color("236")
		empty, _ = colorful.Hex("#ebedf0")
	}
	full, _ := colorful.Hex("#39d353")

	return Theme{
		Dark:   dark,
		Title:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Subtle: lipgloss.NewStyle().Foreground(subtle),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
		CardHead: lipgloss.NewStyle().Foreground(subtle),
		CardBody: lipgloss.NewStyle().Foreground(text).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(subtle).Strikethrough(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Bar: lipgloss.NewStyle().Foreground(accent),
		Tag: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Toast:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Busy:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		empty: empty,
		full:  full,
	}
}

// Priority returns the style for a task priority.
func (t Theme) Priority(p task.Priority) lipgloss.Style {
	switch p {
	case task.High:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	case task.Low:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	}
}

// Heat returns a cell colour for level in [0, 1], blended in Lab space
// between the empty and full colours.
func (t Theme) Heat(level float64) lipgloss.Style {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	c := t.empty.BlendLab(t.full, level).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
