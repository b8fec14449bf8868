// Package calendar renders a week-aligned completion grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/habits/pkg/timeutil"
)

// Day describes a single day rendered in the grid.
type Day struct {
	Date    time.Time
	Level   float64
	IsToday bool
}

// Options controls grid styling.
type Options struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	TodayStyle  lipgloss.Style
	// Cell styles a day by its completion level in [0, 1].
	Cell       func(level float64) lipgloss.Style
	ShowHeader bool
	// Glyph is the text drawn for a day; defaults to the day of month.
	Glyph func(Day) string
}

// FromHistory builds grid days from a completion history whose last entry
// is today.
func FromHistory(now time.Time, history []int) []Day {
	days := timeutil.LastNDays(now, len(history))
	out := make([]Day, 0, len(history))
	for i, d := range days {
		level := 0.0
		if history[i] != 0 {
			level = 1
		}
		out = append(out, Day{Date: d, Level: level, IsToday: i == len(history)-1})
	}
	return out
}

// Render produces a multi-line grid, one row per week starting on Sunday.
func Render(days []Day, opts Options) string {
	if len(days) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	var cells []string
	for i := 0; i < int(days[0].Date.Weekday()); i++ {
		cells = append(cells, opts.EmptyStyle.Render("  "))
	}
	for _, d := range days {
		cells = append(cells, renderDay(d, opts))
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, opts Options) string {
	text := fmt.Sprintf("%2d", info.Date.Day())
	if opts.Glyph != nil {
		text = opts.Glyph(info)
	}

	style := opts.EmptyStyle
	if opts.Cell != nil {
		style = opts.Cell(info.Level)
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(text)
}
