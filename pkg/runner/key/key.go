// Package key provides CLI helpers to display the TUI key legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Binding is one key and what it does.
type Binding struct {
	Keys    string
	Meaning string
}

// Section groups the bindings of one screen.
type Section struct {
	Screen   string
	Bindings []Binding
}

// DefaultSections lists the bindings of the interactive UI.
func DefaultSections() []Section {
	return []Section{
		{Screen: "Global", Bindings: []Binding{
			{"[ / ]", "back / forward through history"},
			{"?", "help"},
			{"q, ctrl+c", "quit"},
		}},
		{Screen: "Dashboard", Bindings: []Binding{
			{"j/k", "move through habits"},
			{"space", "toggle habit for today"},
			{"enter", "open habit detail"},
			{"t", "manage tasks"},
			{"h", "track the first habit"},
			{"c", "complete the next open habit"},
		}},
		{Screen: "Habit", Bindings: []Binding{
			{"space", "toggle habit for today"},
			{"n", "edit notes"},
			{"+ / -", "add tag / remove last tag"},
			{"b, esc", "back to dashboard"},
		}},
		{Screen: "Tasks", Bindings: []Binding{
			{"1-5", "today, pending, upcoming, completed, all"},
			{"/", "search title, tags and priority"},
			{"a", "add task"},
			{"enter", "open task"},
			{"space", "toggle task"},
			{"d", "delete task"},
		}},
	}
}

// Key prints the key legend.
type Key struct {
	Out io.Writer
}

// Do renders every section to Out.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	for _, s := range DefaultSections() {
		_, _ = fmt.Fprintln(out, "")
		k.Section(out, s)
	}
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Section renders one screen's bindings as a table.
func (k *Key) Section(out io.Writer, s Section) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(s.Screen), bold.Sprint("Meaning"))
	for _, b := range s.Bindings {
		tbl.AddRow(b.Keys, b.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
