// Package stats provides the runner logic for the dashboard summary.
package stats

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/timeutil"
)

// Stats prints completion rate, streaks, pending tasks and a completion
// series over Window.
type Stats struct {
	Window string
	Store  *app.Store
	JSON   bool
	Out    io.Writer
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not report, no store")
	}
	days, label, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	if days > habit.HistoryWindow {
		days = habit.HistoryWindow
		label = timeutil.FormatWindow(days)
	}
	now := n.Store.Now()
	v := app.BuildDashboard(n.Store.Habits(), n.Store.Tasks(), now, days)
	if n.JSON {
		return printers.JSON(n.Out, v)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Dashboard(v, label)
	return nil
}
