// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/task"
)

// Get lists tasks through a filter and an optional search query.
type Get struct {
	ShowID bool
	Filter task.Filter
	Search string
	// Distribution also prints pending tasks per priority.
	Distribution bool
	Store        *app.Store
	JSON         bool
	Out          io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	n.Store.SetTaskFilter(n.Filter)
	n.Store.SetSearchQuery(n.Search)
	v := n.Store.TaskList(n.now())

	if n.JSON {
		return printers.JSON(n.Out, v.Tasks)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(v.Header, len(v.Tasks), "task")
	pp.Tasks(v.Tasks...)
	if n.Distribution {
		pp.Title("Priority Distribution")
		pp.Distribution(v.Distribution)
	}
	return nil
}

func (n *Get) now() time.Time {
	return n.Store.Now()
}
