// Package strike provides the runner logic for deleting tasks.
package strike

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/printers"
)

// Strike removes a task permanently.
type Strike struct {
	ID    string
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

// Do deletes the task.
func (n *Strike) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not strike, no store")
	}
	t, ok := n.Store.Task(n.ID)
	if !ok || !n.Store.DeleteTask(n.ID) {
		return fmt.Errorf("%w: %s", app.ErrTaskNotFound, n.ID)
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]string{"deleted": t.ID})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgRed).Fprintf(out, "Task deleted: %s\n", t.Title)
	return nil
}
