// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/task"
)

// Add creates a task and prints it.
type Add struct {
	Store *app.Store
	Input task.Input
	JSON  bool
	Out   io.Writer
}

// Do validates the input and prepends the new task.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	t, err := n.Store.AddTask(n.Input)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.TitleWithCount("Task added", 1, "task")
	pp.Tasks(t)
	return nil
}
