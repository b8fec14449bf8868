// Package info provides the runner logic for showing one habit or task.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
)

// Habit prints the habit detail view.
type Habit struct {
	ID    habit.ID
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

func (n *Habit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get info, no store")
	}
	v := n.Store.HabitDetail(n.ID, n.Store.Now())
	if n.JSON {
		if !v.Found {
			return fmt.Errorf("%w: %d", app.ErrHabitNotFound, n.ID)
		}
		return printers.JSON(n.Out, v)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.HabitDetail(v)
	return nil
}

// Task prints every field of a task.
type Task struct {
	ID    string
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

func (n *Task) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get info, no store")
	}
	t, ok := n.Store.Task(n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", app.ErrTaskNotFound, n.ID)
	}
	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.TaskDetail(t)
	return nil
}
