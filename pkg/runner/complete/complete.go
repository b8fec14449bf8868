// Package complete provides the runner logic for toggling habits and tasks.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
)

// Habit toggles today's completion for a habit.
type Habit struct {
	ID    habit.ID
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

// Do flips the habit and prints its new state.
func (n *Habit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}
	if !n.Store.ToggleHabit(n.ID) {
		return fmt.Errorf("%w: %d", app.ErrHabitNotFound, n.ID)
	}
	h, _ := n.Store.Habit(n.ID)
	if n.JSON {
		return printers.JSON(n.Out, h)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Habits(h)
	return nil
}

// Next completes the first habit still open today.
type Next struct {
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

// Do runs the dashboard "Complete Habit" quick action.
func (n *Next) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}
	h, ok := n.Store.CompleteNextHabit()
	if !ok {
		return errors.New("every habit is already done today")
	}
	if n.JSON {
		return printers.JSON(n.Out, h)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Habits(h)
	return nil
}

// Task toggles a task's completion.
type Task struct {
	ID    string
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

// Do flips the task and prints its new state.
func (n *Task) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}
	if !n.Store.ToggleTask(n.ID) {
		return fmt.Errorf("%w: %s", app.ErrTaskNotFound, n.ID)
	}
	t, _ := n.Store.Task(n.ID)
	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Tasks(t)
	return nil
}
