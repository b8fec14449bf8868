// Package track provides the runner logic for listing and annotating habits.
package track

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/printers"
)

// List prints every habit.
type List struct {
	ShowID bool
	Store  *app.Store
	JSON   bool
	Out    io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not track, no store")
	}
	habits := n.Store.Habits()
	if n.JSON {
		return printers.JSON(n.Out, habits)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount("Today's Habits", habit.CompletedCount(habits), "done")
	pp.Habits(habits...)
	return nil
}

// Note replaces a habit's notes.
type Note struct {
	ID    habit.ID
	Notes string
	Store *app.Store
	JSON  bool
	Out   io.Writer
}

func (n *Note) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not track, no store")
	}
	notes := n.Notes
	if !n.Store.UpdateHabit(app.HabitPatch{ID: n.ID, Notes: &notes}) {
		return fmt.Errorf("%w: %d", app.ErrHabitNotFound, n.ID)
	}
	return n.print()
}

func (n *Note) print() error {
	h, _ := n.Store.Habit(n.ID)
	if n.JSON {
		return printers.JSON(n.Out, h)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Habits(h)
	return nil
}

// Tag adds a tag to a habit, or removes it when Remove is set.
type Tag struct {
	ID     habit.ID
	Tag    string
	Remove bool
	Store  *app.Store
	JSON   bool
	Out    io.Writer
}

func (n *Tag) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not track, no store")
	}
	if _, ok := n.Store.Habit(n.ID); !ok {
		return fmt.Errorf("%w: %d", app.ErrHabitNotFound, n.ID)
	}
	if n.Remove {
		n.Store.RemoveHabitTag(n.ID, n.Tag)
	} else {
		n.Store.AddHabitTag(n.ID, n.Tag)
	}
	h, _ := n.Store.Habit(n.ID)
	if n.JSON {
		return printers.JSON(n.Out, h)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.HabitDetail(n.Store.HabitDetail(n.ID, n.Store.Now()))
	return nil
}
