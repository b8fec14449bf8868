package info

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	s := app.New(store.NewMemory())

	var buf bytes.Buffer
	if err := (&Habit{ID: 2, Store: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Read 20 Pages") {
		t.Errorf("habit detail missing name:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&Task{ID: "task-4", Store: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Finish project proposal") {
		t.Errorf("task detail missing title:\n%s", buf.String())
	}

	if err := (&Habit{ID: 99, Store: s, JSON: true, Out: &buf}).Do(context.Background()); !errors.Is(err, app.ErrHabitNotFound) {
		t.Errorf("got %v, want ErrHabitNotFound", err)
	}
	if err := (&Task{ID: "nope", Store: s, Out: &buf}).Do(context.Background()); !errors.Is(err, app.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}
}
