package complete

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/store"
)

func newStore() *app.Store {
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)
	return app.New(store.NewMemory(), app.WithClock(func() time.Time { return now }))
}

func TestHabitToggles(t *testing.T) {
	color.NoColor = true
	s := newStore()
	var buf bytes.Buffer
	r := Habit{ID: 1, Store: s, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if h, _ := s.Habit(1); !h.Completed {
		t.Error("habit 1 not completed after toggle")
	}
	if !strings.Contains(buf.String(), "Morning Meditation") {
		t.Errorf("output missing habit name:\n%s", buf.String())
	}
}

func TestHabitUnknown(t *testing.T) {
	r := Habit{ID: 99, Store: newStore(), Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrHabitNotFound) {
		t.Fatalf("got %v, want ErrHabitNotFound", err)
	}
}

func TestNextSkipsDoneHabits(t *testing.T) {
	s := newStore()
	var buf bytes.Buffer
	r := Next{Store: s, JSON: true, Out: &buf}
	for {
		before := 0
		for _, h := range s.Habits() {
			if !h.Completed {
				before++
			}
		}
		err := r.Do(context.Background())
		if before == 0 {
			if err == nil {
				t.Fatal("expected an error once every habit is done")
			}
			return
		}
		if err != nil {
			t.Fatalf("with %d open habits: %v", before, err)
		}
	}
}

func TestTaskToggleJSON(t *testing.T) {
	s := newStore()
	var buf bytes.Buffer
	r := Task{ID: "task-1", Store: s, JSON: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"completed": true`) {
		t.Errorf("want completed task in JSON, got:\n%s", buf.String())
	}

	r = Task{ID: "task-404", Store: s, Out: &buf}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrTaskNotFound) {
		t.Fatalf("got %v, want ErrTaskNotFound", err)
	}
}

func TestNoStore(t *testing.T) {
	if err := (&Task{ID: "task-1"}).Do(context.Background()); err == nil {
		t.Error("expected an error without a store")
	}
}
