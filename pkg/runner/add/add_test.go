package add

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
	"tableflip.dev/habits/pkg/task"
)

func TestAdd(t *testing.T) {
	color.NoColor = true
	now := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)
	s := app.New(store.NewMemory(),
		app.WithClock(func() time.Time { return now }),
		app.WithIDs(func() string { return "task-101" }))
	before := len(s.Tasks())

	var buf bytes.Buffer
	r := Add{Store: s, Input: task.Input{Title: "Water the plants", Priority: task.Low, Tags: []string{"home"}}, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	tasks := s.Tasks()
	if len(tasks) != before+1 || tasks[0].ID != "task-101" {
		t.Fatalf("new task not prepended: %+v", tasks[0])
	}
	if !strings.Contains(buf.String(), "Water the plants") {
		t.Errorf("output missing title:\n%s", buf.String())
	}

	r = Add{Store: s, Input: task.Input{Title: "   "}, Out: &buf}
	if err := r.Do(context.Background()); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("got %v, want ErrEmptyTitle", err)
	}
	if len(s.Tasks()) != before+1 {
		t.Error("rejected input changed the collection")
	}
}
