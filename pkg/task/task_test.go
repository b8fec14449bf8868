package task

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

var now = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)

func TestNewDefaults(t *testing.T) {
	got, err := New("task-x", Input{Title: "Buy milk"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Task{
		ID:       "task-x",
		Title:    "Buy milk",
		Priority: Medium,
		Deadline: "2025-03-03",
		Tags:     []string{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestNewRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := New("id", Input{Title: title}, now); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
}

func TestNewTrimsTitle(t *testing.T) {
	got, err := New("id", Input{Title: "  Call  mom "}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Call  mom" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}

func TestNewValidatesFields(t *testing.T) {
	if _, err := New("id", Input{Title: "x", Priority: "urgent"}, now); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if _, err := New("id", Input{Title: "x", Deadline: "03/04/2025"}, now); !errors.Is(err, ErrInvalidDeadline) {
		t.Fatalf("expected ErrInvalidDeadline, got %v", err)
	}
	got, err := New("id", Input{Title: "x", Priority: "HIGH", Deadline: "2025-04-01", Tags: []string{" a ", ""}}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Priority != High || got.Deadline != "2025-04-01" || !reflect.DeepEqual(got.Tags, []string{"a"}) {
		t.Fatalf("unexpected task %#v", got)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestPriorityNext(t *testing.T) {
	p := High
	got := []Priority{}
	for i := 0; i < 4; i++ {
		p = p.Next()
		got = append(got, p)
	}
	want := []Priority{Medium, Low, High, Medium}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestDedupe(t *testing.T) {
	in := []Task{{ID: "a", Title: "1"}, {ID: "b"}, {ID: "a", Title: "2"}}
	got := Dedupe(in)
	if len(got) != 2 || got[0].Title != "1" || got[1].ID != "b" {
		t.Fatalf("unexpected %#v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	want := Defaults(now)
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got []Task
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch")
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" work, ,home ,")
	if len(got) != 2 || got[0] != "work" || got[1] != "home" {
		t.Fatalf("SplitTags = %v", got)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}
