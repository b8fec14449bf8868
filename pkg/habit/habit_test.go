package habit

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestToggleExample(t *testing.T) {
	h := Habit{ID: 1, Streak: 2, History: []int{1, 0, 0}}

	h.Toggle()
	if !h.Completed || h.Streak != 3 || h.History[2] != 1 {
		t.Fatalf("after first toggle got completed=%v streak=%d history=%v", h.Completed, h.Streak, h.History)
	}

	h.Toggle()
	if h.Completed || h.Streak != 2 || h.History[2] != 0 {
		t.Fatalf("after second toggle got completed=%v streak=%d history=%v", h.Completed, h.Streak, h.History)
	}
	if h.History[0] != 1 || h.History[1] != 0 {
		t.Fatalf("older history must be untouched: %v", h.History)
	}
}

func TestToggleStreakFloor(t *testing.T) {
	h := Habit{ID: 1, Completed: true, Streak: 0, History: []int{1}}

	h.Toggle()
	if h.Streak != 0 {
		t.Fatalf("streak must not go negative, got %d", h.Streak)
	}
	for i := 0; i < 9; i++ {
		h.Toggle()
		if h.Streak < 0 {
			t.Fatalf("negative streak after %d toggles", i+2)
		}
		want := 0
		if h.Completed {
			want = 1
		}
		if h.History[0] != want {
			t.Fatalf("history should mirror completed, got %v", h.History)
		}
	}
}

func TestToggleEmptyHistory(t *testing.T) {
	h := Habit{ID: 1}
	h.Toggle()
	if len(h.History) != 0 {
		t.Fatalf("empty history must stay empty, got %v", h.History)
	}
}

func TestTags(t *testing.T) {
	h := Habit{Tags: []string{"a"}}
	if h.AddTag("a") {
		t.Fatalf("duplicate tag should be ignored")
	}
	if h.AddTag("   ") {
		t.Fatalf("blank tag should be ignored")
	}
	if !h.AddTag(" b ") {
		t.Fatalf("expected tag b to be added")
	}
	if !reflect.DeepEqual(h.Tags, []string{"a", "b"}) {
		t.Fatalf("unexpected tags %v", h.Tags)
	}
	if !h.RemoveTag("a") || !reflect.DeepEqual(h.Tags, []string{"b"}) {
		t.Fatalf("expected a removed, got %v", h.Tags)
	}
	if h.RemoveTag("zzz") {
		t.Fatalf("removing a missing tag should report no change")
	}
}

func TestCloneDoesNotShare(t *testing.T) {
	h := Habit{History: []int{0, 1}, Tags: []string{"x"}}
	c := h.Clone()
	c.History[0] = 1
	c.Tags[0] = "y"
	if h.History[0] != 0 || h.Tags[0] != "x" {
		t.Fatalf("clone shares backing arrays")
	}
}

func TestDedupeKeepsFirst(t *testing.T) {
	in := []Habit{
		{ID: 2, Name: "first two"},
		{ID: 1, Name: "first one"},
		{ID: 2, Name: "second two"},
		{ID: 3, Name: "three"},
		{ID: 1, Name: "second one"},
	}
	got := Dedupe(in)
	names := make([]string, len(got))
	for i, h := range got {
		names[i] = h.Name
	}
	want := []string{"first two", "first one", "three"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v, want %v", names, want)
	}
}

func TestIDAcceptsStrings(t *testing.T) {
	var hs []Habit
	if err := json.Unmarshal([]byte(`[{"id":"7","name":"a"},{"id":8,"name":"b"}]`), &hs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hs[0].ID != 7 || hs[1].ID != 8 {
		t.Fatalf("unexpected ids %v %v", hs[0].ID, hs[1].ID)
	}
	if err := json.Unmarshal([]byte(`[{"id":"seven"}]`), &hs); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestRoundTrip(t *testing.T) {
	want := Defaults()
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got []Habit
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestDefaultsAreWellFormed(t *testing.T) {
	seen := map[ID]bool{}
	for _, h := range Defaults() {
		if seen[h.ID] {
			t.Fatalf("duplicate default id %d", h.ID)
		}
		seen[h.ID] = true
		if len(h.History) != HistoryWindow {
			t.Fatalf("%s: history has %d entries", h.Name, len(h.History))
		}
		last := h.History[len(h.History)-1]
		if (last == 1) != h.Completed {
			t.Fatalf("%s: last history entry %d does not mirror completed=%v", h.Name, last, h.Completed)
		}
	}
}
