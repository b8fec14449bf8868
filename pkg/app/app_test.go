package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/task"
)

var fixedNow = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)

func newTestStore(t *testing.T, kv store.KV) *Store {
	t.Helper()
	n := 0
	return New(kv,
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("task-%d", 100+n)
		}),
	)
}

func seed(t *testing.T, kv store.KV, key string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := kv.Save(key, string(b)); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestLoadDedupesKeepingFirst(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{
		{ID: 3, Name: "three"},
		{ID: 1, Name: "one"},
		{ID: 3, Name: "three again"},
	})
	seed(t, kv, store.TasksKey, []task.Task{
		{ID: "b", Title: "B"},
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B2"},
	})
	s := newTestStore(t, kv)

	hs := s.Habits()
	if len(hs) != 2 || hs[0].Name != "three" || hs[1].Name != "one" {
		t.Fatalf("unexpected habits %+v", hs)
	}
	ts := s.Tasks()
	if len(ts) != 2 || ts[0].Title != "B" || ts[1].Title != "A" {
		t.Fatalf("unexpected tasks %+v", ts)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		habits string
		tasks  string
	}{
		{name: "missing"},
		{name: "empty arrays", habits: "[]", tasks: "[]"},
		{name: "malformed", habits: "{not json", tasks: `[{"id": 1}]`},
		{name: "wrong shape", habits: `{"id":1}`, tasks: `"nope"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			if tt.habits != "" {
				_ = kv.Save(store.HabitsKey, tt.habits)
			}
			if tt.tasks != "" {
				_ = kv.Save(store.TasksKey, tt.tasks)
			}
			s := newTestStore(t, kv)
			if !reflect.DeepEqual(s.Habits(), habit.Defaults()) {
				t.Fatalf("expected default habits")
			}
			if !reflect.DeepEqual(s.Tasks(), task.Defaults(fixedNow)) {
				t.Fatalf("expected default tasks")
			}
		})
	}
}

func TestToggleHabitExample(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{{ID: 1, Streak: 2, History: []int{1, 1, 0}}})
	s := newTestStore(t, kv)

	if !s.ToggleHabit(1) {
		t.Fatalf("expected toggle to apply")
	}
	h, _ := s.Habit(1)
	if !h.Completed || h.Streak != 3 || h.History[2] != 1 {
		t.Fatalf("unexpected habit %+v", h)
	}
	s.ToggleHabit(1)
	h, _ = s.Habit(1)
	if h.Completed || h.Streak != 2 || h.History[2] != 0 {
		t.Fatalf("unexpected habit %+v", h)
	}

	var persisted []habit.Habit
	raw, _ := kv.Load(store.HabitsKey)
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted habits: %v", err)
	}
	if !reflect.DeepEqual(persisted, s.Habits()) {
		t.Fatalf("persisted state differs from memory")
	}
}

func TestToggleHabitUnknownIsNoop(t *testing.T) {
	kv := store.NewMemory()
	s := newTestStore(t, kv)
	before := s.Habits()
	writes := kv.Writes()
	if s.ToggleHabit(999) {
		t.Fatalf("expected no-op")
	}
	if !reflect.DeepEqual(before, s.Habits()) || kv.Writes() != writes {
		t.Fatalf("unknown id must not change or persist anything")
	}
}

func TestUpdateHabitMergesOnlyGivenFields(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{{ID: 1, Name: "Run", Category: "Fitness", Notes: "old", Tags: []string{"a"}, Streak: 4}})
	s := newTestStore(t, kv)

	notes := "new notes"
	if !s.UpdateHabit(HabitPatch{ID: 1, Notes: &notes}) {
		t.Fatalf("expected update")
	}
	h, _ := s.Habit(1)
	if h.Notes != "new notes" || h.Name != "Run" || h.Category != "Fitness" || h.Streak != 4 || !reflect.DeepEqual(h.Tags, []string{"a"}) {
		t.Fatalf("unexpected merge %+v", h)
	}
	if s.UpdateHabit(HabitPatch{ID: 2, Notes: &notes}) {
		t.Fatalf("unknown habit should be a no-op")
	}
}

func TestHabitTags(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{{ID: 1, Tags: []string{"a"}}})
	s := newTestStore(t, kv)
	if s.AddHabitTag(1, "a") {
		t.Fatalf("duplicate tag should not change anything")
	}
	if !s.AddHabitTag(1, "b") {
		t.Fatalf("expected b added")
	}
	if !s.RemoveHabitTag(1, "a") {
		t.Fatalf("expected a removed")
	}
	if !s.RemoveHabitTag(1, "b") {
		t.Fatalf("expected b removed")
	}
	h, _ := s.Habit(1)
	if len(h.Tags) != 0 {
		t.Fatalf("expected no tags, got %v", h.Tags)
	}
}

func TestCompleteNextHabit(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{
		{ID: 1, Completed: true, Streak: 1, History: []int{1}},
		{ID: 2, History: []int{0}},
	})
	s := newTestStore(t, kv)
	h, ok := s.CompleteNextHabit()
	if !ok || h.ID != 2 || !h.Completed {
		t.Fatalf("expected habit 2 completed, got %+v %v", h, ok)
	}
	if _, ok := s.CompleteNextHabit(); ok {
		t.Fatalf("nothing left to complete")
	}
}

func TestAddTaskExample(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.TasksKey, []task.Task{{ID: "old", Title: "Old"}})
	s := newTestStore(t, kv)

	got, err := s.AddTask(task.Input{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := task.Task{ID: "task-101", Title: "Buy milk", Priority: task.Medium, Deadline: "2025-03-03", Tags: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "task-101" || tasks[1].ID != "old" {
		t.Fatalf("new task must be prepended, got %+v", tasks)
	}
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	kv := store.NewMemory()
	s := newTestStore(t, kv)
	before := s.Tasks()
	writes := kv.Writes()
	if _, err := s.AddTask(task.Input{Title: "   "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if !reflect.DeepEqual(before, s.Tasks()) || kv.Writes() != writes {
		t.Fatalf("rejected input must not create a task")
	}
}

func TestAddThenDeleteRestores(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	before := s.Tasks()
	added, err := s.AddTask(task.Input{Title: "Temp", Priority: task.High})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !s.DeleteTask(added.ID) {
		t.Fatalf("expected delete")
	}
	if !reflect.DeepEqual(before, s.Tasks()) {
		t.Fatalf("collection not restored")
	}
	if s.DeleteTask(added.ID) {
		t.Fatalf("second delete should be a no-op")
	}
}

func TestAddTaskIDsUnique(t *testing.T) {
	s := New(store.NewMemory(), WithClock(func() time.Time { return fixedNow }))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		tk, err := s.AddTask(task.Input{Title: "t"})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[tk.ID] {
			t.Fatalf("duplicate id %s", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestToggleTaskKeepsSelectionInStep(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.TasksKey, []task.Task{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
	s := newTestStore(t, kv)

	if !s.SelectTask("a") {
		t.Fatalf("expected selection")
	}
	s.ToggleTask("a")
	sel, ok := s.SelectedTask()
	if !ok || !sel.Completed {
		t.Fatalf("selection should follow toggle, got %+v", sel)
	}
	s.ToggleTask("b")
	sel, _ = s.SelectedTask()
	if !sel.Completed {
		t.Fatalf("toggling another task must not touch the selection")
	}
	s.DeleteTask("a")
	if _, ok := s.SelectedTask(); ok {
		t.Fatalf("deleting the selected task should clear the selection")
	}
	if s.SelectTask("zzz") {
		t.Fatalf("unknown task cannot be selected")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, store.HabitsKey, []habit.Habit{{ID: 1, History: []int{0}}})
	s := newTestStore(t, kv)
	kv.FailWrites(true)

	if !s.ToggleHabit(1) {
		t.Fatalf("toggle should still apply")
	}
	h, _ := s.Habit(1)
	if !h.Completed {
		t.Fatalf("in-memory state must survive a failed write")
	}
	if _, err := s.AddTask(task.Input{Title: "still works"}); err != nil {
		t.Fatalf("write failure must not surface: %v", err)
	}
	raw, _ := kv.Load(store.HabitsKey)
	if raw != `[{"id":1,"name":"","category":"","completed":false,"streak":0,"history":[0],"notes":"","tags":null}]` {
		t.Fatalf("storage should hold the last successful write, got %s", raw)
	}
}

func TestSubscribeNotifiesOncePerMutation(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	var events []Event
	cancel := s.Subscribe(func(ev Event) {
		events = append(events, ev)
		_ = s.Habits() // observers may read the store
	})
	s.ToggleHabit(1)
	s.SetTaskFilter(task.FilterAll)
	s.SetSearchQuery("milk")
	s.ToggleHabit(12345)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Kind != EventHabitsChanged || events[0].ID != "1" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	cancel()
	s.ToggleHabit(1)
	if len(events) != 3 {
		t.Fatalf("cancelled observer must not be called")
	}
}

func TestFilterAndSearchState(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	if s.TaskFilter() != task.FilterToday {
		t.Fatalf("default filter should be today")
	}
	s.SetTaskFilter(task.FilterUpcoming)
	s.SetSearchQuery("work")
	v := s.TaskList(fixedNow)
	if v.Header != "Upcoming Tasks" || v.Query != "work" {
		t.Fatalf("unexpected view %+v", v)
	}
	if len(v.Tasks) != 1 || v.Tasks[0].Title != "Finish project proposal" {
		t.Fatalf("unexpected tasks %+v", v.Tasks)
	}
}

func TestEmptyTagsRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Save(store.HabitsKey, `[{"id":1,"name":"Walk","category":"Health","completed":false,"streak":0,"history":[],"notes":"","tags":["x"]}]`)
	_ = kv.Save(store.TasksKey, `[{"id":"a","title":"A","description":"","priority":"low","deadline":"2025-03-03","completed":false,"tags":[]}]`)
	s := newTestStore(t, kv)

	if got := s.Tasks()[0].Tags; got == nil {
		t.Errorf("snapshot turned persisted empty tags into nil")
	}
	if !s.RemoveHabitTag(1, "x") {
		t.Fatal("expected tag x to be removed")
	}
	h, _ := s.Habit(1)
	if h.Tags == nil || len(h.Tags) != 0 {
		t.Errorf("want empty non-nil tags, got %#v", h.Tags)
	}
	raw, _ := kv.Load(store.HabitsKey)
	want := `[{"id":1,"name":"Walk","category":"Health","completed":false,"streak":0,"history":[],"notes":"","tags":[]}]`
	if raw != want {
		t.Errorf("persisted habits\n got %s\nwant %s", raw, want)
	}

	added, err := s.AddTask(task.Input{Title: "B"})
	if err != nil {
		t.Fatal(err)
	}
	if added.Tags == nil {
		t.Error("added task has nil tags")
	}
	raw, _ = kv.Load(store.TasksKey)
	if want := `"tags":null`; strings.Contains(raw, want) {
		t.Errorf("persisted tasks contain %s: %s", want, raw)
	}
}

func TestRejectedAddKeepsNextID(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	if _, err := s.AddTask(task.Input{Title: ""}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	got, err := s.AddTask(task.Input{Title: "Real"})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "task-101" {
		t.Fatalf("got id %q, want task-101", got.ID)
	}
}
