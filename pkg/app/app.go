// Package app owns the habit and task collections. It loads them from a
// store.KV, applies every mutation, writes the affected collection back and
// notifies observers so UIs and CLIs can share one source of truth.
package app

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/task"
)

var (
	ErrHabitNotFound = errors.New("app: habit not found")
	ErrTaskNotFound  = errors.New("app: task not found")
)

// EventKind says what changed.
type EventKind int

const (
	EventHabitsChanged EventKind = iota
	EventTasksChanged
	EventSelectionChanged
	EventFilterChanged
)

// Event is delivered to observers after a change has been applied.
type Event struct {
	Kind EventKind
	// ID is the habit or task id the change was about, when there is one.
	ID string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides the task id generator.
func WithIDs(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// Store holds the current collections and UI selection state.
type Store struct {
	mu sync.Mutex

	kv    store.KV
	log   *log.Logger
	now   func() time.Time
	newID func() string

	habits []habit.Habit
	tasks  []task.Task

	selected    *task.Task
	filter      task.Filter
	searchQuery string

	observers map[int]func(Event)
	nextObs   int
}

// New loads both collections from kv. Missing, malformed or empty data falls
// back to the built-in defaults; nothing here fails.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		log:       store.DiscardLogger(),
		now:       time.Now,
		newID:     task.NewID,
		filter:    task.FilterToday,
		observers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.habits = s.loadHabits()
	s.tasks = s.loadTasks()
	return s
}

func (s *Store) loadHabits() []habit.Habit {
	var list []habit.Habit
	if !s.decode(store.HabitsKey, &list) {
		return habit.Defaults()
	}
	list = habit.Dedupe(list)
	if len(list) == 0 {
		return habit.Defaults()
	}
	return list
}

func (s *Store) loadTasks() []task.Task {
	var list []task.Task
	if !s.decode(store.TasksKey, &list) {
		return task.Defaults(s.now())
	}
	list = task.Dedupe(list)
	if len(list) == 0 {
		return task.Defaults(s.now())
	}
	return list
}

func (s *Store) decode(key string, into any) bool {
	if s.kv == nil {
		return false
	}
	raw, ok := s.kv.Load(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		s.log.Error("error loading collection, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

// persist writes one collection. Failures are logged and otherwise ignored:
// the in-memory state stays authoritative for the session. Callers hold mu.
func (s *Store) persist(key string, v any) {
	if s.kv == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("error encoding collection", "key", key, "err", err)
		return
	}
	if err := s.kv.Save(key, string(b)); err != nil {
		s.log.Error("error saving collection", "key", key, "err", err)
	}
}

func (s *Store) persistHabits() { s.persist(store.HabitsKey, s.habits) }
func (s *Store) persistTasks()  { s.persist(store.TasksKey, s.tasks) }

// Subscribe registers fn for change events. The returned func unregisters it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// unlockAndNotify releases mu before calling observers so they may read the
// store.
func (s *Store) unlockAndNotify(ev Event) {
	fns := make([]func(Event), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Now is the store's clock, exposed so views agree on "today".
func (s *Store) Now() time.Time {
	return s.now()
}
