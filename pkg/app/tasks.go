package app

import (
	"tableflip.dev/habits/pkg/task"
)

// Tasks returns a copy of the task collection, newest first.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.CloneAll(s.tasks)
}

// Task returns a copy of the task with id.
func (s *Store) Task(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i].Clone(), true
	}
	return task.Task{}, false
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// ToggleTask flips completion for id. An open selection of the same task is
// kept in lock-step.
func (s *Store) ToggleTask(id string) bool {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	if s.selected != nil && s.selected.ID == id {
		s.selected.Completed = !s.selected.Completed
	}
	s.persistTasks()
	s.unlockAndNotify(Event{Kind: EventTasksChanged, ID: id})
	return true
}

// AddTask validates in, creates a task with a fresh id and prepends it. A
// validation error leaves the collection untouched.
func (s *Store) AddTask(in task.Input) (task.Task, error) {
	if err := in.Validate(); err != nil {
		return task.Task{}, err
	}
	s.mu.Lock()
	t, err := task.New(s.newID(), in, s.now())
	if err != nil {
		s.mu.Unlock()
		return task.Task{}, err
	}
	s.tasks = append([]task.Task{t}, s.tasks...)
	s.persistTasks()
	s.unlockAndNotify(Event{Kind: EventTasksChanged, ID: t.ID})
	return t.Clone(), nil
}

// DeleteTask removes id. Deleting the selected task clears the selection.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.persistTasks()
	s.unlockAndNotify(Event{Kind: EventTasksChanged, ID: id})
	return true
}

// SelectTask opens id in the detail view. Unknown ids clear the selection.
func (s *Store) SelectTask(id string) bool {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.selected = nil
	} else {
		t := s.tasks[i].Clone()
		s.selected = &t
	}
	s.unlockAndNotify(Event{Kind: EventSelectionChanged, ID: id})
	return i >= 0
}

// ClearSelection closes the task detail view.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.unlockAndNotify(Event{Kind: EventSelectionChanged})
}

// SelectedTask returns the task open in the detail view.
func (s *Store) SelectedTask() (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return task.Task{}, false
	}
	return s.selected.Clone(), true
}

// SetTaskFilter changes the task list filter.
func (s *Store) SetTaskFilter(f task.Filter) {
	s.mu.Lock()
	s.filter = f
	s.unlockAndNotify(Event{Kind: EventFilterChanged, ID: string(f)})
}

// TaskFilter is the current task list filter.
func (s *Store) TaskFilter() task.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetSearchQuery narrows the task list.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.unlockAndNotify(Event{Kind: EventFilterChanged})
}

// SearchQuery is the current task search text.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}
