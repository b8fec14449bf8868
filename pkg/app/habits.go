package app

import (
	"slices"

	"tableflip.dev/habits/pkg/habit"
)

// HabitPatch carries the fields to merge into an existing habit. Nil fields
// are left untouched.
type HabitPatch struct {
	ID        habit.ID
	Name      *string
	Category  *string
	Completed *bool
	Streak    *int
	History   []int
	Notes     *string
	Tags      []string
	Icon      *string
}

// Habits returns a copy of the habit collection.
func (s *Store) Habits() []habit.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return habit.CloneAll(s.habits)
}

// Habit returns a copy of the habit with id.
func (s *Store) Habit(id habit.ID) (habit.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.habitIndex(id); i >= 0 {
		return s.habits[i].Clone(), true
	}
	return habit.Habit{}, false
}

func (s *Store) habitIndex(id habit.ID) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

// ToggleHabit flips today's completion for id. It reports false, and changes
// nothing, when no such habit exists.
func (s *Store) ToggleHabit(id habit.ID) bool {
	s.mu.Lock()
	i := s.habitIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.habits[i].Toggle()
	s.persistHabits()
	s.unlockAndNotify(Event{Kind: EventHabitsChanged, ID: id.String()})
	return true
}

// UpdateHabit shallow-merges patch into the habit with patch.ID.
func (s *Store) UpdateHabit(patch HabitPatch) bool {
	s.mu.Lock()
	i := s.habitIndex(patch.ID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	h := &s.habits[i]
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Category != nil {
		h.Category = *patch.Category
	}
	if patch.Completed != nil {
		h.Completed = *patch.Completed
	}
	if patch.Streak != nil {
		h.Streak = *patch.Streak
	}
	if patch.History != nil {
		h.History = slices.Clone(patch.History)
	}
	if patch.Notes != nil {
		h.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		h.Tags = slices.Clone(patch.Tags)
	}
	if patch.Icon != nil {
		h.Icon = *patch.Icon
	}
	s.persistHabits()
	s.unlockAndNotify(Event{Kind: EventHabitsChanged, ID: patch.ID.String()})
	return true
}

// AddHabitTag adds a tag to a habit, suppressing duplicates.
func (s *Store) AddHabitTag(id habit.ID, tag string) bool {
	h, ok := s.Habit(id)
	if !ok || !h.AddTag(tag) {
		return false
	}
	return s.UpdateHabit(HabitPatch{ID: id, Tags: h.Tags})
}

// RemoveHabitTag removes a tag from a habit.
func (s *Store) RemoveHabitTag(id habit.ID, tag string) bool {
	h, ok := s.Habit(id)
	if !ok || !h.RemoveTag(tag) {
		return false
	}
	if h.Tags == nil {
		h.Tags = []string{}
	}
	return s.UpdateHabit(HabitPatch{ID: id, Tags: h.Tags})
}

// CompleteNextHabit toggles the first habit not yet done today. It is the
// dashboard's quick action; false means every habit is already done.
func (s *Store) CompleteNextHabit() (habit.Habit, bool) {
	s.mu.Lock()
	for i := range s.habits {
		if s.habits[i].Completed {
			continue
		}
		s.habits[i].Toggle()
		done := s.habits[i].Clone()
		s.persistHabits()
		s.unlockAndNotify(Event{Kind: EventHabitsChanged, ID: done.ID.String()})
		return done, true
	}
	s.mu.Unlock()
	return habit.Habit{}, false
}
