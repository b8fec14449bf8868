package snake

import (
	"errors"
	"testing"

	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/task"
)

func TestValidateTitle(t *testing.T) {
	if err := validateTitle("   "); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := validateTitle("Buy milk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDeadline(t *testing.T) {
	for in, ok := range map[string]bool{
		"":           true,
		"2025-03-09": true,
		"tomorrow":   false,
		"2025-13-01": false,
	} {
		if err := validateDeadline(in); (err == nil) != ok {
			t.Errorf("validateDeadline(%q) = %v", in, err)
		}
	}
}

func TestHabitSearcher(t *testing.T) {
	search := habitSearcher(habit.Defaults())
	if !search("morning med", 0) {
		t.Fatalf("expected fuzzy match on name")
	}
	if !search("LEARN", 1) {
		t.Fatalf("expected match on category")
	}
	if search("water", 0) {
		t.Fatalf("did not expect a match")
	}
}

func TestHabitWithoutChoices(t *testing.T) {
	if _, err := (Prompter{}).Habit(nil); !errors.Is(err, ErrNoHabits) {
		t.Fatalf("expected ErrNoHabits, got %v", err)
	}
}
