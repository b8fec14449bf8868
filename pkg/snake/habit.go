package snake

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/habits/pkg/habit"
)

// ErrNoHabits is returned when there is nothing to choose from.
var ErrNoHabits = errors.New("snake: no habits to choose from")

// Habit lets the user pick one of habits.
func (p Prompter) Habit(habits []habit.Habit) (habit.ID, error) {
	if len(habits) == 0 {
		return 0, ErrNoHabits
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Icon }} {{ .Name | bold }} {{ .Category | green }}",
		Inactive: "   {{ .Icon }} {{ .Name }} {{ .Category | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
streak: {{ .Streak }}  done today: {{ .Completed }}
{{ .Notes }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Habits",
		Items:     habits,
		Templates: templates,
		Size:      10,
		Searcher:  habitSearcher(habits),
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt habit: %w", err)
	}
	return habits[i].ID, nil
}

func habitSearcher(habits []habit.Habit) func(string, int) bool {
	return func(input string, index int) bool {
		h := habits[index]
		return fuzzy(h.Name+h.Category, input)
	}
}
