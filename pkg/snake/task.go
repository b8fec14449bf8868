package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/habits/pkg/task"
	"tableflip.dev/habits/pkg/timeutil"
)

var lineTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Task asks for the fields of a new task. The deadline defaults to today.
func (p Prompter) Task(now time.Time) (task.Input, error) {
	title, err := p.line("Title", "", validateTitle)
	if err != nil {
		return task.Input{}, err
	}
	description, err := p.line("Description", "", nil)
	if err != nil {
		return task.Input{}, err
	}
	prio, err := p.priority()
	if err != nil {
		return task.Input{}, err
	}
	deadline, err := p.line("Deadline", timeutil.DateKey(now), validateDeadline)
	if err != nil {
		return task.Input{}, err
	}
	tags, err := p.line("Tags (comma separated)", "", nil)
	if err != nil {
		return task.Input{}, err
	}
	return task.Input{
		Title:       title,
		Description: description,
		Priority:    prio,
		Deadline:    deadline,
		Tags:        task.SplitTags(tags),
	}, nil
}

func (p Prompter) line(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: lineTemplates,
		Validate:  validate,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(result), nil
}

func (p Prompter) priority() (task.Priority, error) {
	prios := task.Priorities()
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Priority",
		Items:     prios,
		CursorPos: 1,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt priority: %w", err)
	}
	return prios[i], nil
}

func validateTitle(input string) error {
	if strings.TrimSpace(input) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

func validateDeadline(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if _, err := timeutil.ParseDateKey(strings.TrimSpace(input)); err != nil {
		return task.ErrInvalidDeadline
	}
	return nil
}
