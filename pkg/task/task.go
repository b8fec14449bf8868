// Package task models one-off to-do items and the filtered views over them.
package task

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tableflip.dev/habits/pkg/timeutil"
)

var (
	// ErrEmptyTitle is returned when a task would be created without a title.
	ErrEmptyTitle = errors.New("Please enter a title for the task")
	// ErrInvalidPriority is returned for priorities outside high/medium/low.
	ErrInvalidPriority = errors.New("task: priority must be high, medium or low")
	// ErrInvalidDeadline is returned for deadlines that are not YYYY-MM-DD.
	ErrInvalidDeadline = errors.New("task: deadline must be YYYY-MM-DD")
)

// Priority ranks a task.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Priorities lists the known priorities, highest first.
func Priorities() []Priority {
	return []Priority{High, Medium, Low}
}

// ParsePriority accepts a case-insensitive priority name; blank means medium.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Medium, nil
	case High:
		return High, nil
	case Medium:
		return Medium, nil
	case Low:
		return Low, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Next cycles high → medium → low → high.
func (p Priority) Next() Priority {
	switch p {
	case High:
		return Medium
	case Medium:
		return Low
	default:
		return High
	}
}

// Label is the capitalised display form.
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Task is a one-off to-do item.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Deadline    string   `json:"deadline"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
}

// Input carries the user-provided fields for a new task. Blank fields take
// their defaults.
type Input struct {
	Title       string
	Description string
	Priority    Priority
	Deadline    string
	Tags        []string
}

// Validate checks user input without creating anything.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if in.Priority != "" {
		if _, err := ParsePriority(string(in.Priority)); err != nil {
			return err
		}
	}
	if d := strings.TrimSpace(in.Deadline); d != "" {
		if _, err := timeutil.ParseDateKey(d); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDeadline, in.Deadline)
		}
	}
	return nil
}

// New builds a task from validated input. The title is trimmed; the
// deadline defaults to today's date key.
func New(id string, in Input, now time.Time) (Task, error) {
	if err := in.Validate(); err != nil {
		return Task{}, err
	}
	prio, _ := ParsePriority(string(in.Priority))
	deadline := strings.TrimSpace(in.Deadline)
	if deadline == "" {
		deadline = TodayKey(now)
	}
	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return Task{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    prio,
		Deadline:    deadline,
		Tags:        tags,
	}, nil
}

// SplitTags splits comma separated tag input, dropping blanks.
func SplitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	c := t
	c.Tags = slices.Clone(t.Tags)
	return c
}

// CloneAll deep-copies a collection.
func CloneAll(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Dedupe keeps the first task seen for each id, preserving first-seen order.
func Dedupe(tasks []Task) []Task {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
