// Package habit models recurring, daily-tracked activities.
package habit

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// HistoryWindow is the number of trailing days a habit's history covers.
const HistoryWindow = 30

// ID identifies a habit. Persisted collections may carry it as a JSON number
// or as a numeric string; it is always written back as a number.
type ID int64

// UnmarshalJSON accepts 42 and "42".
func (id *ID) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("habit: id must be a number: %s", string(b))
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("habit: id must be numeric: %q", s)
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a user-supplied habit id.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("habit: invalid id %q", s)
	}
	return ID(n), nil
}

// Habit is a recurring activity with a completion flag for today, a streak
// counter and a rolling history of daily completions (oldest first).
type Habit struct {
	ID        ID       `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Completed bool     `json:"completed"`
	Streak    int      `json:"streak"`
	History   []int    `json:"history"`
	Notes     string   `json:"notes"`
	Tags      []string `json:"tags"`
	Icon      string   `json:"icon,omitempty"`
}

// Toggle flips today's completion. Completing bumps the streak, undoing it
// decrements the streak without going below zero. The newest history entry
// mirrors the new state.
func (h *Habit) Toggle() {
	h.Completed = !h.Completed
	if h.Completed {
		h.Streak++
	} else if h.Streak > 0 {
		h.Streak--
	}
	if n := len(h.History); n > 0 {
		h.History[n-1] = boolToDay(h.Completed)
	}
}

// AddTag appends tag when it is non-blank and not already present. It
// reports whether the tag set changed.
func (h *Habit) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range h.Tags {
		if t == tag {
			return false
		}
	}
	h.Tags = append(h.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag.
func (h *Habit) RemoveTag(tag string) bool {
	out := h.Tags[:0:0]
	for _, t := range h.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	changed := len(out) != len(h.Tags)
	h.Tags = out
	return changed
}

// DisplayName falls back to a placeholder for unnamed habits.
func (h Habit) DisplayName() string {
	if strings.TrimSpace(h.Name) == "" {
		return "Untitled Habit"
	}
	return h.Name
}

// Clone returns a deep copy so callers never share slices with the owner.
func (h Habit) Clone() Habit {
	c := h
	c.History = slices.Clone(h.History)
	c.Tags = slices.Clone(h.Tags)
	return c
}

// CloneAll deep-copies a collection.
func CloneAll(habits []Habit) []Habit {
	out := make([]Habit, len(habits))
	for i, h := range habits {
		out[i] = h.Clone()
	}
	return out
}

// Dedupe keeps the first habit seen for each id, preserving first-seen order.
func Dedupe(habits []Habit) []Habit {
	seen := make(map[ID]struct{}, len(habits))
	out := make([]Habit, 0, len(habits))
	for _, h := range habits {
		if _, ok := seen[h.ID]; ok {
			continue
		}
		seen[h.ID] = struct{}{}
		out = append(out, h)
	}
	return out
}

func boolToDay(b bool) int {
	if b {
		return 1
	}
	return 0
}
