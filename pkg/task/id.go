package task

import "github.com/google/uuid"

// NewID returns a fresh, time-ordered task id.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "task-" + id.String()
}
