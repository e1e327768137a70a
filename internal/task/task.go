package task

import (
	"fmt"
	"strings"
)

// Task represents a single tracked task.
type Task struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// New creates a task from user input. The description is trimmed and must
// be non-empty afterwards; new tasks always start as todo.
func New(description string) (Task, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return Task{}, ErrEmptyDescription
	}
	return Task{Description: trimmed, Status: StatusTodo}, nil
}

// Done returns true if the task is complete.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// String renders the task as "description [LABEL]".
func (t Task) String() string {
	return fmt.Sprintf("%s [%s]", t.Description, t.Status.Label())
}
