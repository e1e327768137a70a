package task

import "strings"

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// statusAliases maps accepted input words (lower-cased) to their canonical
// status. The parser consults this table; Label owns the display form. Keep
// the two together so they cannot drift.
var statusAliases = map[string]Status{
	"todo":        StatusTodo,
	"to-do":       StatusTodo,
	"in-progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"done":        StatusDone,
	"completed":   StatusDone,
}

// ParseStatus parses user-supplied status text, case-insensitively.
// Unrecognized text returns a *StatusError carrying the original input.
func ParseStatus(text string) (Status, error) {
	if s, ok := statusAliases[strings.ToLower(text)]; ok {
		return s, nil
	}
	return "", &StatusError{Text: text}
}

// Valid reports whether s is one of the three canonical statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the display form of the status.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "IN-PROGRESS"
	case StatusDone:
		return "DONE"
	default:
		return "TODO"
	}
}
