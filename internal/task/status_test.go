package task

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"todo", StatusTodo},
		{"To-Do", StatusTodo},
		{"TODO", StatusTodo},
		{"in-progress", StatusInProgress},
		{"InProgress", StatusInProgress},
		{"IN-PROGRESS", StatusInProgress},
		{"done", StatusDone},
		{"DONE", StatusDone},
		{"completed", StatusDone},
		{"Completed", StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if err != nil {
				t.Fatalf("ParseStatus(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStatusUnrecognized(t *testing.T) {
	for _, input := range []string{"doing", "blocked", "", "do ne"} {
		_, err := ParseStatus(input)
		var se *StatusError
		if !errors.As(err, &se) {
			t.Errorf("ParseStatus(%q): got %v, want *StatusError", input, err)
			continue
		}
		if se.Text != input {
			t.Errorf("ParseStatus(%q): error carries %q", input, se.Text)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "TODO"},
		{StatusInProgress, "IN-PROGRESS"},
		{StatusDone, "DONE"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Label(%q): got %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTaskString(t *testing.T) {
	task, err := New("Write docs")
	if err != nil {
		t.Fatal(err)
	}
	if got := task.String(); got != "Write docs [TODO]" {
		t.Errorf("String: got %q", got)
	}
	task.Status = StatusDone
	if got := task.String(); got != "Write docs [DONE]" {
		t.Errorf("String: got %q", got)
	}
}
