package task

import (
	"errors"
	"testing"
)

func TestAddTrimsDescription(t *testing.T) {
	s := NewStore()
	if err := s.Add("  Buy milk  "); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries := s.List()
	if len(entries) != 1 {
		t.Fatalf("Len: got %d, want 1", len(entries))
	}
	if entries[0].Index != 1 {
		t.Errorf("Index: got %d, want 1", entries[0].Index)
	}
	if entries[0].Task.Description != "Buy milk" {
		t.Errorf("Description: got %q, want %q", entries[0].Task.Description, "Buy milk")
	}
	if entries[0].Task.Status != StatusTodo {
		t.Errorf("Status: got %q, want %q", entries[0].Task.Status, StatusTodo)
	}
}

func TestAddEmptyDescription(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		s := NewStore()
		if err := s.Add(input); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("Add(%q): got %v, want ErrEmptyDescription", input, err)
		}
		if s.Len() != 0 {
			t.Errorf("Add(%q): store changed, len %d", input, s.Len())
		}
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	s := NewStore()
	for i := 0; i < 2; i++ {
		if err := s.Add("same thing"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len: got %d, want 2", s.Len())
	}
}

func TestUpdateStatus(t *testing.T) {
	newStore := func() *Store {
		s := NewStore()
		s.Add("one")
		s.Add("two")
		s.Add("three")
		return s
	}

	t.Run("index zero is invalid", func(t *testing.T) {
		s := newStore()
		if err := s.UpdateStatus(0, StatusDone); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("got %v, want ErrInvalidIndex", err)
		}
	})

	t.Run("index past end is out of bound", func(t *testing.T) {
		s := newStore()
		err := s.UpdateStatus(4, StatusDone)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("got %v, want *IndexError", err)
		}
		if ie.Index != 4 {
			t.Errorf("reported index: got %d, want 4", ie.Index)
		}
	})

	t.Run("valid index updates only that task", func(t *testing.T) {
		s := newStore()
		if err := s.UpdateStatus(2, StatusInProgress); err != nil {
			t.Fatalf("UpdateStatus failed: %v", err)
		}
		want := []Status{StatusTodo, StatusInProgress, StatusTodo}
		for i, e := range s.List() {
			if e.Task.Status != want[i] {
				t.Errorf("task %d status: got %q, want %q", e.Index, e.Task.Status, want[i])
			}
		}
	})
}

func TestUpdateStatusText(t *testing.T) {
	s := NewStore()
	s.Add("one")

	if err := s.UpdateStatusText(1, "DONE"); err != nil {
		t.Fatalf("UpdateStatusText failed: %v", err)
	}
	if got := s.List()[0].Task.Status; got != StatusDone {
		t.Errorf("status: got %q, want %q", got, StatusDone)
	}

	err := s.UpdateStatusText(1, "doing")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *StatusError", err)
	}
	if se.Text != "doing" {
		t.Errorf("reported text: got %q, want %q", se.Text, "doing")
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add("one")
	s.Add("two")
	s.Add("three")

	removed, err := s.Remove(2)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed.Description != "two" {
		t.Errorf("removed: got %q, want %q", removed.Description, "two")
	}
	if s.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", s.Len())
	}

	entries := s.List()
	if entries[0].Task.Description != "one" || entries[0].Index != 1 {
		t.Errorf("entry 0: got (%d, %q)", entries[0].Index, entries[0].Task.Description)
	}
	if entries[1].Task.Description != "three" || entries[1].Index != 2 {
		t.Errorf("entry 1: got (%d, %q)", entries[1].Index, entries[1].Task.Description)
	}

	if _, err := s.Remove(0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Remove(0): got %v, want ErrInvalidIndex", err)
	}
	if _, err := s.Remove(3); err == nil {
		t.Error("Remove(3): expected out-of-bound error")
	}
}

func TestClearDone(t *testing.T) {
	s := NewStore()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Add("d")
	s.UpdateStatus(2, StatusDone)
	s.UpdateStatus(3, StatusInProgress)
	s.UpdateStatus(4, StatusDone)

	if got := s.ClearDone(); got != 2 {
		t.Errorf("ClearDone: got %d, want 2", got)
	}

	entries := s.List()
	if len(entries) != 2 {
		t.Fatalf("Len: got %d, want 2", len(entries))
	}
	if entries[0].Task.Description != "a" || entries[0].Task.Status != StatusTodo {
		t.Errorf("entry 0: got %v", entries[0].Task)
	}
	if entries[1].Task.Description != "c" || entries[1].Task.Status != StatusInProgress {
		t.Errorf("entry 1: got %v", entries[1].Task)
	}

	if got := s.ClearDone(); got != 0 {
		t.Errorf("second ClearDone: got %d, want 0", got)
	}
}

func TestFilterByStatusKeepsOriginalIndices(t *testing.T) {
	s := NewStore()
	s.Add("one")
	s.Add("two")
	s.Add("three")
	s.UpdateStatus(1, StatusDone)
	s.UpdateStatus(3, StatusDone)

	entries := s.FilterByStatus(StatusDone)
	if len(entries) != 2 {
		t.Fatalf("filtered count: got %d, want 2", len(entries))
	}
	if entries[0].Index != 1 || entries[1].Index != 3 {
		t.Errorf("indices: got (%d, %d), want (1, 3)", entries[0].Index, entries[1].Index)
	}

	if got := s.FilterByStatus(StatusInProgress); len(got) != 0 {
		t.Errorf("in-progress count: got %d, want 0", len(got))
	}
}

// TestScenario walks the documented end-to-end flow.
func TestScenario(t *testing.T) {
	s := NewStore()
	if err := s.Add("Buy milk"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("Write report"); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateStatus(2, StatusDone); err != nil {
		t.Fatal(err)
	}

	entries := s.List()
	if len(entries) != 2 {
		t.Fatalf("Len: got %d, want 2", len(entries))
	}
	if entries[0].Task.Description != "Buy milk" || entries[0].Task.Status != StatusTodo {
		t.Errorf("entry 0: got %v", entries[0].Task)
	}
	if entries[1].Task.Description != "Write report" || entries[1].Task.Status != StatusDone {
		t.Errorf("entry 1: got %v", entries[1].Task)
	}

	done := s.FilterByStatus(StatusDone)
	if len(done) != 1 || done[0].Index != 2 {
		t.Fatalf("filter: got %v", done)
	}

	if got := s.ClearDone(); got != 1 {
		t.Errorf("ClearDone: got %d, want 1", got)
	}
	entries = s.List()
	if len(entries) != 1 || entries[0].Task.Description != "Buy milk" {
		t.Errorf("after clear: got %v", entries)
	}
}
