package task

// Store is the owning, ordered collection of tasks for a session. Tasks are
// kept in insertion order; all public operations address them by 1-based
// index. The zero-based offset never leaves this package.
type Store struct {
	tasks []Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tasks: make([]Task, 0)}
}

// Entry pairs a task with its current 1-based position.
type Entry struct {
	Index int
	Task  *Task
}

// Add validates and appends a new todo task. Duplicate descriptions are
// allowed.
func (s *Store) Add(description string) error {
	t, err := New(description)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks, t)
	return nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Empty returns true if the store has no tasks.
func (s *Store) Empty() bool {
	return len(s.tasks) == 0
}

// List returns all tasks in order, each with its 1-based index. The entries
// reference live tasks; a later mutation is visible through them.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(s.tasks))
	for i := range s.tasks {
		entries = append(entries, Entry{Index: i + 1, Task: &s.tasks[i]})
	}
	return entries
}

// FilterByStatus returns the tasks with the given status, in order, keeping
// their original 1-based positions.
func (s *Store) FilterByStatus(status Status) []Entry {
	entries := make([]Entry, 0)
	for i := range s.tasks {
		if s.tasks[i].Status == status {
			entries = append(entries, Entry{Index: i + 1, Task: &s.tasks[i]})
		}
	}
	return entries
}

// UpdateStatus sets the status of the task at the given 1-based index.
func (s *Store) UpdateStatus(index int, status Status) error {
	if err := s.validateIndex(index); err != nil {
		return err
	}
	s.tasks[index-1].Status = status
	return nil
}

// UpdateStatusText parses status text (see ParseStatus) and updates the
// task at the given 1-based index.
func (s *Store) UpdateStatusText(index int, text string) error {
	status, err := ParseStatus(text)
	if err != nil {
		return err
	}
	return s.UpdateStatus(index, status)
}

// Remove deletes and returns the task at the given 1-based index. Tasks
// after it shift down by one position.
func (s *Store) Remove(index int) (Task, error) {
	if err := s.validateIndex(index); err != nil {
		return Task{}, err
	}
	removed := s.tasks[index-1]
	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	return removed, nil
}

// ClearDone removes every completed task, preserving the relative order of
// the rest, and returns the number removed.
func (s *Store) ClearDone() int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Done() {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	return removed
}

// validateIndex centralizes 1-based index checks. Errors always carry the
// index the caller supplied.
func (s *Store) validateIndex(index int) error {
	if index < 1 {
		return ErrInvalidIndex
	}
	if index > len(s.tasks) {
		return &IndexError{Index: index}
	}
	return nil
}
