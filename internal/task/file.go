package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SchemaVersion is the current persisted file format version.
const SchemaVersion = 1

// fileData is the on-disk representation of a store.
type fileData struct {
	SchemaVersion int    `json:"schema_version"`
	Tasks         []Task `json:"tasks"`
}

// Save writes the full task sequence to path with 2-space indentation and a
// trailing newline. The write goes to a temp file in the same directory
// first and is renamed into place, so a failed write never clobbers an
// existing file. The in-memory store is unaffected either way.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(fileData{SchemaVersion: SchemaVersion, Tasks: s.tasks}, "", "  ")
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".taskline-*.json")
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// Load reads and decodes the task file at path into a new store. It returns
// a *FileError if the file cannot be read (including "does not exist") and
// a *ParseError if the content is present but malformed. The decoded tasks
// are checked structurally so the store invariants hold after loading.
func Load(path string) (*Store, error) {
	return load(path, false)
}

// LoadValidated is Load plus validation of the raw document against the
// embedded JSON Schema before decoding.
func LoadValidated(path string) (*Store, error) {
	return load(path, true)
}

func load(path string, validate bool) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	if validate {
		if err := validateDocument(data); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	var f fileData
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := checkFileData(&f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	tasks := f.Tasks
	if tasks == nil {
		tasks = make([]Task, 0)
	}
	return &Store{tasks: tasks}, nil
}

// checkFileData performs minimal structural checks, used with or without
// schema validation. Descriptions are re-normalized through the task
// constructor so the store invariants hold even for hand-edited files.
func checkFileData(f *fileData) error {
	if f.SchemaVersion != SchemaVersion {
		return fmt.Errorf("schema_version: expected %d, got %d", SchemaVersion, f.SchemaVersion)
	}
	for i := range f.Tasks {
		t, err := New(f.Tasks[i].Description)
		if err != nil {
			return fmt.Errorf("tasks[%d].description: %w", i, err)
		}
		if !f.Tasks[i].Status.Valid() {
			return fmt.Errorf("tasks[%d].status: invalid status %q, must be one of: todo, in-progress, done", i, f.Tasks[i].Status)
		}
		f.Tasks[i].Description = t.Description
	}
	return nil
}
