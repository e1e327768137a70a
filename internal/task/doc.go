// Package task owns the in-memory task list and its persisted form.
//
// The task file (tasks.json) holds the full ordered sequence:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {
//	      "description": "Buy milk",
//	      "status": "todo"
//	    }
//	  ]
//	}
//
// # Statuses
//
//   - "todo": not started
//   - "in-progress": being worked on
//   - "done": complete
//
// User input accepts a few extra spellings per status, case-insensitively
// (to-do, inprogress, completed); the file always carries the canonical
// form.
//
// # Indexing
//
// All public Store operations use 1-based indices, matching what the CLI
// shows. Index 0 is always rejected; an index past the end reports the
// value the caller supplied.
//
// # File format
//
// Files are written with 2-space indentation and a trailing newline, via a
// temp file renamed into place. Loading validates the document against an
// embedded JSON Schema (draft 2020-12) plus minimal structural checks, so a
// malformed file is reported rather than half-loaded.
package task
