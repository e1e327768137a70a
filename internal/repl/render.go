package repl

import (
	"fmt"
	"io"

	"github.com/nibzard/taskline/internal/task"
)

const listRule = "-------------------------------------"

// statusIcon returns the leading marker for a task line.
func statusIcon(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return "[>]"
	case task.StatusDone:
		return "[x]"
	default:
		return "[ ]"
	}
}

// printList renders entries with their 1-based indices. filtered selects
// the empty-list message.
func printList(w io.Writer, entries []task.Entry, filtered bool) {
	if len(entries) == 0 {
		if filtered {
			fmt.Fprintln(w, "No tasks with that status.")
		} else {
			fmt.Fprintln(w, "No tasks yet. Add one with: add <description>")
		}
		return
	}

	fmt.Fprintln(w, "Your tasks:")
	fmt.Fprintln(w, listRule)
	for _, e := range entries {
		fmt.Fprintf(w, "%s %d. %s\n", statusIcon(e.Task.Status), e.Index, e.Task)
	}
	fmt.Fprintln(w, listRule)
}

// printHelp prints the command reference.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <description>        Add a new task")
	fmt.Fprintln(w, "  list [status]            List all tasks, or only one status")
	fmt.Fprintln(w, "  update <num> <status>    Update task status (todo/in-progress/done)")
	fmt.Fprintln(w, "  remove <num>             Remove a task")
	fmt.Fprintln(w, "  clear                    Remove all completed tasks")
	fmt.Fprintln(w, "  save                     Save tasks to file")
	fmt.Fprintln(w, "  help                     Show this help message")
	fmt.Fprintln(w, "  exit                     Save and exit")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  add Buy groceries")
	fmt.Fprintln(w, "  list done")
	fmt.Fprintln(w, "  update 1 in-progress")
	fmt.Fprintln(w, "  remove 2")
}
