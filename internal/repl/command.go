// Package repl implements the interactive command interpreter.
package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nibzard/taskline/internal/task"
)

// Kind identifies a parsed command.
type Kind int

const (
	KindUnknown Kind = iota
	KindExit
	KindHelp
	KindList
	KindAdd
	KindUpdate
	KindRemove
	KindClear
	KindSave
)

// String returns the canonical verb, used for journal records.
func (k Kind) String() string {
	switch k {
	case KindExit:
		return "exit"
	case KindHelp:
		return "help"
	case KindList:
		return "list"
	case KindAdd:
		return "add"
	case KindUpdate:
		return "update"
	case KindRemove:
		return "remove"
	case KindClear:
		return "clear"
	case KindSave:
		return "save"
	default:
		return "unknown"
	}
}

// Command is one parsed input line.
type Command struct {
	Kind        Kind
	Raw         string      // original input, echoed for unknown commands
	Description string      // add
	Index       int         // update, remove
	StatusText  string      // update
	Filter      task.Status // list
	HasFilter   bool
}

// UsageError reports input that named a known verb but misused it. It is a
// parse-level error; the store is never consulted.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Parse maps one line of input to a command. The verb is case-insensitive
// and tokens are whitespace-separated.
func Parse(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{Kind: KindUnknown, Raw: input}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return Command{Kind: KindExit}, nil
	case "help":
		return Command{Kind: KindHelp}, nil
	case "list", "ls":
		if len(fields) > 1 {
			status, err := task.ParseStatus(fields[1])
			if err != nil {
				return Command{}, usageErrorf("unknown status filter %q (use: todo, in-progress, done)", fields[1])
			}
			return Command{Kind: KindList, Filter: status, HasFilter: true}, nil
		}
		return Command{Kind: KindList}, nil
	case "add":
		if len(fields) < 2 {
			return Command{}, usageErrorf("usage: add <description>")
		}
		return Command{Kind: KindAdd, Description: strings.Join(fields[1:], " ")}, nil
	case "update", "status":
		if len(fields) < 3 {
			return Command{}, usageErrorf("usage: update <task-number> <status>")
		}
		index, err := parseIndex(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindUpdate, Index: index, StatusText: fields[2]}, nil
	case "remove", "delete":
		if len(fields) < 2 {
			return Command{}, usageErrorf("usage: remove <task-number>")
		}
		index, err := parseIndex(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindRemove, Index: index}, nil
	case "clear":
		return Command{Kind: KindClear}, nil
	case "save":
		return Command{Kind: KindSave}, nil
	default:
		return Command{Kind: KindUnknown, Raw: input}, nil
	}
}

// parseIndex requires a non-negative integer. Index range checks belong to
// the store; this only rejects input that is not a task number at all.
func parseIndex(text string) (int, error) {
	index, err := strconv.Atoi(text)
	if err != nil || index < 0 {
		return 0, usageErrorf("invalid task number %q", text)
	}
	return index, nil
}
