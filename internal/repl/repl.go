package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskline/internal/config"
	"github.com/nibzard/taskline/internal/logging"
	"github.com/nibzard/taskline/internal/task"
)

// maxReadErrors bounds consecutive non-EOF input failures so a permanently
// broken stdin does not spin the loop.
const maxReadErrors = 3

// REPL drives the read-eval-print loop over one task store.
type REPL struct {
	cfg     *config.Config
	store   *task.Store
	in      *bufio.Reader
	out     io.Writer
	logger  *log.Logger
	journal *logging.Journal
}

// Options wires the REPL's I/O and diagnostics.
type Options struct {
	Input   io.Reader
	Output  io.Writer
	Logger  *log.Logger
	Journal *logging.Journal // optional
}

// New creates a REPL over the given store.
func New(cfg *config.Config, store *task.Store, opts Options) *REPL {
	return &REPL{
		cfg:     cfg,
		store:   store,
		in:      bufio.NewReader(opts.Input),
		out:     opts.Output,
		logger:  opts.Logger,
		journal: opts.Journal,
	}
}

// Run reads commands until exit, EOF, or context cancellation. Every store
// error is rendered and control returns to the prompt; the only terminal
// conditions are the exit command and losing the input stream.
func (r *REPL) Run(ctx context.Context) error {
	readErrors := 0
	for {
		if ctx.Err() != nil {
			r.shutdown()
			return ctx.Err()
		}

		fmt.Fprint(r.out, r.cfg.Prompt)
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			readErrors++
			r.logger.Error("reading input", "err", err)
			if readErrors >= maxReadErrors {
				r.shutdown()
				return fmt.Errorf("input stream unusable: %w", err)
			}
			continue
		}
		readErrors = 0

		if done := r.handleLine(line); done {
			return nil
		}
		if errors.Is(err, io.EOF) {
			// Closed input ends the session like exit does.
			fmt.Fprintln(r.out)
			r.shutdown()
			return nil
		}
	}
}

// handleLine parses and dispatches one input line. It returns true when the
// session should end.
func (r *REPL) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		// Blank line: re-prompt silently.
		return false
	}

	cmd, err := Parse(line)
	if err != nil {
		var ue *UsageError
		if errors.As(err, &ue) {
			fmt.Fprintln(r.out, ue.Msg)
			r.record(logging.Record{Verb: "usage", Args: line, Outcome: "error", Detail: ue.Msg})
			return false
		}
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return false
	}
	return r.dispatch(cmd)
}

// dispatch runs one command against the store and renders the result.
func (r *REPL) dispatch(cmd Command) bool {
	switch cmd.Kind {
	case KindExit:
		r.shutdown()
		return true

	case KindHelp:
		printHelp(r.out)

	case KindList:
		var entries []task.Entry
		if cmd.HasFilter {
			entries = r.store.FilterByStatus(cmd.Filter)
		} else {
			entries = r.store.List()
		}
		printList(r.out, entries, cmd.HasFilter)
		r.record(logging.Record{Verb: cmd.Kind.String(), Args: string(cmd.Filter), Outcome: "ok"})

	case KindAdd:
		if err := r.store.Add(cmd.Description); err != nil {
			r.reportError(cmd, err)
			return false
		}
		fmt.Fprintln(r.out, "Task added.")
		r.record(logging.Record{Verb: cmd.Kind.String(), Args: cmd.Description, Outcome: "ok"})

	case KindUpdate:
		if err := r.store.UpdateStatusText(cmd.Index, cmd.StatusText); err != nil {
			r.reportError(cmd, err)
			return false
		}
		fmt.Fprintln(r.out, "Task status updated.")
		r.record(logging.Record{Verb: cmd.Kind.String(), Args: fmt.Sprintf("%d %s", cmd.Index, cmd.StatusText), Outcome: "ok"})

	case KindRemove:
		removed, err := r.store.Remove(cmd.Index)
		if err != nil {
			r.reportError(cmd, err)
			return false
		}
		fmt.Fprintf(r.out, "Removed: %s\n", removed.Description)
		r.record(logging.Record{Verb: cmd.Kind.String(), Args: fmt.Sprintf("%d", cmd.Index), Outcome: "ok"})

	case KindClear:
		count := r.store.ClearDone()
		if count > 0 {
			fmt.Fprintf(r.out, "Cleared %d completed task(s).\n", count)
		} else {
			fmt.Fprintln(r.out, "No completed tasks to clear.")
		}
		r.record(logging.Record{Verb: cmd.Kind.String(), Args: fmt.Sprintf("%d", count), Outcome: "ok"})

	case KindSave:
		if err := r.store.Save(r.cfg.TaskFile); err != nil {
			fmt.Fprintf(r.out, "Failed to save: %v\n", err)
			r.record(logging.Record{Verb: cmd.Kind.String(), Outcome: "error", Detail: err.Error()})
			return false
		}
		fmt.Fprintf(r.out, "Tasks saved to %s\n", r.cfg.TaskFile)
		r.record(logging.Record{Verb: cmd.Kind.String(), Outcome: "ok"})

	default:
		fmt.Fprintf(r.out, "Unknown command: %q\n", cmd.Raw)
		fmt.Fprintln(r.out, "Type 'help' to see available commands.")
		r.record(logging.Record{Verb: "unknown", Args: cmd.Raw, Outcome: "error"})
	}
	return false
}

// shutdown saves if configured and prints the farewell. A failed save is
// reported but never blocks termination.
func (r *REPL) shutdown() {
	if r.cfg.AutosaveOnExit {
		if err := r.store.Save(r.cfg.TaskFile); err != nil {
			fmt.Fprintf(r.out, "Failed to save tasks: %v\n", err)
			r.record(logging.Record{Verb: "exit", Outcome: "error", Detail: err.Error()})
		} else {
			fmt.Fprintln(r.out, "Tasks saved.")
			r.record(logging.Record{Verb: "exit", Outcome: "ok"})
		}
	} else {
		r.record(logging.Record{Verb: "exit", Outcome: "ok", Detail: "autosave disabled"})
	}
	fmt.Fprintln(r.out, "Goodbye!")
}

// reportError renders a store error and journals it.
func (r *REPL) reportError(cmd Command, err error) {
	fmt.Fprintf(r.out, "Error: %v\n", err)
	r.record(logging.Record{Verb: cmd.Kind.String(), Outcome: "error", Detail: err.Error()})
}

// record appends to the journal if one is attached. Journal trouble is a
// diagnostic, never a command failure.
func (r *REPL) record(rec logging.Record) {
	if r.journal == nil {
		return
	}
	if err := r.journal.Append(rec); err != nil {
		r.logger.Warn("journal write failed", "err", err)
	}
}
