// Package cmd implements the CLI command structure for taskline.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskline/internal/config"
	"github.com/nibzard/taskline/internal/logging"
	"github.com/nibzard/taskline/internal/repl"
	"github.com/nibzard/taskline/internal/task"
	"github.com/nibzard/taskline/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskline CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskline", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; with no args the repl starts.
	subcommand := "repl"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "repl":
		return replCommand(ctx, cfg)
	case "tui":
		return ui.RunTUI(ctx, cfg)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// replCommand loads the store and runs the interactive session.
func replCommand(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	store := loadOrEmpty(cfg, logger)

	var journal *logging.Journal
	if cfg.Journal {
		var err error
		journal, err = logging.NewJournal(cfg.LogDir, cfg.ProjectRoot)
		if err != nil {
			// The journal is an audit trail; losing it does not block
			// the session.
			logger.Warn("session journal disabled", "err", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	fmt.Println("Welcome to taskline!")
	if !store.Empty() {
		fmt.Printf("Loaded %d existing task(s) from %s\n", store.Len(), cfg.TaskFile)
	}
	fmt.Println("Type 'help' to see available commands, 'exit' to quit.")

	r := repl.New(cfg, store, repl.Options{
		Input:   os.Stdin,
		Output:  os.Stdout,
		Logger:  logger,
		Journal: journal,
	})
	err := r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		// Interrupt already saved and said goodbye.
		return nil
	}
	return err
}

// loadOrEmpty reads the task file, falling back to an empty store. An
// absent file is the normal first-run case; a malformed one is reported.
func loadOrEmpty(cfg *config.Config, logger *log.Logger) *task.Store {
	load := task.Load
	if cfg.SchemaValidation {
		load = task.LoadValidated
	}

	store, err := load(cfg.TaskFile)
	if err == nil {
		return store
	}
	if errors.Is(err, os.ErrNotExist) {
		return task.NewStore()
	}
	logger.Error("could not load tasks, starting empty", "err", err)
	return task.NewStore()
}

// doctorCommand checks the environment: config, task file, schema, and the
// journal directory.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskline doctor", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fmt.Println("Taskline Doctor")
	fmt.Println("===============")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	fmt.Printf("  Task file:         %s\n", cfg.TaskFile)
	fmt.Printf("  Schema validation: %v\n", cfg.SchemaValidation)
	fmt.Printf("  Autosave on exit:  %v\n", cfg.AutosaveOnExit)
	fmt.Printf("  Journal:           %v\n", cfg.Journal)
	fmt.Println()

	fmt.Println("Task file:")
	if _, err := os.Stat(cfg.TaskFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  - does not exist yet (a new one is created on save)")
		} else {
			fmt.Printf("  FAIL: %v\n", err)
			allOK = false
		}
	} else if _, err := task.LoadValidated(cfg.TaskFile); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  OK: parses and validates")
	}
	fmt.Println()

	fmt.Println("Journal:")
	if dir, err := logging.JournalDir(cfg.LogDir, cfg.ProjectRoot); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  Directory: %s\n", dir)
		if latest, err := logging.FindLatestJournal(dir); err != nil {
			fmt.Printf("  FAIL: %v\n", err)
			allOK = false
		} else if latest == "" {
			fmt.Println("  - no sessions recorded yet")
		} else {
			fmt.Printf("  Latest session: %s\n", latest)
		}
	}
	fmt.Println()

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func versionCommand() error {
	fmt.Printf("taskline version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskline - An interactive task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskline [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  repl          Start the interactive session (default command)")
	fmt.Fprintln(w, "  tui           Launch terminal UI")
	fmt.Fprintln(w, "  doctor        Check config, task file, and journal")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
