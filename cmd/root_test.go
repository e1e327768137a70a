// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nibzard/taskline/internal/config"
	"github.com/nibzard/taskline/internal/logging"
	"github.com/nibzard/taskline/internal/task"
)

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
	})

	t.Run("shows version with version command", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := Run(context.Background(), []string{"version"}); err != nil {
			t.Errorf("expected no error with version command, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := Run(context.Background(), []string{"bogus"}); err == nil {
			t.Error("expected error for unknown command")
		}
	})
}

func TestDoctorCommand(t *testing.T) {
	t.Run("passes with no task file yet", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(t, dir)
		if err := doctorCommand(cfg, nil); err != nil {
			t.Errorf("doctor failed: %v", err)
		}
	})

	t.Run("passes with a valid task file", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(t, dir)

		store := task.NewStore()
		store.Add("one")
		if err := store.Save(cfg.TaskFile); err != nil {
			t.Fatal(err)
		}

		if err := doctorCommand(cfg, nil); err != nil {
			t.Errorf("doctor failed: %v", err)
		}
	})

	t.Run("fails with a malformed task file", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(t, dir)

		if err := os.WriteFile(cfg.TaskFile, []byte("not json"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := doctorCommand(cfg, nil); err == nil {
			t.Error("expected doctor to report the malformed file")
		}
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cfg := testConfig(t, t.TempDir())
		if err := doctorCommand(cfg, []string{"extra"}); err == nil {
			t.Error("expected error for extra arguments")
		}
	})
}

func TestLoadOrEmpty(t *testing.T) {
	logger := logging.NewConsoleLogger(io.Discard, "error", "text")

	t.Run("missing file starts empty", func(t *testing.T) {
		cfg := testConfig(t, t.TempDir())
		store := loadOrEmpty(cfg, logger)
		if !store.Empty() {
			t.Errorf("expected empty store, len %d", store.Len())
		}
	})

	t.Run("malformed file starts empty", func(t *testing.T) {
		cfg := testConfig(t, t.TempDir())
		if err := os.WriteFile(cfg.TaskFile, []byte("{broken"), 0644); err != nil {
			t.Fatal(err)
		}
		store := loadOrEmpty(cfg, logger)
		if !store.Empty() {
			t.Errorf("expected empty store, len %d", store.Len())
		}
	})

	t.Run("valid file loads", func(t *testing.T) {
		cfg := testConfig(t, t.TempDir())
		saved := task.NewStore()
		saved.Add("one")
		saved.Add("two")
		if err := saved.Save(cfg.TaskFile); err != nil {
			t.Fatal(err)
		}

		store := loadOrEmpty(cfg, logger)
		if store.Len() != 2 {
			t.Errorf("loaded len: got %d, want 2", store.Len())
		}
	})
}

// testConfig returns a config rooted in dir with sensible test values.
func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	return &config.Config{
		TaskFile:         filepath.Join(dir, "tasks.json"),
		LogDir:           filepath.Join(dir, "logs"),
		SchemaValidation: true,
		AutosaveOnExit:   true,
		Prompt:           "> ",
		ProjectRoot:      dir,
	}
}
