// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultTaskFile = "tasks.json"
	DefaultLogDir   = "~/.taskline"
	DefaultPrompt   = "> "
)

// Config holds the full configuration for taskline.
type Config struct {
	// Paths
	TaskFile string `toml:"task_file"`
	LogDir   string `toml:"log_dir"`

	// Persistence
	SchemaValidation bool `toml:"schema_validation"`
	AutosaveOnExit   bool `toml:"autosave_on_exit"`

	// Interpreter
	Prompt  string `toml:"prompt"`
	Journal bool   `toml:"journal"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// setDefaults fills in default values.
func setDefaults(cfg *Config) {
	cfg.TaskFile = DefaultTaskFile
	cfg.LogDir = DefaultLogDir
	cfg.SchemaValidation = true
	cfg.AutosaveOnExit = true
	cfg.Prompt = DefaultPrompt
	cfg.Journal = true
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
}
