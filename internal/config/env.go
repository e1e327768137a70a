package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLINE_FILE"); v != "" {
		cfg.TaskFile = v
	}
	if v := os.Getenv("TASKLINE_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("TASKLINE_PROMPT"); v != "" {
		cfg.Prompt = v
	}
	if v := os.Getenv("TASKLINE_JOURNAL"); v != "" {
		cfg.Journal = boolFromString(v)
	}
	if v := os.Getenv("TASKLINE_SCHEMA_VALIDATION"); v != "" {
		cfg.SchemaValidation = boolFromString(v)
	}
	if v := os.Getenv("TASKLINE_AUTOSAVE"); v != "" {
		cfg.AutosaveOnExit = boolFromString(v)
	}
	if v := os.Getenv("TASKLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLINE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// boolFromString interprets common truthy strings.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
