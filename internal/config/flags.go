package config

import "flag"

// parseFlags defines and parses CLI flags onto the config.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskline", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TaskFile, "file", cfg.TaskFile, "Path to task file")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "Interactive prompt string")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")

	noJournal := fs.Bool("no-journal", !cfg.Journal, "Disable the session command journal")
	noSchema := fs.Bool("no-schema", !cfg.SchemaValidation, "Skip JSON Schema validation on load")
	noAutosave := fs.Bool("no-autosave", !cfg.AutosaveOnExit, "Do not save automatically on exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-journal":
			cfg.Journal = !*noJournal
		case "no-schema":
			cfg.SchemaValidation = !*noSchema
		case "no-autosave":
			cfg.AutosaveOnExit = !*noAutosave
		}
	})

	return nil
}
