package log

import "fmt"

// Config declaratively describes a logger.
type Config struct {
	// Level is one of debug|info|warn|error|fatal.
	Level string `json:"level" yaml:"level"`
	// Format is one of text|json.
	Format string `json:"format" yaml:"format"`
}

// ApplyConfig builds a logger from a declarative Config. Empty fields
// default to info level and text format.
func ApplyConfig(cfg *Config) (Logger, error) {
	level := InfoLevel
	if cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}

	var formatter Formatter
	switch cfg.Format {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}

	return NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewConsoleOutput()),
	), nil
}
