package log

import (
	stdlog "log"
	"strings"
)

// stdlogWriter adapts the facade to an io.Writer for the stdlib logger.
type stdlogWriter struct {
	logger Logger
}

func (w stdlogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		w.logger.Info(msg, Str("source", "stdlog"))
	}
	return len(p), nil
}

// RedirectStdLog routes standard library log output (Pebble logs
// through it) into the given logger.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdlogWriter{logger: logger})
}

// ToStdLogger returns a *log.Logger that writes into the facade, for
// libraries that require one.
func ToStdLogger(logger Logger) *stdlog.Logger {
	return stdlog.New(stdlogWriter{logger: logger}, "", 0)
}
