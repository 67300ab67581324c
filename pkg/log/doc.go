// Package log provides Opsq's structured logging facade.
//
// The package exposes a small Logger interface with leveled methods and
// a Field type for structured context, backed by a formatter/output
// pipeline. Construct loggers explicitly and pass them down; there is
// no package-level default.
//
// Quick start:
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("listening", log.Str("addr", ":8080"))
//
// Use ApplyConfig to build a logger from a declarative Config (level +
// format), and RedirectStdLog to capture stdlib log output (Pebble logs
// through it) into the facade.
package log
