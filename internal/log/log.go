// Package log provides leveled, categorized logging for trackdown.
//
// Output goes to stderr and is quiet by default so it never interferes
// with report output on stdout. Set TRACKDOWN_LOG=debug|info|warn to raise
// verbosity.
package log

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Category tags a log line with the subsystem it came from.
type Category string

const (
	CatStore  Category = "store"
	CatConfig Category = "config"
	CatCLI    Category = "cli"
	CatWatch  Category = "watch"
)

var logger = newLogger()

func newLogger() *charmlog.Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
	switch os.Getenv("TRACKDOWN_LOG") {
	case "debug":
		l.SetLevel(charmlog.DebugLevel)
	case "info":
		l.SetLevel(charmlog.InfoLevel)
	case "warn":
		l.SetLevel(charmlog.WarnLevel)
	default:
		l.SetLevel(charmlog.ErrorLevel)
	}
	return l
}

// Debug logs a debug-level message with structured key/value pairs.
func Debug(cat Category, msg string, kv ...any) {
	logger.Debug(msg, append([]any{"cat", string(cat)}, kv...)...)
}

// Info logs an info-level message with structured key/value pairs.
func Info(cat Category, msg string, kv ...any) {
	logger.Info(msg, append([]any{"cat", string(cat)}, kv...)...)
}

// Warn logs a warn-level message with structured key/value pairs.
func Warn(cat Category, msg string, kv ...any) {
	logger.Warn(msg, append([]any{"cat", string(cat)}, kv...)...)
}

// Error logs an error-level message with structured key/value pairs.
func Error(cat Category, msg string, kv ...any) {
	logger.Error(msg, append([]any{"cat", string(cat)}, kv...)...)
}

// ErrorErr logs an error-level message carrying an error value.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	logger.Error(msg, append([]any{"cat", string(cat), "err", err}, kv...)...)
}
