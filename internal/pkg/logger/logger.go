// Package logger builds the structured logger shared by the api and seed
// commands.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w (stderr when nil). JSON output is used
// for production so log shippers can parse it.
func New(w io.Writer, level string, json bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           lvl,
	}
	if json {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
