// Package applog builds the charmbracelet/log logger shared by the CLI,
// the local TUI and the SSH server.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // append to this file when set
	Prefix string
	// Quiet discards output when no file is given. The alt-screen TUI owns
	// the terminal, so it cannot log to stderr.
	Quiet bool
}

// New returns a logger and a close func for its output file.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("applog: %w", err)
		}
		level = parsed
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("applog: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("applog: cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	case opts.Quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything. Tests and callers
// without a configured logger use it.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
