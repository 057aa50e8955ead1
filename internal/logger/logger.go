// Package logger provides the structured logger used across quotient.
// Loggers are values injected into services; there is no package-level
// logger state. When verbose mode is enabled, pipeline milestones and
// debug details are written to the configured output (stderr by default).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the logging interface injected into services and adapters.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)

	// Section prints a section header if verbose mode is enabled.
	Section(name string)

	// With returns a logger that adds keyvals to every entry.
	With(keyvals ...any) Logger
}

// Options configures a Logger.
type Options struct {
	// Output is where log entries are written. Defaults to os.Stderr.
	Output io.Writer

	// Verbose lowers the level to debug. Otherwise only warnings
	// and errors are written.
	Verbose bool

	// JSON switches the formatter to one JSON object per line.
	JSON bool

	// TimeFormat enables timestamps when non-empty.
	TimeFormat string
}

type charmLogger struct {
	mu      *sync.Mutex
	out     io.Writer
	verbose bool
	json    bool
	log     *charmlog.Logger
}

// New creates a Logger backed by charmbracelet/log.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := charmlog.WarnLevel
	if opts.Verbose {
		level = charmlog.DebugLevel
	}

	formatter := charmlog.TextFormatter
	if opts.JSON {
		formatter = charmlog.JSONFormatter
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: opts.TimeFormat != "",
		TimeFormat:      opts.TimeFormat,
		Level:           level,
		Formatter:       formatter,
	})

	return &charmLogger{
		mu:      &sync.Mutex{},
		out:     out,
		verbose: opts.Verbose,
		json:    opts.JSON,
		log:     l,
	}
}

func (l *charmLogger) Debug(msg string, keyvals ...any) { l.log.Debug(msg, keyvals...) }
func (l *charmLogger) Info(msg string, keyvals ...any)  { l.log.Info(msg, keyvals...) }
func (l *charmLogger) Warn(msg string, keyvals ...any)  { l.log.Warn(msg, keyvals...) }
func (l *charmLogger) Error(msg string, keyvals ...any) { l.log.Error(msg, keyvals...) }

// Section writes a plain header line so verbose output is easy to scan.
// JSON loggers emit the section as an info entry instead.
func (l *charmLogger) Section(name string) {
	if !l.verbose {
		return
	}
	if l.json {
		l.log.Info("section", "name", name)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "\n=== %s ===\n", name)
}

func (l *charmLogger) With(keyvals ...any) Logger {
	return &charmLogger{
		mu:      l.mu,
		out:     l.out,
		verbose: l.verbose,
		json:    l.json,
		log:     l.log.With(keyvals...),
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(Options{Output: io.Discard})
}
