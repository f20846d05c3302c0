// Package cli implements the bizreg command-line interface.
//
// # Commands
//
//   - search: find entities by name, optionally picking one interactively
//   - entity: fetch the detail record for a DOS ID or detail URL
//   - stored: show a record saved by an earlier lookup
//   - serve: run the HTTP API
//   - config: print the config path or the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs raw registry responses and installs logging observability hooks.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Found 12 entities (412ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
