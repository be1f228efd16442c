package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/phuslu/log"
)

// Event is a single recorded warning or error.
type Event struct {
	// Level of the event ("warn" or "error").
	Level string
	// Message is the formatted event text.
	Message string
}

// Reporter collects warnings and errors for a run and mirrors all
// events to a structured logger. It is safe for concurrent use.
type Reporter struct {
	logger log.Logger

	mu       sync.Mutex
	warnings []Event
	errors   []Event
}

// New returns a Reporter writing human-readable output to stderr.
// When debug is true, debug-level events are emitted as well.
func New(debug bool) *Reporter {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return &Reporter{
		logger: log.Logger{
			Level:      level,
			TimeFormat: "15:04:05",
			Writer: &log.ConsoleWriter{
				ColorOutput:    true,
				EndWithMessage: true,
				Writer:         os.Stderr,
			},
		},
	}
}

// NewDiscard returns a Reporter that records events but writes no
// console output. Intended for tests.
func NewDiscard() *Reporter {
	return &Reporter{
		logger: log.Logger{
			Level:  log.PanicLevel,
			Writer: log.IOWriter{Writer: io.Discard},
		},
	}
}

// Debugf emits a debug-level message. Debug messages are not recorded.
func (r *Reporter) Debugf(format string, args ...any) {
	r.logger.Debug().Msgf(format, args...)
}

// Infof emits an info-level message. Info messages are not recorded.
func (r *Reporter) Infof(format string, args ...any) {
	r.logger.Info().Msgf(format, args...)
}

// Warnf emits and records a warning.
func (r *Reporter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.logger.Warn().Msg(msg)

	r.mu.Lock()
	r.warnings = append(r.warnings, Event{Level: "warn", Message: msg})
	r.mu.Unlock()
}

// Errorf emits and records an error.
func (r *Reporter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.logger.Error().Msg(msg)

	r.mu.Lock()
	r.errors = append(r.errors, Event{Level: "error", Message: msg})
	r.mu.Unlock()
}

// Warnings returns a copy of all recorded warnings.
func (r *Reporter) Warnings() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.warnings))
	copy(out, r.warnings)

	return out
}

// Errors returns a copy of all recorded errors.
func (r *Reporter) Errors() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.errors))
	copy(out, r.errors)

	return out
}

// WarningCount returns the number of recorded warnings.
func (r *Reporter) WarningCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.warnings)
}

// ErrorCount returns the number of recorded errors.
func (r *Reporter) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.errors)
}
