package pipeline

import "sync/atomic"

//go:generate go tool stringer -type=Outcome -output=outcome_string.go

// Outcome is the terminal state of one candidate file.
type Outcome int

const (
	_ Outcome = iota // skip zero value, use it as a default (invalid) value for Outcome

	// OutcomeWritten: content was written to the destination.
	OutcomeWritten
	// OutcomeSkippedMachineModel: machine-model document, skipped
	// before resolution.
	OutcomeSkippedMachineModel
	// OutcomeSkippedNoRules: no rule matched; the file is out of scope
	// for this rule set.
	OutcomeSkippedNoRules
	// OutcomeSkippedNoChanges: rules matched but content is unchanged
	// (idempotent re-run).
	OutcomeSkippedNoChanges
	// OutcomeWriteSkipped: destination exists and overwriting is not
	// permitted.
	OutcomeWriteSkipped
	// OutcomeError: the file failed and fed the error counter.
	OutcomeError
)

// Summary aggregates a run's terminal outcomes.
type Summary struct {
	Total            int64
	Processed        int64
	SkippedNoRules   int64
	SkippedNoChanges int64
	Errors           int64
}

// Failed reports whether at least one per-file error occurred. Skips
// are not failures.
func (s Summary) Failed() bool {
	return s.Errors > 0
}

// counters is the thread-safe accumulator behind Summary.
type counters struct {
	total            atomic.Int64
	processed        atomic.Int64
	skippedNoRules   atomic.Int64
	skippedNoChanges atomic.Int64
	errors           atomic.Int64
}

func (c *counters) add(o Outcome) {
	c.total.Add(1)

	switch o {
	case OutcomeWritten:
		c.processed.Add(1)
	case OutcomeSkippedMachineModel, OutcomeSkippedNoRules:
		c.skippedNoRules.Add(1)
	case OutcomeSkippedNoChanges, OutcomeWriteSkipped:
		c.skippedNoChanges.Add(1)
	case OutcomeError:
		c.errors.Add(1)
	}
}

func (c *counters) summary() Summary {
	return Summary{
		Total:            c.total.Load(),
		Processed:        c.processed.Load(),
		SkippedNoRules:   c.skippedNoRules.Load(),
		SkippedNoChanges: c.skippedNoChanges.Load(),
		Errors:           c.errors.Load(),
	}
}
