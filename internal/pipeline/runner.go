package pipeline

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"profile-forge/internal/pathout"
	"profile-forge/internal/profile"
	"profile-forge/internal/record"
	"profile-forge/internal/report"
	"profile-forge/internal/rules"
)

// Options configure a run.
type Options struct {
	Mode      Mode
	Source    string
	Output    string
	Filter    string
	Transform pathout.NamingTransform
	Rules     []rules.Rule

	// Overwrite permits replacing existing destination files.
	Overwrite bool
	// SortKeys sorts output keys alphabetically at every level.
	SortKeys bool
	// ForceCopy writes the destination even when content is unchanged,
	// provided the destination differs from the source (update mode).
	ForceCopy bool
	// Workers bounds per-file parallelism; values below 2 run
	// sequentially.
	Workers int
}

// Runner walks the candidate set and drives the per-file pipeline.
type Runner struct {
	opts        Options
	rep         *report.Reporter
	resolver    *record.Resolver
	transformer *profile.Transformer
	engine      *rules.Engine
	paths       *pathout.Resolver
}

// NewRunner validates the source/output configuration and builds a
// Runner. Configuration conflicts surface here, before any file is
// processed.
func NewRunner(opts Options, rep *report.Reporter) (*Runner, error) {
	paths, err := pathout.NewResolver(opts.Source, opts.Output, opts.Transform)
	if err != nil {
		return nil, err
	}

	return &Runner{
		opts:        opts,
		rep:         rep,
		resolver:    record.NewResolver(rep),
		transformer: profile.NewTransformer(rep),
		engine:      rules.NewEngine(opts.Rules, rep),
		paths:       paths,
	}, nil
}

// Run processes every candidate file and returns the aggregated
// summary. The returned error covers discovery only; per-file failures
// feed the summary's error counter and never abort the run.
func (r *Runner) Run() (Summary, error) {
	files, err := Discover(r.opts.Source, r.opts.Filter)
	if err != nil {
		return Summary{}, err
	}

	r.rep.Infof("found %d files matching filter", len(files))

	var c counters

	if r.opts.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(r.opts.Workers)

		for _, path := range files {
			path := path
			g.Go(func() error {
				c.add(r.processFile(path))
				return nil
			})
		}

		// Workers never return errors; failures are counted per file.
		_ = g.Wait()
	} else {
		for _, path := range files {
			c.add(r.processFile(path))
		}
	}

	return c.summary(), nil
}

func (r *Runner) processFile(path string) Outcome {
	rec, err := record.LoadFile(path)
	if err != nil {
		r.rep.Errorf("error processing %s: %v", path, err)
		return OutcomeError
	}

	filename := filepath.Base(path)

	if r.opts.Mode.ResolvesInheritance() && profile.IsMachineModel(rec) {
		r.rep.Debugf("skipping machine_model file: %s", path)
		return OutcomeSkippedMachineModel
	}

	original := rec.Clone()

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	if r.opts.Mode.ResolvesInheritance() {
		rec = r.resolver.Resolve(path, rec)
		r.transformer.Apply(rec, filename)
	}

	anyMatched := false
	if r.opts.Mode.AppliesRules() {
		_, anyMatched = r.engine.Apply(rec, filename, absPath)
	}

	dest, inPlace := r.paths.Resolve(path)

	if r.opts.Mode == ModeUpdate {
		return r.finishUpdate(path, dest, inPlace, rec, original, anyMatched)
	}

	// Convert and migrate always produce output for non-skipped files.
	return r.write(dest, inPlace, rec)
}

// finishUpdate applies update mode's three-way outcome: out-of-scope
// files, idempotent re-runs, and real changes are reported separately.
func (r *Runner) finishUpdate(path, dest string, inPlace bool, rec, original *record.Record, anyMatched bool) Outcome {
	filename := filepath.Base(path)

	if !anyMatched {
		r.rep.Infof("skipped (no rules matched): %s", filename)
		return OutcomeSkippedNoRules
	}

	changed := !rec.Equal(original)

	if !changed && !r.opts.ForceCopy {
		r.rep.Infof("skipped (no content changes): %s", filename)
		return OutcomeSkippedNoChanges
	}

	if !changed && inPlace {
		// Force-copy has nothing to do when the destination is the
		// source itself.
		r.rep.Infof("skipped (no content changes): %s", filename)
		return OutcomeSkippedNoChanges
	}

	return r.write(dest, inPlace, rec)
}

func (r *Runner) write(dest string, inPlace bool, rec *record.Record) Outcome {
	if !inPlace {
		if _, err := os.Stat(dest); err == nil && !r.opts.Overwrite {
			r.rep.Warnf("output file exists, skipping: %s", dest)
			return OutcomeWriteSkipped
		}
	}

	data, err := rec.Encode(r.opts.SortKeys)
	if err != nil {
		r.rep.Errorf("failed to serialize %s: %v", dest, err)
		return OutcomeError
	}

	if err := WriteFileAtomic(dest, data); err != nil {
		r.rep.Errorf("failed to write %s: %v", dest, err)
		return OutcomeError
	}

	if inPlace {
		r.rep.Infof("updated (in-place): %s", dest)
	} else {
		r.rep.Infof("wrote: %s", dest)
	}

	return OutcomeWritten
}
