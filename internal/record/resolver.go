package record

import (
	"errors"
	"io/fs"
	"path/filepath"

	"profile-forge/internal/report"
)

// InheritsKey names the parent profile; it is cleared (set to the empty
// string) once resolution has run.
const InheritsKey = "inherits"

// MaxInheritanceDepth bounds how many ancestors are followed before
// resolution gives up and returns the record as-is.
const MaxInheritanceDepth = 5

// Resolver flattens `inherits` chains. Resolution never fails the file:
// missing or unreadable ancestors truncate the chain with a warning and
// cyclic chains terminate at the depth cap.
type Resolver struct {
	rep *report.Reporter
}

// NewResolver returns a Resolver reporting through rep.
func NewResolver(rep *report.Reporter) *Resolver {
	return &Resolver{rep: rep}
}

// Resolve returns the flattened record for rec, which was loaded from
// path. The input record is not modified unless its chain truncates, in
// which case its `inherits` key is cleared in place.
func (r *Resolver) Resolve(path string, rec *Record) *Record {
	return r.resolve(path, rec, 0)
}

func (r *Resolver) resolve(path string, rec *Record, depth int) *Record {
	if depth > MaxInheritanceDepth {
		r.rep.Warnf("maximum inheritance depth (%d) exceeded for %s", MaxInheritanceDepth, path)
		return rec
	}

	inherits := rec.GetString(InheritsKey)
	if inherits == "" {
		return rec
	}

	// The parent is a sibling file named after the inherits value.
	parentPath := filepath.Join(filepath.Dir(path), inherits+".json")

	parent, err := LoadFile(parentPath)
	if err != nil {
		// LoadFile wraps the read error, so unwrap-aware matching is
		// required here.
		if errors.Is(err, fs.ErrNotExist) {
			r.rep.Warnf("inherited profile not found: %s (referenced by %s)", parentPath, path)
		} else {
			r.rep.Warnf("failed to load inherited profile %s: %v", parentPath, err)
		}

		rec.Set(InheritsKey, "")

		return rec
	}

	resolved := r.resolve(parentPath, parent, depth+1)

	merged, shallow := Merge(resolved, rec)
	for _, key := range shallow {
		r.rep.Warnf("nested object for key %q in %s: performing shallow merge", key, path)
	}

	merged.Set(InheritsKey, "")

	return merged
}
