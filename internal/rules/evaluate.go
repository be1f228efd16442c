package rules

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"profile-forge/internal/record"
	"profile-forge/internal/report"
)

// Evaluate reports whether every condition passes for the given file.
// Conditions are AND-combined and evaluation short-circuits on the
// first failure. An empty list passes. Invalid or unrecognized
// conditions fail the whole list (fail-closed).
func Evaluate(conditions []Condition, filename, absPath string, rec *record.Record, rep *report.Reporter) bool {
	for i := range conditions {
		if !evaluateOne(&conditions[i], filename, absPath, rec, rep) {
			return false
		}
	}

	return true
}

func evaluateOne(c *Condition, filename, absPath string, rec *record.Record, rep *report.Reporter) bool {
	switch c.Kind {
	case KindFilenameGlob:
		matched, ok := matchGlob(c.Pattern, filename, rep)
		return ok && matched

	case KindExcludeFilenameGlob:
		matched, ok := matchGlob(c.Pattern, filename, rep)
		return ok && !matched

	case KindFilepathGlob:
		matched, ok := matchPath(c.Pattern, filepath.ToSlash(absPath), rep)
		return ok && matched

	case KindExcludeFilepathGlob:
		matched, ok := matchPath(c.Pattern, filepath.ToSlash(absPath), rep)
		return ok && !matched

	case KindJSONValue:
		return evaluateJSONValue(c, rec, rep)

	default:
		// Unrecognized conditions must never silently match.
		rep.Warnf("unknown condition type: %q", c.Tag)
		return false
	}
}

func evaluateJSONValue(c *Condition, rec *record.Record, rep *report.Reporter) bool {
	if c.Key == "" || !c.HasValue {
		rep.Warnf("invalid json_value condition: missing key or value")
		return false
	}

	actual, _ := rec.Get(c.Key)
	matched := record.Stringify(actual) == record.Stringify(c.Value)

	if c.Negate {
		return !matched
	}

	return matched
}

// matchGlob matches a shell-style pattern (*, ?, character classes,
// and ** across separators) case-sensitively. A malformed pattern is
// reported and treated as not-ok so both polarities fail closed.
func matchGlob(pattern, name string, rep *report.Reporter) (matched, ok bool) {
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		rep.Warnf("invalid glob pattern %q: %v", pattern, err)
		return false, false
	}

	return matched, true
}
