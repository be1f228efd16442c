package rules

import (
	"profile-forge/internal/record"
	"profile-forge/internal/report"
)

// Engine applies an ordered list of assembled rules to records.
type Engine struct {
	rules []Rule
	rep   *report.Reporter
}

// NewEngine returns an Engine over the given rules.
func NewEngine(rules []Rule, rep *report.Reporter) *Engine {
	return &Engine{rules: rules, rep: rep}
}

// Len returns the number of assembled rules.
func (e *Engine) Len() int {
	return len(e.rules)
}

// Apply evaluates every rule in declaration order against rec, mutating
// it in place. Later rules see earlier rules' effects. It returns
// whether the record content changed and whether any rule matched at
// all, so the caller can distinguish out-of-scope files, idempotent
// re-runs, and writes.
func (e *Engine) Apply(rec *record.Record, filename, absPath string) (changed, anyMatched bool) {
	for i := range e.rules {
		rule := &e.rules[i]

		if !Evaluate(rule.Conditions, filename, absPath, rec, e.rep) {
			continue
		}

		anyMatched = true

		exists := rec.Has(rule.Name)
		if !exists && !rule.Add {
			e.rep.Debugf("skipping rule %q in %s: key not found and add is false", rule.Name, filename)
			continue
		}

		if exists {
			current, _ := rec.Get(rule.Name)
			if record.Stringify(current) == record.Stringify(rule.Value) {
				continue
			}
		}

		rec.Set(rule.Name, record.CloneValue(rule.Value))
		changed = true

		if exists {
			e.rep.Debugf("updated %q in %s", rule.Name, filename)
		} else {
			e.rep.Debugf("added %q in %s", rule.Name, filename)
		}
	}

	return changed, anyMatched
}
