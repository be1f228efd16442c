package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"profile-forge/internal/record"
	"profile-forge/internal/report"
)

// LoadFile loads and parses a rule-set document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule set %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule set YAML: %w", err)
	}

	return &doc, nil
}

// AssemblyOptions control how raw rule entries become runnable rules.
type AssemblyOptions struct {
	// EnabledByDefault applies to rules without an explicit enabled
	// field. Convert mode assembles with false (rules are opt-in);
	// update mode assembles with true.
	EnabledByDefault bool
}

// Assemble filters and finalizes the document's rules: disabled rules
// and rules missing a name or value are dropped (the latter two with a
// warning), and the document's default conditions are prepended to each
// surviving rule's own conditions. Order is preserved.
func Assemble(doc *Document, opts AssemblyOptions, rep *report.Reporter) []Rule {
	rules := make([]Rule, 0, len(doc.Overwrites))

	for i := range doc.Overwrites {
		raw := &doc.Overwrites[i]

		enabled := opts.EnabledByDefault
		if raw.Enabled != nil {
			enabled = *raw.Enabled
		}

		if !enabled {
			continue
		}

		if raw.Name == "" {
			rep.Warnf("skipping json_value_overwrite rule without 'name'")
			continue
		}

		if !raw.HasValue {
			rep.Warnf("skipping json_value_overwrite rule %q without 'value'", raw.Name)
			continue
		}

		conditions := make([]Condition, 0, len(doc.DefaultConditions)+len(raw.Conditions))
		conditions = append(conditions, doc.DefaultConditions...)
		conditions = append(conditions, raw.Conditions...)

		rules = append(rules, Rule{
			Name:       raw.Name,
			Value:      record.Normalize(raw.Value),
			Conditions: conditions,
			Add:        raw.Add,
		})
	}

	return rules
}
