package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document represents the root of a rule-set document.
type Document struct {
	// DefaultConditions are prepended to every rule's own condition
	// list during assembly, so a file must satisfy both.
	DefaultConditions []Condition `yaml:"default_conditions"`

	// Overwrites is the ordered list of field-overwrite rules.
	Overwrites []RawRule `yaml:"json_value_overwrite"`
}

// RawRule is a rule entry exactly as written in the document, before
// assembly filters and default conditions are applied.
type RawRule struct {
	// Name is the target field key. Rules without a name are dropped.
	Name string

	// Value is the replacement value. HasValue distinguishes a present
	// null from an absent field; rules without a value are dropped.
	Value    any
	HasValue bool

	// Enabled is tri-state: nil means "not specified", deferring to the
	// per-mode default.
	Enabled *bool

	// Conditions gate the rule (AND-combined).
	Conditions []Condition

	// Add permits creating the target field when it is absent.
	Add bool
}

// UnmarshalYAML decodes a rule entry, tracking field presence for the
// value and enabled keys.
func (r *RawRule) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name       string      `yaml:"name"`
		Value      yaml.Node   `yaml:"value"`
		Enabled    *bool       `yaml:"enabled"`
		Conditions []Condition `yaml:"conditions"`
		Add        bool        `yaml:"add"`
	}

	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decoding rule: %w", err)
	}

	r.Name = raw.Name
	r.Enabled = raw.Enabled
	r.Conditions = raw.Conditions
	r.Add = raw.Add

	// An explicit `value: null` is a real value (it writes null into
	// the record); only an absent value field drops the rule.
	if !raw.Value.IsZero() {
		var v any
		if err := raw.Value.Decode(&v); err != nil {
			return fmt.Errorf("decoding rule value: %w", err)
		}

		r.Value = v
		r.HasValue = true
	}

	return nil
}

// Rule is an assembled, enabled rule ready for evaluation. Its value is
// normalized into the record value space.
type Rule struct {
	Name       string
	Value      any
	Conditions []Condition
	Add        bool
}
