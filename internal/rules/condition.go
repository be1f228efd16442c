package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"profile-forge/internal/record"
)

// Condition is a single predicate gating a rule. Exactly one variant is
// populated, selected by Kind.
type Condition struct {
	// Kind selects the variant. The zero value marks an unrecognized
	// tag, which evaluation fails closed on.
	Kind ConditionKind

	// Tag is the raw type tag from the document, kept for warnings
	// about unrecognized kinds.
	Tag string

	// Pattern is the glob for the four glob kinds.
	Pattern string

	// Key names the record field for json_value conditions.
	Key string

	// Value is the expected value for json_value conditions, already
	// normalized into the record value space. An explicit null counts
	// as absent here (HasValue false): a condition cannot expect null,
	// and evaluation fails it closed.
	Value    any
	HasValue bool

	// Negate flips the json_value pass condition.
	Negate bool
}

// UnmarshalYAML decodes a condition object. Unknown type tags are kept
// rather than rejected: the rule set is an external, unversioned
// document, and fail-closed evaluation at run time is the safer default
// for data this code does not control.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type    string    `yaml:"type"`
		Pattern string    `yaml:"pattern"`
		Key     string    `yaml:"key"`
		Value   yaml.Node `yaml:"value"`
		Negate  bool      `yaml:"negate"`
	}

	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decoding condition: %w", err)
	}

	c.Tag = raw.Type
	c.Kind = kindFromTag(raw.Type)
	c.Pattern = raw.Pattern
	c.Key = raw.Key
	c.Negate = raw.Negate

	if !raw.Value.IsZero() && raw.Value.Tag != "!!null" {
		var v any
		if err := raw.Value.Decode(&v); err != nil {
			return fmt.Errorf("decoding condition value: %w", err)
		}

		c.Value = record.Normalize(v)
		c.HasValue = true
	}

	return nil
}
