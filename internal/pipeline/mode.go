package pipeline

import "fmt"

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode selects which optional pipeline stages run.
type Mode int

const (
	_ Mode = iota // skip zero value, use it as a default (invalid) value for Mode

	// ModeConvert resolves inheritance, applies the fixed profile
	// transforms, then the rule engine. Rules are opt-in.
	ModeConvert
	// ModeMigrate resolves inheritance and applies the fixed profile
	// transforms; the rule engine does not run.
	ModeMigrate
	// ModeUpdate runs the rule engine only, with three-way outcome
	// reporting and in-place support. Rules are opt-out.
	ModeUpdate
)

// ParseMode maps a CLI mode name to its Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "convert":
		return ModeConvert, nil
	case "migrate":
		return ModeMigrate, nil
	case "update":
		return ModeUpdate, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want convert, migrate, or update)", name)
	}
}

// RulesEnabledByDefault returns the per-mode default applied to rule
// entries without an explicit enabled field.
func (m Mode) RulesEnabledByDefault() bool {
	return m == ModeUpdate
}

// ResolvesInheritance reports whether this mode flattens inherits
// chains and applies the fixed profile transforms.
func (m Mode) ResolvesInheritance() bool {
	return m == ModeConvert || m == ModeMigrate
}

// AppliesRules reports whether this mode runs the rule engine.
func (m Mode) AppliesRules() bool {
	return m == ModeConvert || m == ModeUpdate
}
