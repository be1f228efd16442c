package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"profile-forge/internal/record"
	"profile-forge/internal/report"
)

func TestApplyAddFalseOnMissingKey(t *testing.T) {
	rec := testRecord("other", "1")

	engine := NewEngine([]Rule{
		{Name: "absent_key", Value: "v", Add: false},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, matched, "rule counts as matched even when it cannot apply")
	assert.False(t, changed)
	assert.False(t, rec.Has("absent_key"))
}

func TestApplyAddTrueCreatesKey(t *testing.T) {
	rec := record.New()

	engine := NewEngine([]Rule{
		{Name: "new_key", Value: "v", Add: true},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, matched)
	assert.True(t, changed)
	assert.Equal(t, "v", rec.GetString("new_key"))
}

func TestApplyIdenticalValueMatchesWithoutChange(t *testing.T) {
	rec := testRecord("speed", "12")

	engine := NewEngine([]Rule{
		{Name: "speed", Value: "12"},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, matched)
	assert.False(t, changed)
}

func TestApplyNullValueOverwritesExisting(t *testing.T) {
	rec := testRecord("compatible_printers_condition", "stale")

	engine := NewEngine([]Rule{
		{Name: "compatible_printers_condition", Value: nil},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, matched)
	assert.True(t, changed)

	v, ok := rec.Get("compatible_printers_condition")
	assert.True(t, ok)
	assert.Nil(t, v)

	// Already-null values compare equal on a second pass.
	changedAgain, _ := engine.Apply(rec, "f.json", "/f.json")
	assert.False(t, changedAgain)
}

func TestApplyConditionsGateRules(t *testing.T) {
	rec := testRecord("filament_type", "PLA", "speed", "10")

	engine := NewEngine([]Rule{
		{
			Name:  "speed",
			Value: "99",
			Conditions: []Condition{
				{Kind: KindJSONValue, Key: "filament_type", Value: "ABS", HasValue: true},
			},
		},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.False(t, matched, "skipped rules do not count as matched")
	assert.False(t, changed)
	assert.Equal(t, "10", rec.GetString("speed"))
}

func TestApplyLastMatchingRuleWins(t *testing.T) {
	rec := testRecord("speed", "10")

	engine := NewEngine([]Rule{
		{Name: "speed", Value: "20"},
		{Name: "speed", Value: "30"},
	}, report.NewDiscard())

	changed, _ := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, changed)
	assert.Equal(t, "30", rec.GetString("speed"))
}

func TestApplyLaterRulesSeeEarlierEffects(t *testing.T) {
	rec := testRecord("stage", "first")

	engine := NewEngine([]Rule{
		{Name: "stage", Value: "second"},
		{
			// Matches only because the first rule already ran.
			Name:  "observed",
			Value: "yes",
			Add:   true,
			Conditions: []Condition{
				{Kind: KindJSONValue, Key: "stage", Value: "second", HasValue: true},
			},
		},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.True(t, changed)
	assert.True(t, matched)
	assert.Equal(t, "yes", rec.GetString("observed"))
}

func TestApplyNoRulesMatchedAtAll(t *testing.T) {
	rec := testRecord("a", "1")

	engine := NewEngine([]Rule{
		{
			Name:  "a",
			Value: "2",
			Conditions: []Condition{
				{Kind: KindFilenameGlob, Pattern: "*.gcode"},
			},
		},
	}, report.NewDiscard())

	changed, matched := engine.Apply(rec, "f.json", "/f.json")

	assert.False(t, matched)
	assert.False(t, changed)
}

func TestApplyIsIdempotent(t *testing.T) {
	rec := testRecord("speed", "10")

	engine := NewEngine([]Rule{
		{Name: "speed", Value: "42"},
		{Name: "brim", Value: "auto", Add: true},
	}, report.NewDiscard())

	changed, _ := engine.Apply(rec, "f.json", "/f.json")
	assert.True(t, changed)

	changedAgain, matchedAgain := engine.Apply(rec, "f.json", "/f.json")
	assert.False(t, changedAgain)
	assert.True(t, matchedAgain)
}
