package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverrideWins(t *testing.T) {
	base := New()
	base.Set("a", "1")
	base.Set("b", "2")

	override := New()
	override.Set("b", "20")
	override.Set("c", "30")

	merged, shallow := Merge(base, override)
	require.Empty(t, shallow)

	// Base keys keep their position; new keys append.
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())
	assert.Equal(t, "1", merged.GetString("a"))
	assert.Equal(t, "20", merged.GetString("b"))
	assert.Equal(t, "30", merged.GetString("c"))

	// Inputs are untouched.
	assert.Equal(t, "2", base.GetString("b"))
	assert.False(t, base.Has("c"))
}

func TestMergeNestedObjectsIsShallow(t *testing.T) {
	baseNested := New()
	baseNested.Set("x", json.Number("1"))

	base := New()
	base.Set("a", baseNested)

	overrideNested := New()
	overrideNested.Set("y", json.Number("2"))

	override := New()
	override.Set("a", overrideNested)

	merged, shallow := Merge(base, override)
	assert.Equal(t, []string{"a"}, shallow)

	v, ok := merged.Get("a")
	require.True(t, ok)

	nested := v.(*Record)
	assert.False(t, nested.Has("x"), "override object must replace base wholesale")
	assert.True(t, nested.Has("y"))
}

func TestMergeObjectOverScalarIsNotFlagged(t *testing.T) {
	base := New()
	base.Set("a", "scalar")

	overrideNested := New()
	overrideNested.Set("y", "2")

	override := New()
	override.Set("a", overrideNested)

	merged, shallow := Merge(base, override)
	assert.Empty(t, shallow)

	_, isObject := mustGet(t, merged, "a").(*Record)
	assert.True(t, isObject)
}

func mustGet(t *testing.T, rec *Record, key string) any {
	t.Helper()

	v, ok := rec.Get(key)
	require.True(t, ok)

	return v
}
