package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-forge/internal/report"
)

func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestResolveChain(t *testing.T) {
	dir := t.TempDir()

	writeProfile(t, dir, "root.json", `{"layer_height": "0.2", "wall_loops": "2"}`)
	writeProfile(t, dir, "mid.json", `{"inherits": "root", "wall_loops": "3", "brim": "auto"}`)
	path := writeProfile(t, dir, "leaf.json", `{"inherits": "mid", "brim": "none"}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)

	rep := report.NewDiscard()
	resolved := NewResolver(rep).Resolve(path, rec)

	if testing.Verbose() {
		spew.Dump(resolved.Keys())
	}

	assert.Equal(t, "0.2", resolved.GetString("layer_height"))
	assert.Equal(t, "3", resolved.GetString("wall_loops"))
	assert.Equal(t, "none", resolved.GetString("brim"))
	assert.Equal(t, "", resolved.GetString(InheritsKey))
	assert.True(t, resolved.Has(InheritsKey), "inherits is cleared, not removed")
	assert.Zero(t, rep.WarningCount())
}

func TestResolveIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	writeProfile(t, dir, "base.json", `{"a": "1"}`)
	path := writeProfile(t, dir, "child.json", `{"inherits": "base", "b": "2"}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)

	resolver := NewResolver(report.NewDiscard())

	once := resolver.Resolve(path, rec)
	twice := resolver.Resolve(path, once.Clone())

	assert.True(t, once.Equal(twice))
}

func TestResolveWithoutInheritsReturnsInput(t *testing.T) {
	rec := New()
	rec.Set("a", "1")

	resolved := NewResolver(report.NewDiscard()).Resolve("/nowhere/p.json", rec)
	assert.Same(t, rec, resolved)
}

func TestResolveMissingParentTruncatesChain(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "orphan.json", `{"inherits": "gone", "a": "1"}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)

	rep := report.NewDiscard()
	resolved := NewResolver(rep).Resolve(path, rec)

	assert.Equal(t, "", resolved.GetString(InheritsKey))
	assert.Equal(t, "1", resolved.GetString("a"))

	// A missing parent gets the dedicated not-found warning, not the
	// generic load-failure one.
	warnings := rep.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "inherited profile not found")
}

func TestResolveUnreadableParentTruncatesChain(t *testing.T) {
	dir := t.TempDir()

	writeProfile(t, dir, "broken.json", `{not json`)
	path := writeProfile(t, dir, "child.json", `{"inherits": "broken", "a": "1"}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)

	rep := report.NewDiscard()
	resolved := NewResolver(rep).Resolve(path, rec)

	assert.Equal(t, "", resolved.GetString(InheritsKey))

	warnings := rep.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "failed to load inherited profile")
}

func TestResolveCyclicChainTerminates(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "self.json", `{"inherits": "self", "a": "1"}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)

	rep := report.NewDiscard()
	resolved := NewResolver(rep).Resolve(path, rec)

	assert.Equal(t, "1", resolved.GetString("a"))
	assert.GreaterOrEqual(t, rep.WarningCount(), 1)
}

func TestResolveDepthCapReturnsUnresolved(t *testing.T) {
	dir := t.TempDir()

	// A chain of 8 profiles: p0 <- p1 <- ... <- p7. Walking up from p7,
	// p1 is reached past the depth cap and is returned unresolved, so
	// p0's keys never make it into the flattened record.
	writeProfile(t, dir, "p0.json", `{"deep": "yes"}`)
	for i := 1; i <= 7; i++ {
		writeProfile(t, dir,
			nameOf(i),
			`{"inherits": "`+stem(i-1)+`", "k`+stem(i)[1:]+`": "v"}`)
	}

	path := filepath.Join(dir, nameOf(7))

	rec, err := LoadFile(path)
	require.NoError(t, err)

	rep := report.NewDiscard()
	resolved := NewResolver(rep).Resolve(path, rec)

	require.NotNil(t, resolved)
	assert.GreaterOrEqual(t, rep.WarningCount(), 1)
	assert.False(t, resolved.Has("deep"), "ancestors beyond the cap are not merged")
}

func stem(i int) string {
	return "p" + string(rune('0'+i))
}

func nameOf(i int) string {
	return stem(i) + ".json"
}
