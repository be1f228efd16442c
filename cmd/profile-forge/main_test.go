package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-forge/internal/pathout"
	"profile-forge/internal/pipeline"
)

func TestParseReplacements(t *testing.T) {
	out, err := parseReplacements([]string{"Anycubic=AC", "draft="})
	require.NoError(t, err)

	assert.Equal(t, []pathout.Replacement{
		{Find: "Anycubic", Replace: "AC"},
		{Find: "draft", Replace: ""},
	}, out)
}

func TestParseReplacementsRejectsMalformedPairs(t *testing.T) {
	for _, pair := range []string{"no-separator", "=empty-find"} {
		_, err := parseReplacements([]string{pair})
		assert.Error(t, err, pair)
	}
}

func TestParseReplacementsEmpty(t *testing.T) {
	out, err := parseReplacements(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPickPrecedence(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	val := fs.String("filter", "", "")
	require.NoError(t, fs.Parse(nil))

	// Builtin wins when neither flag nor config is set.
	assert.Equal(t, "**/*", pick(fs, "filter", *val, "", "**/*"))

	// Config beats builtin.
	assert.Equal(t, "*.json", pick(fs, "filter", *val, "*.json", "**/*"))

	// An explicit flag beats both, even when set to the empty string.
	require.NoError(t, fs.Set("filter", ""))
	assert.Equal(t, "", pick(fs, "filter", *val, "*.json", "**/*"))
}

func TestPickBoolHonorsExplicitConfigFalse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	val := fs.Bool("overwrite", true, "")
	require.NoError(t, fs.Parse(nil))

	cfgFalse := false
	assert.False(t, pickBool(fs, "overwrite", *val, &cfgFalse))
	assert.True(t, pickBool(fs, "overwrite", *val, nil))
}

func TestExpandHomeLeavesPlainPathsAlone(t *testing.T) {
	assert.Equal(t, "/etc/profiles", expandHome("/etc/profiles"))
	assert.Equal(t, "relative/path", expandHome("relative/path"))
	// "~user" syntax is not supported and passes through.
	assert.Equal(t, "~other/file", expandHome("~other/file"))
}

func TestDefaultsForModes(t *testing.T) {
	conv := defaultsFor(pipeline.ModeConvert)
	assert.Equal(t, "Original ", conv.prefix)
	assert.Equal(t, "**/*", conv.filter)
	assert.NotEmpty(t, conv.source)
	assert.NotEmpty(t, conv.output)

	upd := defaultsFor(pipeline.ModeUpdate)
	assert.Equal(t, "**/*.json", upd.filter)
	assert.Empty(t, upd.prefix)
}
