// Package main provides the CLI entrypoint for profile-forge.
//
// profile-forge is a batch transformer for slicer profile JSON files that:
//   - Flattens `inherits` chains into standalone profiles
//   - Applies the fixed field transforms conversion requires
//   - Runs a YAML-driven, condition-gated rule engine over profile fields
//   - Mirrors results into an output tree, renames them, or updates in place
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"profile-forge/internal/config"
	"profile-forge/internal/pathout"
	"profile-forge/internal/pipeline"
	"profile-forge/internal/report"
	"profile-forge/internal/rules"
)

const usageText = `Usage: profile-forge <command> [flags]

Commands:
  convert   convert vendor system profiles into standalone user profiles
  migrate   flatten inherits chains in an existing profile tree, in place
  update    apply the configured rule set to matching profiles

Run "profile-forge <command> --help" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	switch args[0] {
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usageText)
		return 0
	}

	mode, err := pipeline.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile-forge: %v\n", err)
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	fs := pflag.NewFlagSet("profile-forge "+args[0], pflag.ContinueOnError)

	var (
		configPath = fs.StringP("config", "c", "", "YAML config with flag defaults and the rule set")
		source     = fs.StringP("source", "s", "", "source profile file or directory")
		output     = fs.StringP("output", "o", "", "output file or directory (omit for in-place)")
		prefix     = fs.String("prefix", "", "prefix prepended to output filenames")
		postfix    = fs.String("postfix", "", "postfix appended to output filenames, before the extension")
		replace    = fs.StringArray("filename-replace", nil, "FIND=REPLACE pair applied to output filenames (repeatable)")
		filter     = fs.String("filter", "", "glob filter for candidate files, ** recurses")
		overwrite  = fs.Bool("overwrite", false, "overwrite existing output files")
		sortKeys   = fs.Bool("sort", false, "sort JSON keys alphabetically in output")
		forceCopy  = fs.Bool("force-copy", false, "update: copy matched files even without content changes")
		workers    = fs.IntP("workers", "w", 1, "number of parallel workers")
		debug      = fs.Bool("debug", false, "enable debug logging")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "profile-forge: %v\n", err)

		return 2
	}

	var cfg *config.File

	switch {
	case *configPath != "":
		cfg, err = config.Load(expandHome(*configPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "profile-forge: %v\n", err)
			return 2
		}
	case mode == pipeline.ModeUpdate:
		// Update mode is driven entirely by the rule set.
		fmt.Fprintln(os.Stderr, "profile-forge: update mode requires --config with a rule set")
		return 2
	default:
		cfg = &config.File{}
	}

	dbg := *debug
	if !fs.Changed("debug") && cfg.Defaults.Debug != nil {
		dbg = *cfg.Defaults.Debug
	}

	rep := report.New(dbg)

	ruleSet := rules.Assemble(&cfg.Rules, rules.AssemblyOptions{
		EnabledByDefault: mode.RulesEnabledByDefault(),
	}, rep)

	if mode == pipeline.ModeUpdate && len(ruleSet) == 0 {
		fmt.Fprintln(os.Stderr, "profile-forge: rule set contains no enabled rules")
		return 2
	}

	replacements, err := parseReplacements(*replace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile-forge: %v\n", err)
		return 2
	}

	def := defaultsFor(mode)

	opts := pipeline.Options{
		Mode:   mode,
		Source: expandHome(pick(fs, "source", *source, cfg.Defaults.Source, def.source)),
		Output: expandHome(pick(fs, "output", *output, cfg.Defaults.Output, def.output)),
		Filter: pick(fs, "filter", *filter, cfg.Defaults.Filter, def.filter),
		Transform: pathout.NamingTransform{
			Prefix:       pick(fs, "prefix", *prefix, cfg.Defaults.Prefix, def.prefix),
			Postfix:      pick(fs, "postfix", *postfix, cfg.Defaults.Postfix, ""),
			Replacements: replacements,
		},
		Rules:     ruleSet,
		Overwrite: pickBool(fs, "overwrite", *overwrite, cfg.Defaults.Overwrite),
		SortKeys:  pickBool(fs, "sort", *sortKeys, cfg.Defaults.SortKeys),
		ForceCopy: *forceCopy,
		Workers:   *workers,
	}

	if opts.Source == "" {
		fmt.Fprintln(os.Stderr, "profile-forge: source path required (--source or config defaults)")
		return 2
	}

	runner, err := pipeline.NewRunner(opts, rep)
	if err != nil {
		rep.Errorf("%v", err)
		return 2
	}

	sum, err := runner.Run()
	if err != nil {
		rep.Errorf("%v", err)
		return 2
	}

	rep.Infof("done: %d files, %d processed, %d skipped (no rules), %d skipped (no changes), %d errors, %d warnings",
		sum.Total, sum.Processed, sum.SkippedNoRules, sum.SkippedNoChanges, sum.Errors, rep.WarningCount())

	if sum.Failed() {
		return 1
	}

	return 0
}

// modeDefaults are the built-in baseline values, overridden first by the
// config file's defaults section and then by explicit flags.
type modeDefaults struct {
	source string
	output string
	prefix string
	filter string
}

func defaultsFor(mode pipeline.Mode) modeDefaults {
	if mode == pipeline.ModeConvert {
		return modeDefaults{
			source: "~/.config/AnycubicSlicerNext/system/Anycubic",
			output: "~/.config/OrcaSlicer/user/default",
			prefix: "Original ",
			filter: "**/*",
		}
	}

	// Migrate and update operate on trees the user names explicitly.
	return modeDefaults{filter: "**/*.json"}
}

// pick applies flag-over-config-over-builtin precedence for one string
// setting. An explicitly set flag wins even when empty.
func pick(fs *pflag.FlagSet, name, flagVal, cfgVal, builtin string) string {
	if fs.Changed(name) {
		return flagVal
	}

	if cfgVal != "" {
		return cfgVal
	}

	return builtin
}

func pickBool(fs *pflag.FlagSet, name string, flagVal bool, cfgVal *bool) bool {
	if fs.Changed(name) {
		return flagVal
	}

	if cfgVal != nil {
		return *cfgVal
	}

	return flagVal
}

func parseReplacements(pairs []string) ([]pathout.Replacement, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make([]pathout.Replacement, 0, len(pairs))

	for _, pair := range pairs {
		find, repl, ok := strings.Cut(pair, "=")
		if !ok || find == "" {
			return nil, fmt.Errorf("invalid --filename-replace %q (want FIND=REPLACE)", pair)
		}

		out = append(out, pathout.Replacement{Find: find, Replace: repl})
	}

	return out, nil
}

// expandHome resolves a leading "~" against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
