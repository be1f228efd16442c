// Package config loads the YAML run configuration. One document carries
// both the optional `defaults` section (baseline values for command-line
// flags) and the rule set itself, so a single file fully describes a
// recurring run.
package config
