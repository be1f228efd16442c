package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"profile-forge/internal/rules"
)

// Defaults is the optional `defaults` section. String fields use the
// empty string for "not set"; tri-state booleans use nil so an explicit
// `false` in the file still beats the built-in default.
type Defaults struct {
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	Prefix  string `yaml:"prefix"`
	Postfix string `yaml:"postfix"`
	Filter  string `yaml:"filter"`

	Overwrite *bool `yaml:"overwrite"`
	SortKeys  *bool `yaml:"sort_keys"`
	Debug     *bool `yaml:"debug"`
}

// File is a parsed configuration document. The rule-set keys
// (default_conditions, json_value_overwrite) live at the document root,
// beside the defaults section.
type File struct {
	Defaults Defaults       `yaml:"defaults"`
	Rules    rules.Document `yaml:",inline"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &f, nil
}
