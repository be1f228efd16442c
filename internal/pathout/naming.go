package pathout

import (
	"path/filepath"
	"strings"
)

// Replacement is one find/replace pair applied to output filenames.
type Replacement struct {
	Find    string
	Replace string
}

// NamingTransform renames output files. The zero value is inactive and
// leaves filenames untouched.
type NamingTransform struct {
	Prefix       string
	Postfix      string
	Replacements []Replacement
}

// Active reports whether the transform changes anything.
func (t NamingTransform) Active() bool {
	return t.Prefix != "" || t.Postfix != "" || len(t.Replacements) > 0
}

// Apply transforms a bare filename in the fixed order: prepend prefix,
// apply replacements in list order, append postfix, reattach the
// original extension. Replacements see the prefixed stem.
func (t NamingTransform) Apply(filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	result := t.Prefix + stem

	for _, r := range t.Replacements {
		result = strings.ReplaceAll(result, r.Find, r.Replace)
	}

	return result + t.Postfix + ext
}
