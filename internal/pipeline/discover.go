package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover produces the candidate file list for a run: a single-file
// source is its own candidate; a directory source is globbed with
// pattern (doublestar semantics, so "**/*.json" recurses). Only
// regular .json files survive; results are sorted for determinism.
func Discover(source, pattern string) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source path %s: %w", source, err)
	}

	if !info.IsDir() {
		return []string{source}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(source), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	var files []string

	for _, match := range matches {
		path := filepath.Join(source, filepath.FromSlash(match))

		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(path), ".json") {
			continue
		}

		files = append(files, path)
	}

	sort.Strings(files)

	return files, nil
}
