package pathout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrConfigConflict marks source/output combinations that must abort
// the run before any file is processed.
var ErrConfigConflict = errors.New("configuration conflict")

// Resolver maps source paths to destination paths for one run.
type Resolver struct {
	sourceRoot   string
	sourceIsFile bool
	output       string
	outputIsDir  bool
	transform    NamingTransform
}

// NewResolver validates the source/output/transform combination and
// returns a Resolver. output may be empty for in-place (or beside the
// original, when the transform is active) operation.
//
// Rejected combinations:
//
//   - a missing source path
//   - a single-file source with a literal file target and an active
//     naming transform (the transform could never apply)
//   - a directory source with an existing file as target
func NewResolver(sourceRoot, output string, transform NamingTransform) (*Resolver, error) {
	info, err := os.Stat(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("source path %s: %w", sourceRoot, err)
	}

	sourceIsFile := !info.IsDir()

	outputIsDir := false
	if output != "" {
		if outInfo, err := os.Stat(output); err == nil {
			outputIsDir = outInfo.IsDir()
		} else {
			// A not-yet-existing output is created as a directory for
			// directory sources; for a file source it is the literal
			// destination file.
			outputIsDir = !sourceIsFile
		}
	}

	if sourceIsFile && output != "" && !outputIsDir && transform.Active() {
		return nil, fmt.Errorf("%w: prefix/postfix/replacements cannot be used when source is a file and output is a file", ErrConfigConflict)
	}

	if !sourceIsFile && output != "" && !outputIsDir {
		return nil, fmt.Errorf("%w: output must be a directory (or omitted) when source is a directory", ErrConfigConflict)
	}

	return &Resolver{
		sourceRoot:   sourceRoot,
		sourceIsFile: sourceIsFile,
		output:       output,
		outputIsDir:  outputIsDir,
		transform:    transform,
	}, nil
}

// Resolve computes the destination for sourcePath and whether the
// operation is in-place (destination identical to source).
func (r *Resolver) Resolve(sourcePath string) (dest string, inPlace bool) {
	dest = r.resolve(sourcePath)
	return dest, dest == sourcePath
}

func (r *Resolver) resolve(sourcePath string) string {
	base := filepath.Base(sourcePath)

	if r.output == "" {
		if !r.transform.Active() {
			return sourcePath
		}

		// Copy beside the original under the transformed name.
		return filepath.Join(filepath.Dir(sourcePath), r.transform.Apply(base))
	}

	if r.sourceIsFile {
		if r.outputIsDir {
			return filepath.Join(r.output, r.transform.Apply(base))
		}

		// Literal 1:1 file target; naming transforms were rejected at
		// construction.
		return r.output
	}

	// Directory source: mirror the file's path relative to the source
	// root inside the output directory.
	rel, err := filepath.Rel(r.sourceRoot, sourcePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = base
	}

	return filepath.Join(r.output, filepath.Dir(rel), r.transform.Apply(base))
}
