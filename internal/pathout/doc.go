// Package pathout computes destination paths for processed profiles.
//
// It covers the four output shapes (in-place, beside the original,
// file-to-directory, directory mirroring), the filename transform
// (prefix, ordered find/replace pairs, postfix), and the up-front
// validation that rejects conflicting source/output combinations
// before any file is touched.
package pathout
