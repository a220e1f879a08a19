// Package naming derives stamp titles from filenames and decides where
// stamped output files go.
package naming

import (
	"path/filepath"
	"strings"
)

// TitleFor returns the human-readable title for a file: its basename with
// the extension removed. "Chapter 3.pdf" stamps as "Chapter 3".
func TitleFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StampOutputPath returns the output path for a stamped copy of input.
// With overwrite set the original path is returned (in-place replacement);
// otherwise the suffix is inserted before the extension, alongside the
// original ("scan.pdf" -> "scan_titled.pdf").
func StampOutputPath(input, suffix string, overwrite bool) string {
	if overwrite {
		return input
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
