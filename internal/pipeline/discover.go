package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/pdfbatch/internal/natsort"
)

// Discover lists the regular files directly inside dir (non-recursive) whose
// extension is ".pdf" in any case, sorted in natural filename order. It
// fails when dir is missing or not a directory.
func Discover(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	natsort.SortFiles(files)
	return files, nil
}

// ExcludeOutput drops the designated output file from the input set by
// comparing resolved absolute paths, so re-running a merge never folds the
// previous result back into the new one.
func ExcludeOutput(files []string, outputPath string) []string {
	outAbs, err := filepath.Abs(outputPath)
	if err != nil {
		outAbs = outputPath
	}

	kept := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = f
		}
		if abs == outAbs {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
