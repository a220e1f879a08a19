// Package pdfengine wraps the pdfcpu library behind the small surface the
// pipeline needs: lenient open, single-write merge, per-page title stamping,
// and page counting. All PDF parsing and repair is pdfcpu's job; this package
// only fixes the configuration and resource discipline.
package pdfengine

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Engine carries the pdfcpu configuration shared by all operations. Relaxed
// validation is the analogue of a non-strict reader: truncated streams and
// null object references are repaired where possible instead of rejected.
type Engine struct {
	conf *model.Configuration
}

// New returns an Engine with relaxed validation.
func New() *Engine {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Engine{conf: conf}
}

// Source is one opened merge input. The underlying file handle stays open
// until after the final merge write, because the merge may lazily pull page
// data from the source stream.
type Source struct {
	Path string
	f    *os.File
}

// Close releases the underlying file handle.
func (s *Source) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// Open opens path and parses it leniently. A file pdfcpu cannot repair
// returns an error and no Source; a returned Source is rewound and ready for
// merging. The caller owns the handle and must Close it.
func (e *Engine) Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadContext(f, e.conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot validate %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return &Source{Path: path, f: f}, nil
}

// MergeTo appends the pages of all sources, in order, into a new document
// written once to outPath. On failure the partial output is removed. Sources
// remain open either way; releasing them is the caller's responsibility.
func (e *Engine) MergeTo(sources []*Source, outPath string) error {
	if len(sources) == 0 {
		return fmt.Errorf("no sources to merge")
	}

	rs := make([]io.ReadSeeker, len(sources))
	for i, s := range sources {
		rs[i] = s.f
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := api.MergeRaw(rs, out, false, e.conf); err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document at path.
func (e *Engine) PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
