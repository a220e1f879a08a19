package pdfengine

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// StampOptions controls title placement. X and Y are measured in pixels from
// the page's top-left corner; color components are in the 0-1 range.
type StampOptions struct {
	FontName string
	FontSize int
	X, Y     float64
	R, G, B  float64
}

// StampFile writes a copy of inPath to outPath with title drawn on every
// page. An empty outPath modifies inPath in place.
func (e *Engine) StampFile(inPath, outPath, title string, opts StampOptions) error {
	if title == "" {
		return fmt.Errorf("empty title for %s", inPath)
	}

	desc := fmt.Sprintf(
		"fontname:%s, points:%d, scalefactor:1 abs, position:tl, rotation:0, opacity:1, fillcolor:%.4f %.4f %.4f",
		opts.FontName, opts.FontSize, opts.R, opts.G, opts.B,
	)
	wm, err := pdfcpu.ParseTextWatermarkDetails(title, desc, true, types.POINTS)
	if err != nil {
		return fmt.Errorf("building title stamp: %w", err)
	}

	// pdfcpu offsets grow upward; the Y option is measured down from the top
	// edge, hence the sign flip.
	wm.Dx = opts.X
	wm.Dy = -opts.Y

	if err := api.AddWatermarksFile(inPath, outPath, nil, wm, e.conf); err != nil {
		return fmt.Errorf("stamping %s: %w", inPath, err)
	}
	return nil
}
