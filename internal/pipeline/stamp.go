package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/pdfbatch/internal/config"
	"github.com/backmassage/pdfbatch/internal/display"
	"github.com/backmassage/pdfbatch/internal/logging"
	"github.com/backmassage/pdfbatch/internal/naming"
	"github.com/backmassage/pdfbatch/internal/pdfengine"
)

// RunStamp stamps each PDF's filename stem onto the top of every one of its
// pages. Output placement follows cfg: a suffixed copy alongside the
// original, or in-place replacement when Overwrite is set. Per-file failures
// are reported and never stop the batch; the returned error is non-nil only
// when the directory itself is missing.
func RunStamp(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}
	if len(files) == 0 {
		log.Warn("No PDF files found in %s", cfg.InputDir)
		return stats, nil
	}

	stats.Total = len(files)
	log.Info("Found %d PDF file(s) in %s", stats.Total, cfg.InputDir)
	log.Info("Settings: %s %dpt at (%g, %g), overwrite=%v",
		cfg.FontName, cfg.FontSize, cfg.PosX, cfg.PosY, cfg.Overwrite)
	fmt.Println()

	eng := pdfengine.New()
	opts := pdfengine.StampOptions{
		FontName: cfg.FontName,
		FontSize: cfg.FontSize,
		X:        cfg.PosX,
		Y:        cfg.PosY,
		R:        cfg.Color.R,
		G:        cfg.Color.G,
		B:        cfg.Color.B,
	}

	// Reserve all inputs up front so a suffixed output never clobbers a file
	// that is itself part of the batch.
	resolver := naming.NewCollisionResolver()
	if !cfg.Overwrite {
		for _, p := range files {
			resolver.Reserve(p)
		}
	}

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processStampFile(cfg, log, eng, resolver, opts, path, &stats)
	}

	logStampSummary(cfg, log, &stats)
	return stats, nil
}

// processStampFile handles one PDF: derive the title, resolve the output
// path, stamp every page, update stats.
func processStampFile(
	cfg *config.Config,
	log *logging.Logger,
	eng *pdfengine.Engine,
	resolver *naming.CollisionResolver,
	opts pdfengine.StampOptions,
	path string,
	stats *RunStats,
) {
	base := filepath.Base(path)
	title := naming.TitleFor(path)

	log.Info("[%d/%d] %s", stats.Current, stats.Total, base)
	log.Info("  Title: %q", title)

	outPath := naming.StampOutputPath(path, cfg.OutputSuffix, cfg.Overwrite)
	if !cfg.Overwrite {
		outPath = resolver.Resolve(path, outPath)
	}
	log.Debug(cfg.Verbose, "  Output: %s", outPath)

	var inSize int64
	if fi, err := os.Stat(path); err == nil {
		inSize = fi.Size()
	}

	// An empty engine output path means in-place replacement.
	engineOut := outPath
	if cfg.Overwrite {
		engineOut = ""
	}

	if err := eng.StampFile(path, engineOut, title, opts); err != nil {
		log.Error("Error processing %s: %v", base, err)
		stats.Failed++
		fmt.Println()
		return
	}

	if fi, err := os.Stat(outPath); err == nil {
		stats.OutputBytes += fi.Size()
		log.Debug(cfg.Verbose, "  Size: %s (%s vs original)",
			display.FormatBytes(fi.Size()), display.FormatBytesWithSign(fi.Size()-inSize))
	}
	if pages, err := eng.PageCount(outPath); err == nil {
		stats.OutputPages += pages
	}

	log.Success("  Saved to: %s", filepath.Base(outPath))
	stats.Processed++
	fmt.Println()
}

func logStampSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("============================================================")
	log.Info("Processing complete! %d/%d files processed successfully.", stats.Processed, stats.Total)
	if stats.Processed > 0 && !cfg.Overwrite {
		log.Info("Original files preserved. New files have the %q suffix.", cfg.OutputSuffix)
	}
}
