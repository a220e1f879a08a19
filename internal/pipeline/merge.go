package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/pdfbatch/internal/config"
	"github.com/backmassage/pdfbatch/internal/display"
	"github.com/backmassage/pdfbatch/internal/logging"
	"github.com/backmassage/pdfbatch/internal/pdfengine"
)

// RunMerge combines every readable PDF in cfg.InputDir, in natural filename
// order, into a single document at cfg.InputDir/cfg.OutputName. Unreadable
// files are warned about and skipped; the batch never aborts on one bad
// input. The returned error is non-nil only for fatal conditions: a missing
// directory or a failed final write.
//
// Every opened source stays open until the final write completes, because
// the merge may lazily reference page data from the source streams. All
// handles are released unconditionally afterwards, including on the
// write-failure path.
func RunMerge(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}

	outputPath := filepath.Join(cfg.InputDir, cfg.OutputName)
	files = ExcludeOutput(files, outputPath)

	if len(files) == 0 {
		log.Warn("No PDF files found to merge.")
		return stats, nil
	}
	stats.Total = len(files)
	log.Info("Found %d PDF file(s) in %s", stats.Total, cfg.InputDir)

	eng := pdfengine.New()
	var sources []*pdfengine.Source
	defer func() {
		for _, s := range sources {
			s.Close()
		}
	}()

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		base := filepath.Base(path)
		log.Info("[%d/%d] Adding %s...", stats.Current, stats.Total, base)

		src, err := eng.Open(path)
		if err != nil {
			log.Warn("Could not read %s: %v", base, err)
			log.Warn("Skipping this file.")
			stats.Skipped++
			continue
		}
		sources = append(sources, src)
		stats.Processed++
		if fi, err := os.Stat(path); err == nil {
			log.Debug(cfg.Verbose, "  Parsed OK (%s)", display.FormatBytes(fi.Size()))
		}
	}

	if len(sources) == 0 {
		log.Warn("No readable PDF files to merge.")
		logMergeSummary(log, &stats)
		return stats, nil
	}

	log.Info("Writing merged PDF...")
	if err := eng.MergeTo(sources, outputPath); err != nil {
		log.Error("Failed to write merged PDF: %v", err)
		logMergeSummary(log, &stats)
		return stats, err
	}

	if pages, err := eng.PageCount(outputPath); err == nil {
		stats.OutputPages = pages
	}
	if fi, err := os.Stat(outputPath); err == nil {
		stats.OutputBytes = fi.Size()
	}

	log.Success("Merge complete! Saved as %q (%s, %s).",
		cfg.OutputName, display.FormatPages(stats.OutputPages), display.FormatBytes(stats.OutputBytes))
	logMergeSummary(log, &stats)
	return stats, nil
}

func logMergeSummary(log *logging.Logger, stats *RunStats) {
	log.Info("============================================================")
	log.Info("%d/%d files merged successfully, %d skipped.", stats.Processed, stats.Total, stats.Skipped)
}
