// Command pdfstamp stamps each PDF's filename stem onto the top of every
// page of every PDF in a directory.
//
// Without --dir it prompts interactively for the directory and font size;
// with --dir it runs non-interactively for scripted use.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/pdfbatch/internal/config"
	"github.com/backmassage/pdfbatch/internal/display"
	"github.com/backmassage/pdfbatch/internal/logging"
	"github.com/backmassage/pdfbatch/internal/pipeline"
	"github.com/backmassage/pdfbatch/internal/prompt"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so flag errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through the
	// logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseStampFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pdfstamp: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfstamp: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.Interactive {
		p := prompt.New(os.Stdin, os.Stdout)
		dir := p.Directory("Enter the path to the directory containing PDFs")
		if dir == "" {
			log.Error("No directory given.")
			return 1
		}
		cfg.InputDir = dir
		cfg.FontSize = p.FontSize(cfg.FontSize, cfg.FontConfirmAbove)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Cancel between files on SIGINT/SIGTERM so an interrupted batch stops
	// cleanly after the current file.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Per-file failures are reported in the summary, not escalated to the
	// exit code; only a missing or invalid directory is fatal.
	if _, err := pipeline.RunStamp(ctx, &cfg, log); err != nil {
		return 1
	}
	return 0
}
