// Command pdfmerge merges every PDF in a folder into a single output file,
// in natural filename order, skipping files too malformed to repair.
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
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := config.ParseMergeFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pdfmerge: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pdfmerge: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfmerge: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Skipped inputs are tolerated; a missing directory or a failed final
	// write is fatal and reflected in the exit code.
	if _, err := pipeline.RunMerge(ctx, &cfg, log); err != nil {
		return 1
	}
	return 0
}
