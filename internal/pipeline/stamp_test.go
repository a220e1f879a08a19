package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/pdfbatch/internal/config"
	"github.com/backmassage/pdfbatch/internal/logging"
	"github.com/backmassage/pdfbatch/internal/pdfengine"
)

func TestRunStamp_WritesSuffixedCopies(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "Chapter 3.pdf", 2)
	before, _ := os.ReadFile(in)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir

	stats, err := RunStamp(context.Background(), &cfg, testLogger(t))
	if err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	if stats.Processed != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 1 processed", stats)
	}

	out := filepath.Join(dir, "Chapter 3_titled.pdf")
	n, err := pdfengine.New().PageCount(out)
	if err != nil {
		t.Fatalf("PageCount(%s): %v", out, err)
	}
	if n != 2 {
		t.Errorf("stamped page count = %d, want 2 (same as source)", n)
	}

	after, _ := os.ReadFile(in)
	if !bytes.Equal(before, after) {
		t.Error("original file's bytes must not change when overwrite is off")
	}
}

func TestRunStamp_ContinuesPastBadFile(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "good1.pdf", 1)
	writeGarbage(t, dir, "bad.pdf")
	writePDF(t, dir, "good2.pdf", 1)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir

	stats, err := RunStamp(context.Background(), &cfg, testLogger(t))
	if err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	if stats.Processed != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want 2 processed / 1 failed", stats)
	}
	for _, name := range []string{"good1_titled.pdf", "good2_titled.pdf"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestRunStamp_Overwrite(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "doc.pdf", 1)
	before, _ := os.ReadFile(in)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Overwrite = true

	stats, err := RunStamp(context.Background(), &cfg, testLogger(t))
	if err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	if stats.Processed != 1 {
		t.Errorf("stats = %+v, want 1 processed", stats)
	}

	after, _ := os.ReadFile(in)
	if bytes.Equal(before, after) {
		t.Error("overwrite mode should modify the original file")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("overwrite mode must not create extra files, dir has %d entries", len(entries))
	}
}

func TestRunStamp_AvoidsClobberingBatchInput(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "A.pdf", 1)
	writePDF(t, dir, "A_titled.pdf", 1)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir

	stats, err := RunStamp(context.Background(), &cfg, testLogger(t))
	if err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	if stats.Processed != 2 {
		t.Errorf("stats = %+v, want 2 processed", stats)
	}

	// Stamping "A.pdf" must divert to a numbered name because
	// "A_titled.pdf" is itself a batch input.
	if _, err := os.Stat(filepath.Join(dir, "A_titled (2).pdf")); err != nil {
		t.Errorf("expected diverted output 'A_titled (2).pdf': %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "A_titled_titled.pdf")); err != nil {
		t.Errorf("expected 'A_titled_titled.pdf' from stamping the second input: %v", err)
	}
}

func TestRunStamp_VerboseLogsDetail(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "doc.pdf", 1)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Verbose = true
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if _, err := RunStamp(context.Background(), &cfg, log); err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	log.Close()

	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("DEBUG")) || !bytes.Contains(b, []byte("Size:")) {
		t.Errorf("verbose run should log DEBUG size detail, got: %s", string(b))
	}
	if !bytes.Contains(b, []byte("doc_titled.pdf")) {
		t.Errorf("verbose run should log the resolved output path, got: %s", string(b))
	}
}

func TestRunStamp_QuietWithoutVerbose(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "doc.pdf", 1)

	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if _, err := RunStamp(context.Background(), &cfg, log); err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	log.Close()

	b, _ := os.ReadFile(cfg.LogFile)
	if bytes.Contains(b, []byte("DEBUG")) {
		t.Errorf("non-verbose run must not log DEBUG lines, got: %s", string(b))
	}
}

func TestRunStamp_EmptyDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()

	stats, err := RunStamp(context.Background(), &cfg, testLogger(t))
	if err != nil {
		t.Fatalf("RunStamp: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
}

func TestRunStamp_MissingDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(t.TempDir(), "nope")

	if _, err := RunStamp(context.Background(), &cfg, testLogger(t)); err == nil {
		t.Error("RunStamp should fail on a missing directory")
	}
}
