package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscover_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "b.PDF")
	touch(t, dir, "c.Pdf")
	touch(t, dir, "notes.txt")
	touch(t, dir, "image.png")
	touch(t, dir, "archive.pdf.bak")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"a.pdf", "b.PDF", "c.Pdf"}
	if got := basenames(files); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.pdf")
	os.MkdirAll(filepath.Join(dir, "nested"), 0o755)
	touch(t, filepath.Join(dir, "nested"), "inner.pdf")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.pdf" {
		t.Errorf("got %v, want only top.pdf", basenames(files))
	}
}

func TestDiscover_NaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Page 10.pdf", "Page 2.pdf", "Page 1.pdf", "Page 9.pdf"} {
		touch(t, dir, name)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"Page 1.pdf", "Page 2.pdf", "Page 9.pdf", "Page 10.pdf"}
	if got := basenames(files); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Discover should fail on a missing directory")
	}
}

func TestDiscover_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := touch(t, dir, "plain.pdf")
	if _, err := Discover(file); err == nil {
		t.Error("Discover should fail when the path is a file")
	}
}

func TestExcludeOutput(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")
	out := touch(t, dir, "ALL.pdf")
	b := touch(t, dir, "b.pdf")

	got := ExcludeOutput([]string{a, out, b}, filepath.Join(dir, "ALL.pdf"))
	want := []string{a, b}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExcludeOutput_RelativeVsAbsolute(t *testing.T) {
	dir := t.TempDir()
	out := touch(t, dir, "ALL.pdf")

	// The output given as an unclean path still matches the discovered file.
	unclean := filepath.Join(dir, ".", "ALL.pdf")
	got := ExcludeOutput([]string{out}, unclean)
	if len(got) != 0 {
		t.Errorf("got %v, want empty set", got)
	}
}

func TestExcludeOutput_NoMatch(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")

	got := ExcludeOutput([]string{a}, filepath.Join(dir, "ALL.pdf"))
	if len(got) != 1 {
		t.Errorf("got %v, want the input unchanged", got)
	}
}
