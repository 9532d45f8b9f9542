package pdfmeta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSiblingPDF(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "report.txt")
	pdf := filepath.Join(dir, "report.pdf")
	for _, p := range []string{src, pdf} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	got, ok := FindSiblingPDF(src)
	if !ok {
		t.Fatal("expected sibling pdf to be found")
	}
	if got != pdf {
		t.Fatalf("got %q, want %q", got, pdf)
	}
}

func TestFindSiblingPDFMissing(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "lonely.txt")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got, ok := FindSiblingPDF(src); ok {
		t.Fatalf("expected no sibling, got %q", got)
	}
}

func TestFindSiblingPDFUnreadableDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "gone", "report.txt")

	// The directory does not exist; the failure must read as "not
	// found", never as an error.
	if got, ok := FindSiblingPDF(src); ok {
		t.Fatalf("expected no sibling, got %q", got)
	}
}

func TestFindSiblingPDFIgnoresDirectory(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "report.pdf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got, ok := FindSiblingPDF(src); ok {
		t.Fatalf("expected directory to be ignored, got %q", got)
	}
}

func TestProbeResolvesOnce(t *testing.T) {
	first := Probe()
	second := Probe()

	if !first.Available {
		t.Fatal("expected an available pdf engine")
	}
	if first.Engine != second.Engine {
		t.Fatalf("probe not stable: %q then %q", first.Engine, second.Engine)
	}
	if first.PageCount == nil {
		t.Fatal("expected a page-count reader on the resolved binding")
	}
}
