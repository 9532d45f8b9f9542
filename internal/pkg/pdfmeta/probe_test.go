package pdfmeta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// A file large enough to carry a trailer but with no PDF structure.
func writeMalformedPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 2048), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestPrimaryEngineReadsAndWrites(t *testing.T) {
	b, err := pdfcpuBinding()
	if err != nil {
		t.Fatalf("primary binding: %v", err)
	}
	if !b.Available || b.PageCount == nil || b.ExtractPages == nil {
		t.Fatalf("primary engine must read and write, got %+v", b)
	}

	src := writeMalformedPDF(t)
	if _, err := b.PageCount(src); err == nil {
		t.Fatal("expected a page-count error for a malformed file")
	}

	dst := filepath.Join(t.TempDir(), "out.pdf")
	if err := b.ExtractPages(src, dst, []string{"1"}); err == nil {
		t.Fatal("expected an extraction error for a malformed file")
	}
}

func TestFallbackEngineIsReadOnly(t *testing.T) {
	b, err := fallbackBinding()
	if err != nil {
		t.Fatalf("fallback binding: %v", err)
	}
	if !b.Available || b.PageCount == nil {
		t.Fatalf("fallback engine must count pages, got %+v", b)
	}
	if b.ExtractPages != nil {
		t.Fatal("fallback engine must not offer page extraction")
	}

	if _, err := b.PageCount(writeMalformedPDF(t)); err == nil {
		t.Fatal("expected a page-count error for a malformed file")
	}
}
