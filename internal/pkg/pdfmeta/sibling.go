package pdfmeta

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FindSiblingPDF returns the path of a PDF sitting beside sourcePath
// with the same base name, and whether it exists. Filesystem errors
// are treated as "not found" and only logged at debug severity.
func FindSiblingPDF(sourcePath string) (string, bool) {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	candidate := filepath.Join(filepath.Dir(sourcePath), stem+".pdf")

	info, err := os.Stat(candidate)
	if err != nil {
		slog.Debug("no sibling pdf",
			slog.String("source", sourcePath),
			slog.String("candidate", candidate),
			slog.String("error", err.Error()))
		return "", false
	}
	if info.IsDir() {
		return "", false
	}
	return candidate, true
}
