package rename

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListFiles returns the sorted full paths of the regular files
// directly inside folder.
func ListFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSpace(e.Name())
		if name == "" {
			continue
		}
		files = append(files, filepath.Join(folder, name))
	}
	sort.Strings(files)
	return files, nil
}

// FilterFiles keeps the paths whose base name contains query,
// case-insensitively. An empty query keeps everything.
func FilterFiles(all []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]string(nil), all...)
	}

	out := make([]string, 0, len(all))
	for _, full := range all {
		if strings.Contains(strings.ToLower(filepath.Base(full)), q) {
			out = append(out, full)
		}
	}
	return out
}
