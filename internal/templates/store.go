// Package templates persists named rename-step pipelines as TOML
// files so a pipeline can be rebuilt in a later session.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"refile/internal/rename"
)

// Template is a named, ordered rename pipeline.
type Template struct {
	Name    string        `toml:"name"`
	SavedAt time.Time     `toml:"saved_at"`
	Steps   []rename.Step `toml:"steps"`
}

// Store reads and writes templates under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes t to disk and returns the file path. An existing
// template with the same name is overwritten.
func (s *Store) Save(t Template) (string, error) {
	if strings.TrimSpace(t.Name) == "" {
		return "", fmt.Errorf("template name is empty")
	}
	if t.SavedAt.IsZero() {
		t.SavedAt = time.Now()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	data, err := toml.Marshal(t)
	if err != nil {
		return "", err
	}

	path := s.pathFor(t.Name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// SaveQuick saves steps under a timestamped name without prompting for
// one.
func (s *Store) SaveQuick(steps []rename.Step) (Template, error) {
	t := Template{
		Name:    "quick-" + time.Now().Format("20060102-150405"),
		SavedAt: time.Now(),
		Steps:   steps,
	}
	if _, err := s.Save(t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Load reads the template saved under name.
func (s *Store) Load(name string) (Template, error) {
	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		return Template{}, err
	}

	var t Template
	if err := toml.Unmarshal(data, &t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// List returns every stored template, sorted by name.
func (s *Store) List() ([]Template, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Template
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		t, err := s.Load(strings.TrimSuffix(e.Name(), ".toml"))
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the template saved under name.
func (s *Store) Delete(name string) error {
	return os.Remove(s.pathFor(name))
}

// pathFor sanitizes name into a file path inside the store directory.
func (s *Store) pathFor(name string) string {
	safe := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
	return filepath.Join(s.dir, safe+".toml")
}
