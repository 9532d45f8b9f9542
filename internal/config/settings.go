// Package config reads application settings.
//
// Settings come from an optional YAML file; every key has a default so
// the application runs without one. Business code depends on the
// Settings type, not on where values come from.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is a viper-backed view over the application configuration.
type Settings struct {
	v *viper.Viper
}

// Load reads settings from path. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("page_size", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("window.width", 1040)
	v.SetDefault("window.height", 680)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("templates.dir", defaultTemplatesDir())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	return &Settings{v: v}, nil
}

func defaultTemplatesDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "templates"
	}
	return filepath.Join(base, "refile", "templates")
}

// PageSize returns the number of preview rows per page.
func (s *Settings) PageSize() int {
	if n := s.v.GetInt("page_size"); n > 0 {
		return n
	}
	return 10
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	return s.v.GetString("log_level")
}

// WindowSize returns the initial window dimensions.
func (s *Settings) WindowSize() (width, height float32) {
	return float32(s.v.GetInt("window.width")), float32(s.v.GetInt("window.height"))
}

// JournalEnabled reports whether applied batches default to writing an
// undo journal.
func (s *Settings) JournalEnabled() bool {
	return s.v.GetBool("journal.enabled")
}

// TemplatesDir returns the directory holding saved rename templates.
func (s *Settings) TemplatesDir() string {
	return s.v.GetString("templates.dir")
}
