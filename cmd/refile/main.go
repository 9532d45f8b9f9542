package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"refile/internal/app"
	"refile/internal/config"
	"refile/internal/logging"
	"refile/internal/pkg/apperror"
	"refile/internal/pkg/registry"
	"refile/internal/rename"
	"refile/internal/templates"
	"refile/internal/ui"
)

func main() {
	settingsPath := configPath()
	settings, err := config.Load(settingsPath)
	if err != nil {
		logging.Init("info")
		slog.Error("failed to load settings", "path", settingsPath, "error", err)
		os.Exit(1)
	}
	logging.Init(settings.LogLevel())

	reg := registry.New()
	reg.RegisterInstance(app.ServiceSettings, settings)
	reg.RegisterFactory(app.ServiceClassifier, func() any {
		return apperror.NewClassifier(slog.Default())
	}, true)
	reg.RegisterFactory(app.ServiceTemplates, func() any {
		return templates.NewStore(settings.TemplatesDir())
	}, true)
	reg.RegisterFactory(app.ServiceHistory, func() any {
		return rename.NewHistory(50)
	}, true)
	registry.SetDefault(reg)

	application, err := app.FromRegistry(reg)
	if err != nil {
		slog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	fa := fyneapp.NewWithID("io.refile.app")
	win := fa.NewWindow("Re-File")

	w, h := settings.WindowSize()
	win.Resize(fyne.NewSize(w, h))

	ui.Build(win, application)
	win.ShowAndRun()
}

func configPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "refile", "config.yaml")
}
