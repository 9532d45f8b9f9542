package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"refile/internal/app"
	"refile/internal/pkg/apperror"
)

// shell holds the widgets that outlive a single render pass.
type shell struct {
	app *app.App
	win fyne.Window

	page     int
	pageSize int
	selected string // path of the list row the user picked

	searchEntry   *widget.Entry
	resultsHeader *widget.Label
	statusLabel   *widget.Label
	pageLabel     *widget.Label
	prevBtn       *widget.Button
	nextBtn       *widget.Button
	fileList      *widget.List
	previewBox    *fyne.Container
	stepsBox      *fyne.Container
	templatesBox  *fyne.Container

	dryRunCheck  *widget.Check
	journalCheck *widget.Check
}

// Build assembles the window content and bindings for a.
func Build(win fyne.Window, a *app.App) {
	s := &shell{
		app:      a,
		win:      win,
		pageSize: a.Settings().PageSize(),
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("Files", s.buildFilesTab()),
		container.NewTabItem("Templates", s.buildTemplatesTab()),
		container.NewTabItem("Help", s.buildHelpTab()),
	)

	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Truncation = fyne.TextTruncateEllipsis

	win.SetContent(container.NewBorder(nil, s.statusLabel, nil, nil, tabs))

	s.bindHotkeys()
	s.observeErrors()

	a.OnChange(s.refreshAll)
	s.refreshAll()
}

// observeErrors surfaces classified failures in the status line with
// the first remediation suggestion for the kind.
func (s *shell) observeErrors() {
	s.app.Classifier().ObserveAll(func(ae *apperror.AppError) {
		text := ae.Message()
		if hints := apperror.Suggestions(ae.Kind()); len(hints) > 0 {
			text += " – " + hints[0]
		}
		s.statusLabel.SetText(text)
	})
}

func (s *shell) refreshAll() {
	s.renderSteps()
	s.renderTemplates()
	s.updatePageView()
}
