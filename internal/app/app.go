// Package app holds the application object behind the GUI: the file
// set, the search filter, the rename pipeline, and the operations the
// window's controls and hotkeys delegate to.
package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"refile/internal/config"
	"refile/internal/journal"
	"refile/internal/pkg/apperror"
	"refile/internal/pkg/pdfmeta"
	"refile/internal/pkg/registry"
	"refile/internal/rename"
	"refile/internal/templates"
)

// Service keys for wiring the application from a registry.
const (
	ServiceSettings   = "settings"
	ServiceClassifier = "classifier"
	ServiceTemplates  = "templates"
	ServiceHistory    = "history"
)

// App is the application root. Not safe for concurrent use; every
// method runs on the GUI event loop.
type App struct {
	logger     *slog.Logger
	settings   *config.Settings
	classifier *apperror.Classifier
	templates  *templates.Store
	history    *rename.History

	journalPath string

	folder     string
	files      []string
	filtered   []string
	search     string
	steps      []rename.Step
	nextStepID int

	onChange func()
}

// New assembles the application from its dependencies.
func New(settings *config.Settings, classifier *apperror.Classifier, store *templates.Store, history *rename.History) *App {
	return &App{
		logger:      slog.Default().With(slog.String("component", "app")),
		settings:    settings,
		classifier:  classifier,
		templates:   store,
		history:     history,
		journalPath: filepath.Join(filepath.Dir(settings.TemplatesDir()), "journal.csv"),
	}
}

// FromRegistry resolves the application's dependencies from r.
func FromRegistry(r *registry.Registry) (*App, error) {
	settings, err := registry.Resolve[*config.Settings](r, ServiceSettings)
	if err != nil {
		return nil, err
	}
	classifier, err := registry.Resolve[*apperror.Classifier](r, ServiceClassifier)
	if err != nil {
		return nil, err
	}
	store, err := registry.Resolve[*templates.Store](r, ServiceTemplates)
	if err != nil {
		return nil, err
	}
	history, err := registry.Resolve[*rename.History](r, ServiceHistory)
	if err != nil {
		return nil, err
	}
	return New(settings, classifier, store, history), nil
}

// OnChange registers the UI refresh hook, invoked after any operation
// that changes visible state.
func (a *App) OnChange(fn func()) {
	a.onChange = fn
}

func (a *App) notify() {
	if a.onChange != nil {
		a.onChange()
	}
}

// Settings returns the loaded settings.
func (a *App) Settings() *config.Settings { return a.settings }

// Classifier returns the error classifier so the UI can observe
// classified failures.
func (a *App) Classifier() *apperror.Classifier { return a.classifier }

// Folder returns the most recently added folder.
func (a *App) Folder() string { return a.folder }

// Files returns every tracked file.
func (a *App) Files() []string { return a.files }

// Filtered returns the tracked files matching the current search.
func (a *App) Filtered() []string { return a.filtered }

// Search returns the current search query.
func (a *App) Search() string { return a.search }

// AddFiles adds paths to the tracked set, skipping duplicates,
// directories, and paths that fail to stat (classified, not fatal).
// It returns the number of files added.
func (a *App) AddFiles(paths ...string) int {
	known := make(map[string]bool, len(a.files))
	for _, p := range a.files {
		known[p] = true
	}

	added := 0
	for _, p := range paths {
		p = filepath.Clean(p)
		if known[p] {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			a.classifier.Classify(err, apperror.WithDetail("path", p))
			continue
		}
		if info.IsDir() {
			continue
		}
		a.files = append(a.files, p)
		known[p] = true
		added++
	}

	if added > 0 {
		a.refilter()
		a.notify()
	}
	return added
}

// AddFolder adds every file directly inside path and remembers the
// folder for Refresh.
func (a *App) AddFolder(path string) error {
	files, err := rename.ListFiles(path)
	if err != nil {
		return a.classifier.Classify(err, apperror.WithDetail("folder", path))
	}

	a.folder = path
	a.AddFiles(files...)
	a.refilter()
	a.notify()
	return nil
}

// Refresh drops tracked files that no longer exist and re-lists the
// remembered folder.
func (a *App) Refresh() {
	kept := a.files[:0]
	for _, p := range a.files {
		if _, err := os.Stat(p); err == nil {
			kept = append(kept, p)
		}
	}
	a.files = append([]string(nil), kept...)

	if a.folder != "" {
		if files, err := rename.ListFiles(a.folder); err == nil {
			a.AddFiles(files...)
		} else {
			a.classifier.Classify(err, apperror.WithDetail("folder", a.folder))
		}
	}

	a.refilter()
	a.notify()
}

// DeleteSelected removes paths from the tracked set. The files on
// disk are untouched.
func (a *App) DeleteSelected(paths ...string) {
	if len(paths) == 0 {
		return
	}
	drop := make(map[string]bool, len(paths))
	for _, p := range paths {
		drop[p] = true
	}

	kept := a.files[:0]
	for _, p := range a.files {
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	a.files = append([]string(nil), kept...)
	a.refilter()
	a.notify()
}

// ClearFiles empties the tracked set.
func (a *App) ClearFiles() {
	a.folder = ""
	a.files = nil
	a.refilter()
	a.notify()
}

// SetSearch updates the search query and refilters the visible list.
func (a *App) SetSearch(query string) {
	if a.search == query {
		return
	}
	a.search = query
	a.refilter()
	a.notify()
}

func (a *App) refilter() {
	a.filtered = rename.FilterFiles(a.files, a.search)
}

// Steps returns the current rename pipeline.
func (a *App) Steps() []rename.Step { return a.steps }

// AddStep appends a step with a fresh ID and returns it.
func (a *App) AddStep(op rename.Op) rename.Step {
	a.nextStepID++
	s := rename.Step{ID: a.nextStepID, Op: op}
	a.steps = append(a.steps, s)
	a.notify()
	return s
}

// UpdateStep replaces the stored step with the same ID.
func (a *App) UpdateStep(s rename.Step) {
	for i := range a.steps {
		if a.steps[i].ID == s.ID {
			a.steps[i] = s
			break
		}
	}
	a.notify()
}

// RemoveStep deletes the step with the given ID.
func (a *App) RemoveStep(id int) {
	kept := a.steps[:0]
	for _, s := range a.steps {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	a.steps = append([]rename.Step(nil), kept...)
	a.notify()
}

// ClearSteps empties the pipeline.
func (a *App) ClearSteps() {
	a.steps = nil
	a.notify()
}

// SetSteps replaces the pipeline, re-numbering the step IDs.
func (a *App) SetSteps(steps []rename.Step) {
	a.steps = make([]rename.Step, len(steps))
	copy(a.steps, steps)
	for i := range a.steps {
		a.nextStepID++
		a.steps[i].ID = a.nextStepID
	}
	a.notify()
}

// metaFor supplies token metadata: filesystem stat plus a lazy page
// count read from the file itself when it is a PDF, or from a sibling
// PDF otherwise.
func (a *App) metaFor(path string, index int) rename.FileMeta {
	meta := rename.StatMeta(path, index)
	meta.Pages = func() (int, bool) {
		pdfPath := path
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			sibling, ok := pdfmeta.FindSiblingPDF(path)
			if !ok {
				return 0, false
			}
			pdfPath = sibling
		}

		binding := pdfmeta.Probe()
		if !binding.Available {
			return 0, false
		}
		n, err := binding.PageCount(pdfPath)
		if err != nil {
			a.classifier.Classify(err,
				apperror.WithKind(apperror.KindConversion),
				apperror.WithDetail("path", pdfPath))
			return 0, false
		}
		return n, true
	}
	return meta
}

// ExtractPDFPages writes the selected pages of src to a sibling
// "<name>_pages.pdf" file and returns the new path. Page selections
// use the engine's range syntax, e.g. "1-3" or "5". Failures classify
// as conversion errors.
func (a *App) ExtractPDFPages(src string, pages []string) (string, error) {
	binding := pdfmeta.Probe()
	if !binding.Available || binding.ExtractPages == nil {
		err := errors.New("no PDF engine with page extraction support")
		return "", a.classifier.Classify(err, apperror.WithKind(apperror.KindConversion))
	}

	dst := strings.TrimSuffix(src, filepath.Ext(src)) + "_pages.pdf"
	if err := binding.ExtractPages(src, dst, pages); err != nil {
		return "", a.classifier.Classify(err,
			apperror.WithKind(apperror.KindConversion),
			apperror.WithDetail("src", src),
			apperror.WithDetail("pages", strings.Join(pages, ",")))
	}

	a.logger.Info("extracted pages",
		slog.String("src", src),
		slog.String("dst", dst))
	a.Refresh()
	return dst, nil
}

// Preview builds the rename plan for the currently filtered files.
func (a *App) Preview() ([]rename.PlanItem, rename.Summary) {
	return rename.BuildPlan(a.filtered, a.steps, a.metaFor)
}

// ApplyMethods executes the current pipeline over the filtered files.
// With dryRun set nothing is renamed; otherwise the applied batch is
// recorded for undo and, when writeJournal is set, appended to the
// undo journal.
func (a *App) ApplyMethods(dryRun, writeJournal bool) ([]rename.PlanItem, rename.Summary) {
	plan, sum := a.Preview()

	if dryRun {
		return rename.MarkDryRun(plan), sum
	}

	applied := rename.ApplyPlan(plan, a.classifier)
	batch := rename.NewBatch(applied)
	a.history.Record(batch)

	if writeJournal && len(batch.Renamed) > 0 {
		if err := journal.Append(a.journalPath, batch, applied); err != nil {
			a.classifier.Classify(err, apperror.WithDetail("journal", a.journalPath))
		}
	}

	a.Refresh()
	return applied, sum
}

// CanUndo reports whether an applied batch can be reversed.
func (a *App) CanUndo() bool { return a.history.CanUndo() }

// CanRedo reports whether an undone batch can be replayed.
func (a *App) CanRedo() bool { return a.history.CanRedo() }

// UndoReFile reverses the most recent applied batch.
func (a *App) UndoReFile() (rename.Batch, int, bool) {
	b, failed, ok := a.history.Undo(a.classifier)
	if ok {
		a.Refresh()
	}
	return b, failed, ok
}

// RedoReFile replays the most recently undone batch.
func (a *App) RedoReFile() (rename.Batch, int, bool) {
	b, failed, ok := a.history.Redo(a.classifier)
	if ok {
		a.Refresh()
	}
	return b, failed, ok
}

// SaveTemplateQuick stores the current pipeline under a timestamped
// name.
func (a *App) SaveTemplateQuick() (templates.Template, error) {
	tpl, err := a.templates.SaveQuick(a.steps)
	if err != nil {
		a.classifier.Classify(err, apperror.WithKind(apperror.KindValidation))
		return templates.Template{}, err
	}
	a.logger.Info("template saved", slog.String("name", tpl.Name))
	return tpl, nil
}

// SaveTemplate stores the current pipeline under name.
func (a *App) SaveTemplate(name string) (templates.Template, error) {
	tpl := templates.Template{Name: name, Steps: a.steps}
	if _, err := a.templates.Save(tpl); err != nil {
		a.classifier.Classify(err, apperror.WithKind(apperror.KindValidation))
		return templates.Template{}, err
	}
	return tpl, nil
}

// Templates lists the stored templates.
func (a *App) Templates() []templates.Template {
	list, err := a.templates.List()
	if err != nil {
		a.classifier.Classify(err, apperror.WithDetail("dir", a.settings.TemplatesDir()))
		return nil
	}
	return list
}

// LoadTemplate replaces the pipeline with the named template's steps.
func (a *App) LoadTemplate(name string) error {
	tpl, err := a.templates.Load(name)
	if err != nil {
		return a.classifier.Classify(err, apperror.WithDetail("template", name))
	}
	a.SetSteps(tpl.Steps)
	return nil
}
