package ui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"refile/internal/app"
	"refile/internal/config"
	"refile/internal/pkg/apperror"
	"refile/internal/rename"
	"refile/internal/templates"
)

func testShell(t *testing.T) (*shell, *app.App) {
	t.Helper()
	test.NewApp()

	settings, err := config.Load("")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	classifier := apperror.NewClassifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := templates.NewStore(filepath.Join(t.TempDir(), "templates"))
	a := app.New(settings, classifier, store, rename.NewHistory(0))

	win := test.NewWindow(nil)
	t.Cleanup(win.Close)

	s := &shell{app: a, win: win, pageSize: settings.PageSize()}
	win.SetContent(s.buildFilesTab())
	_ = s.buildTemplatesTab()
	s.statusLabel = widget.NewLabel("")
	s.observeErrors()
	a.OnChange(s.refreshAll)
	s.refreshAll()

	return s, a
}

func TestSearchEntryFiltersFiles(t *testing.T) {
	s, a := testShell(t)

	dir := t.TempDir()
	for _, n := range []string{"invoice.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := a.AddFolder(dir); err != nil {
		t.Fatalf("add folder: %v", err)
	}

	test.Type(s.searchEntry, "invoice")
	if got := len(a.Filtered()); got != 1 {
		t.Fatalf("filtered %d files, want 1", got)
	}
	if !strings.Contains(s.resultsHeader.Text, "1") {
		t.Fatalf("header %q does not reflect the filter", s.resultsHeader.Text)
	}
}

func TestStatusLineShowsClassifiedErrors(t *testing.T) {
	s, a := testShell(t)

	a.Classifier().Classify(os.ErrPermission)
	if s.statusLabel.Text == "" {
		t.Fatal("expected the status line to show the classified error")
	}
	if !strings.Contains(s.statusLabel.Text, "permission") {
		t.Fatalf("status %q does not mention the failure", s.statusLabel.Text)
	}
}

func TestStepsEditorRendersPipeline(t *testing.T) {
	s, a := testShell(t)

	// Each AddStep re-renders the editor through the change callback,
	// so this also checks the rebuild settles with steps present.
	a.AddStep(rename.OpReplaceText)
	a.AddStep(rename.OpPrepend)

	// One row plus one separator per step.
	if got := len(s.stepsBox.Objects); got != 4 {
		t.Fatalf("steps box has %d objects, want 4", got)
	}

	steps := a.Steps()
	steps[0].A = "draft"
	a.UpdateStep(steps[0])

	if got := a.Steps()[0].A; got != "draft" {
		t.Fatalf("step A = %q after update, want %q", got, "draft")
	}
	if got := len(s.stepsBox.Objects); got != 4 {
		t.Fatalf("steps box has %d objects after update, want 4", got)
	}
}

func TestConfirmMessageListsIssues(t *testing.T) {
	sum := rename.Summary{
		Total:     3,
		OkCount:   1,
		Unchanged: 1,
		Invalid:   []string{"a.txt → b?.txt (invalid characters)"},
	}

	msg := confirmMessage(sum)
	for _, want := range []string{"3 file(s)", "Will rename: 1", "Invalid names", "Proceed?"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSplitPageRanges(t *testing.T) {
	got := splitPageRanges(" 1-3, 5 ,, 8 ")
	want := []string{"1-3", "5", "8"}
	if len(got) != len(want) {
		t.Fatalf("splitPageRanges = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitPageRanges = %v, want %v", got, want)
		}
	}
	if got := splitPageRanges("  "); len(got) != 0 {
		t.Fatalf("expected no selections for blank input, got %v", got)
	}
}

func TestPagingHelpers(t *testing.T) {
	if got := pageCount(0, 10); got != 1 {
		t.Fatalf("pageCount(0, 10) = %d", got)
	}
	if got := pageCount(21, 10); got != 3 {
		t.Fatalf("pageCount(21, 10) = %d", got)
	}
	if got := pageCount(5, 0); got != 1 {
		t.Fatalf("pageCount(5, 0) = %d", got)
	}
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp(5, 0, 3) = %d", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp(-1, 0, 3) = %d", got)
	}
	if got := firstN([]int{1, 2, 3}, 2); len(got) != 2 {
		t.Fatalf("firstN = %v", got)
	}
}

func TestHelpTabListsEveryHotkey(t *testing.T) {
	if len(hotkeyRows) != 9 {
		t.Fatalf("help table lists %d hotkeys, want 9", len(hotkeyRows))
	}
}
