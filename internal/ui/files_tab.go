package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"refile/internal/rename"
)

func (s *shell) buildFilesTab() fyne.CanvasObject {
	/* -------------------- Top bar -------------------- */

	addFilesBtn := widget.NewButtonWithIcon("Add File…", theme.ContentAddIcon(), s.addFiles)
	addFolderBtn := widget.NewButtonWithIcon("Add Folder…", theme.FolderOpenIcon(), s.addFolder)
	refreshBtn := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), s.app.Refresh)

	s.searchEntry = widget.NewEntry()
	s.searchEntry.SetPlaceHolder("Search file names… (Ctrl+F)")
	s.searchEntry.OnChanged = s.app.SetSearch

	topBar := container.NewBorder(nil, nil,
		container.NewHBox(addFilesBtn, addFolderBtn, refreshBtn),
		nil,
		s.searchEntry,
	)

	/* -------------------- File list -------------------- */

	s.fileList = widget.NewList(
		func() int { return len(s.app.Filtered()) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("file name")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			files := s.app.Filtered()
			if i >= len(files) {
				return
			}
			o.(*widget.Label).SetText(filepath.Base(files[i]))
		},
	)
	s.fileList.OnSelected = func(i widget.ListItemID) {
		files := s.app.Filtered()
		if i < len(files) {
			s.selected = files[i]
		}
	}
	s.fileList.OnUnselected = func(widget.ListItemID) { s.selected = "" }

	removeBtn := widget.NewButtonWithIcon("Remove Selected", theme.DeleteIcon(), s.deleteSelected)
	extractBtn := widget.NewButtonWithIcon("Extract Pages…", theme.DocumentCreateIcon(), s.extractPages)

	left := container.NewBorder(nil, container.NewVBox(removeBtn, extractBtn), nil, nil, s.fileList)

	/* -------------------- Preview -------------------- */

	s.resultsHeader = widget.NewLabel("No files added.")
	s.resultsHeader.TextStyle = fyne.TextStyle{Bold: true}

	s.previewBox = container.NewVBox()

	s.prevBtn = widget.NewButton("Previous", func() { s.page--; s.updatePageView() })
	s.nextBtn = widget.NewButton("Next", func() { s.page++; s.updatePageView() })
	s.pageLabel = widget.NewLabel("Page 1/1")
	s.pageLabel.Alignment = fyne.TextAlignCenter

	rightTop := container.NewVBox(
		container.NewBorder(nil, nil, nil,
			container.NewHBox(s.prevBtn, s.pageLabel, s.nextBtn),
			s.resultsHeader,
		),
		widget.NewSeparator(),
	)

	/* -------------------- Actions -------------------- */

	s.dryRunCheck = widget.NewCheck("Dry run (don't rename)", nil)
	s.dryRunCheck.SetChecked(false)

	s.journalCheck = widget.NewCheck("Write undo journal", nil)
	s.journalCheck.SetChecked(s.app.Settings().JournalEnabled())

	applyBtn := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), s.applyMethods)
	undoBtn := widget.NewButtonWithIcon("Undo", theme.NavigateBackIcon(), s.undo)
	redoBtn := widget.NewButtonWithIcon("Redo", theme.NavigateNextIcon(), s.redo)

	actionsBar := container.NewBorder(nil, nil,
		container.NewHBox(s.dryRunCheck, s.journalCheck),
		container.NewHBox(undoBtn, redoBtn),
		applyBtn,
	)

	right := container.NewBorder(rightTop, actionsBar, nil, nil, container.NewVScroll(s.previewBox))

	split := container.NewHSplit(left, right)
	split.Offset = 0.32

	return container.NewBorder(topBar, nil, nil, nil, split)
}

/* -------------------- Preview rendering -------------------- */

func makeCell(text string) *widget.RichText {
	rt := widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			SizeName: theme.SizeNameCaptionText,
		},
	})
	rt.Wrapping = fyne.TextWrapWord
	return rt
}

func (s *shell) updatePageView() {
	plan, _ := s.app.Preview()
	totalMatches := len(plan)
	totalFiles := len(s.app.Files())

	pages := pageCount(totalMatches, s.pageSize)
	s.page = clamp(s.page, 0, pages-1)

	start := s.page * s.pageSize
	end := clamp(start+s.pageSize, 0, totalMatches)
	if start > totalMatches {
		start = totalMatches
	}

	if totalMatches == 0 {
		if totalFiles == 0 {
			s.resultsHeader.SetText("No files added.")
		} else {
			s.resultsHeader.SetText(fmt.Sprintf("No matches (0 of %d files).", totalFiles))
		}
	} else {
		s.resultsHeader.SetText(fmt.Sprintf("Showing %d–%d of %d matches (%d total files).", start+1, end, totalMatches, totalFiles))
	}

	s.pageLabel.SetText(fmt.Sprintf("Page %d/%d", s.page+1, pages))

	s.prevBtn.Disable()
	s.nextBtn.Disable()
	if s.page > 0 && totalMatches > 0 {
		s.prevBtn.Enable()
	}
	if s.page < pages-1 && totalMatches > 0 {
		s.nextBtn.Enable()
	}

	s.renderPreview(plan[start:end])
	if s.fileList != nil {
		s.fileList.Refresh()
	}
}

func (s *shell) renderPreview(items []rename.PlanItem) {
	s.previewBox.Objects = nil

	h1 := widget.NewLabelWithStyle("Original", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	h2 := widget.NewLabelWithStyle("Preview (after rename steps)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.previewBox.Add(container.NewGridWithColumns(2, h1, h2))
	s.previewBox.Add(widget.NewSeparator())

	for _, it := range items {
		warn := ""
		if it.Status == rename.StatusSkip && it.Reason != "unchanged" {
			warn = "  ⚠ " + it.Reason
		}
		s.previewBox.Add(container.NewGridWithColumns(2,
			makeCell(it.OldName),
			makeCell(it.NewName+warn),
		))
		s.previewBox.Add(widget.NewSeparator())
	}
	s.previewBox.Refresh()
}

/* -------------------- Actions -------------------- */

func (s *shell) addFiles() {
	d := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		s.app.AddFiles(uc.URI().Path())
	}, s.win)
	d.Show()
}

func (s *shell) addFolder() {
	dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		if err := s.app.AddFolder(uri.Path()); err != nil {
			dialog.ShowError(err, s.win)
		}
	}, s.win).Show()
}

func (s *shell) deleteSelected() {
	if s.selected == "" {
		return
	}
	s.app.DeleteSelected(s.selected)
	s.selected = ""
	s.fileList.UnselectAll()
}

func (s *shell) extractPages() {
	if s.selected == "" {
		dialog.ShowInformation("Extract pages", "Select a PDF in the file list first.", s.win)
		return
	}

	entry := widget.NewEntry()
	entry.SetPlaceHolder("e.g. 1-3,5")

	dialog.ShowForm("Extract PDF pages", "Extract", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Pages", entry)},
		func(ok bool) {
			pages := splitPageRanges(entry.Text)
			if !ok || len(pages) == 0 {
				return
			}
			dst, err := s.app.ExtractPDFPages(s.selected, pages)
			if err != nil {
				dialog.ShowError(err, s.win)
				return
			}
			dialog.ShowInformation("Extract pages", "Wrote "+filepath.Base(dst), s.win)
		},
		s.win,
	)
}

// splitPageRanges turns "1-3, 5" into the engine's page selections.
func splitPageRanges(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *shell) focusSearch() {
	s.win.Canvas().Focus(s.searchEntry)
}

func (s *shell) applyMethods() {
	if len(s.app.Filtered()) == 0 {
		dialog.ShowInformation("Nothing to do", "Add files and ensure the search matches something.", s.win)
		return
	}
	if len(s.app.Steps()) == 0 {
		dialog.ShowInformation("Nothing to do", "Add at least one rename step on the Templates tab.", s.win)
		return
	}

	_, sum := s.app.Preview()
	dryRun := s.dryRunCheck.Checked

	confirm := dialog.NewCustomConfirm("Confirm rename", "Proceed", "Cancel",
		container.NewVScroll(widget.NewLabel(confirmMessage(sum))),
		func(ok bool) {
			if !ok {
				return
			}
			items, _ := s.app.ApplyMethods(dryRun, s.journalCheck.Checked)
			title := "Apply complete"
			if dryRun {
				title = "Dry run complete"
			}
			dialog.ShowInformation(title, rename.ResultMessage(items, dryRun), s.win)
		},
		s.win,
	)
	confirm.Resize(fyne.NewSize(700, 420))
	confirm.Show()
}

func (s *shell) undo() {
	batch, failed, ok := s.app.UndoReFile()
	if !ok {
		dialog.ShowInformation("Undo", "Nothing to undo.", s.win)
		return
	}
	dialog.ShowInformation("Undo", undoMessage("Reverted", batch, failed), s.win)
}

func (s *shell) redo() {
	batch, failed, ok := s.app.RedoReFile()
	if !ok {
		dialog.ShowInformation("Redo", "Nothing to redo.", s.win)
		return
	}
	dialog.ShowInformation("Redo", undoMessage("Re-applied", batch, failed), s.win)
}

/* -------------------- Messages -------------------- */

func confirmMessage(sum rename.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are about to process %d file(s).\n", sum.Total))
	b.WriteString(fmt.Sprintf("Will rename: %d\n", sum.OkCount))
	b.WriteString(fmt.Sprintf("Unchanged (skipped): %d\n\n", sum.Unchanged))

	writeIssues(&b, "Invalid names (skipped):", sum.Invalid)
	writeIssues(&b, "Duplicate preview conflicts (skipped):", sum.Duplicate)
	writeIssues(&b, "Target already exists on disk (skipped):", sum.TargetExists)

	b.WriteString("Proceed?")
	return b.String()
}

func writeIssues(b *strings.Builder, heading string, issues []string) {
	if len(issues) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, s := range firstN(issues, 20) {
		b.WriteString(" - " + s + "\n")
	}
	if len(issues) > 20 {
		b.WriteString(fmt.Sprintf(" ... and %d more\n", len(issues)-20))
	}
	b.WriteString("\n")
}

func undoMessage(verb string, batch rename.Batch, failed int) string {
	msg := fmt.Sprintf("%s %d rename(s).", verb, len(batch.Renamed)-failed)
	if failed > 0 {
		msg += fmt.Sprintf("\n%d rename(s) failed; see the log.", failed)
	}
	return msg
}
