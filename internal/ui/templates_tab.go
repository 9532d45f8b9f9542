package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"refile/internal/rename"
)

func (s *shell) buildTemplatesTab() fyne.CanvasObject {
	/* -------------------- Steps editor -------------------- */

	s.stepsBox = container.NewVBox()

	addStepBtn := widget.NewButton("+ Add rename step", func() {
		s.app.AddStep(rename.OpReplaceText)
	})
	clearStepsBtn := widget.NewButton("Clear steps", s.app.ClearSteps)

	/* -------------------- Saved templates -------------------- */

	s.templatesBox = container.NewVBox()

	saveQuickBtn := widget.NewButtonWithIcon("Quick Save", theme.DocumentSaveIcon(), s.saveTemplateQuick)
	saveAsBtn := widget.NewButton("Save As…", s.saveTemplateAs)

	left := container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Rename pipeline", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(addStepBtn, clearStepsBtn),
		widget.NewSeparator(),
		s.stepsBox,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Tokens", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("{name}  original name without extension\n"+
			"{ext}  original extension\n"+
			"{date} or {date:2006-01-02}  file modification time\n"+
			"{size}  file size in bytes\n"+
			"{pages}  PDF page count (file or sibling PDF)\n"+
			"{n} or {n:3}  position in the batch"),
	))

	right := container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Saved templates", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(saveQuickBtn, saveAsBtn),
		widget.NewSeparator(),
		s.templatesBox,
	))

	split := container.NewHSplit(left, right)
	split.Offset = 0.55
	return split
}

func (s *shell) renderSteps() {
	if s.stepsBox == nil {
		return
	}
	s.stepsBox.Objects = nil

	steps := s.app.Steps()
	if len(steps) == 0 {
		s.stepsBox.Add(widget.NewLabel("No rename steps. Add one to preview name changes."))
		s.stepsBox.Refresh()
		return
	}

	opNames := make([]string, 0, len(rename.Ops()))
	for _, op := range rename.Ops() {
		opNames = append(opNames, string(op))
	}

	for _, step := range steps {
		step := step

		// Build the Select fully before attaching OnChanged:
		// SetSelected fires the callback synchronously, and a callback
		// that reaches UpdateStep would re-render this box from inside
		// its own construction.
		opSel := widget.NewSelect(opNames, nil)
		opSel.SetSelected(string(step.Op))
		opSel.OnChanged = func(sel string) {
			step.Op = rename.Op(sel)
			s.app.UpdateStep(step)
		}

		a := widget.NewEntry()
		a.SetText(step.A)
		b := widget.NewEntry()
		b.SetText(step.B)

		a.SetPlaceHolder("A")
		b.SetPlaceHolder("B (Replace only)")
		b.Enable()

		switch step.Op {
		case rename.OpRemoveText:
			a.SetPlaceHolder(`text to remove`)
			b.Disable()
		case rename.OpReplaceText:
			a.SetPlaceHolder(`find`)
			b.SetPlaceHolder(`replace with`)
		case rename.OpInsertBeforeExt, rename.OpAppend:
			a.SetPlaceHolder(`insert, e.g. (final) or _{date}`)
			b.Disable()
		case rename.OpPrepend:
			a.SetPlaceHolder(`prepend, e.g. NEW_ or {n:3}_`)
			b.Disable()
		case rename.OpChangeExt:
			a.SetPlaceHolder(`new ext, e.g. xyz or .xyz`)
			b.Disable()
		}

		a.OnChanged = func(v string) {
			step.A = v
			s.app.UpdateStep(step)
		}
		b.OnChanged = func(v string) {
			step.B = v
			s.app.UpdateStep(step)
		}

		remove := widget.NewButton("✕", func() {
			s.app.RemoveStep(step.ID)
		})

		s.stepsBox.Add(container.NewBorder(nil, nil, nil, remove,
			container.NewVBox(opSel, container.NewGridWithColumns(2, a, b)),
		))
		s.stepsBox.Add(widget.NewSeparator())
	}
	s.stepsBox.Refresh()
}

func (s *shell) renderTemplates() {
	if s.templatesBox == nil {
		return
	}
	s.templatesBox.Objects = nil

	list := s.app.Templates()
	if len(list) == 0 {
		s.templatesBox.Add(widget.NewLabel("No saved templates."))
		s.templatesBox.Refresh()
		return
	}

	for _, tpl := range list {
		name := tpl.Name

		loadBtn := widget.NewButton("Load", func() {
			if err := s.app.LoadTemplate(name); err != nil {
				dialog.ShowError(err, s.win)
			}
		})

		s.templatesBox.Add(container.NewBorder(nil, nil, nil, loadBtn,
			widget.NewLabel(name),
		))
	}
	s.templatesBox.Refresh()
}

func (s *shell) saveTemplateQuick() {
	if len(s.app.Steps()) == 0 {
		dialog.ShowInformation("Nothing to save", "Add at least one rename step first.", s.win)
		return
	}
	tpl, err := s.app.SaveTemplateQuick()
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	dialog.ShowInformation("Template saved", "Saved as "+tpl.Name, s.win)
}

func (s *shell) saveTemplateAs() {
	if len(s.app.Steps()) == 0 {
		dialog.ShowInformation("Nothing to save", "Add at least one rename step first.", s.win)
		return
	}

	entry := widget.NewEntry()
	entry.SetPlaceHolder("template name")

	dialog.ShowForm("Save template", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if !ok || entry.Text == "" {
				return
			}
			if _, err := s.app.SaveTemplate(entry.Text); err != nil {
				dialog.ShowError(err, s.win)
				return
			}
			s.renderTemplates()
		},
		s.win,
	)
}
