package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// hotkeyRows is the help-tab table; keep it in sync with bindHotkeys.
var hotkeyRows = [][2]string{
	{"Ctrl+Shift+A", "Add file"},
	{"Ctrl+O", "Add folder"},
	{"Ctrl+Z", "Undo last rename batch"},
	{"Ctrl+Y / Ctrl+Shift+Z", "Redo"},
	{"Delete", "Remove selected file from the list"},
	{"Ctrl+F", "Focus search"},
	{"F5", "Refresh file list"},
	{"Ctrl+R", "Apply rename steps"},
	{"Ctrl+S", "Quick-save current steps as a template"},
}

func (s *shell) buildHelpTab() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, r := range hotkeyRows {
		key := widget.NewLabelWithStyle(r[0], fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		rows.Add(container.NewGridWithColumns(2, key, widget.NewLabel(r[1])))
	}

	usage := widget.NewLabel(
		"1. Add files or a folder on the Files tab.\n" +
			"2. Build a rename pipeline on the Templates tab; the preview\n" +
			"   updates as you type.\n" +
			"3. Check the preview for conflict warnings, then Apply.\n" +
			"4. Applied batches can be undone (Ctrl+Z) and redone (Ctrl+Y).\n\n" +
			"Removing a file from the list never touches the disk; only\n" +
			"Apply renames files.")

	return container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Hotkeys", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		rows,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Usage", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		usage,
	))
}
