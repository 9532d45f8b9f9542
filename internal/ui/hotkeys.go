package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// bindHotkeys attaches the keyboard surface to the window canvas.
// Modifier combinations go through AddShortcut; plain keys (Delete,
// F5) are only delivered through the typed-key hook.
func (s *shell) bindHotkeys() {
	canvas := s.win.Canvas()

	bind := func(key fyne.KeyName, mod fyne.KeyModifier, fn func()) {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			fn()
		})
	}

	ctrl := fyne.KeyModifierControl
	ctrlShift := fyne.KeyModifierControl | fyne.KeyModifierShift

	bind(fyne.KeyA, ctrlShift, s.addFiles)
	bind(fyne.KeyO, ctrl, s.addFolder)
	bind(fyne.KeyZ, ctrl, s.undo)
	bind(fyne.KeyY, ctrl, s.redo)
	bind(fyne.KeyZ, ctrlShift, s.redo)
	bind(fyne.KeyF, ctrl, s.focusSearch)
	bind(fyne.KeyR, ctrl, s.applyMethods)
	bind(fyne.KeyS, ctrl, s.saveTemplateQuick)

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete:
			s.deleteSelected()
		case fyne.KeyF5:
			s.app.Refresh()
		}
	})
}
