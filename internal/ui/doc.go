// Package ui builds the Fyne window: the Files, Templates, and Help
// tabs, the hotkey bindings, and the dialogs. Every control delegates
// to the app object's methods; no renaming logic lives here.
package ui
