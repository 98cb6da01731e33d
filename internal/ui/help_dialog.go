package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Shortcut is one entry of the help reference
type Shortcut struct {
	Keys        string
	Description string
}

// KeyboardShortcuts lists the viewer's keyboard shortcuts
var KeyboardShortcuts = []Shortcut{
	{"c", "Center the screen."},
	{"d", "Display detailed feature/event labels."},
	{"m", "Toggle mouse coordinates display."},
	{"+", "Zoom-in once."},
	{"-", "Zoom-out once."},
	{"←", "Pan left."},
	{"↑", "Pan upward."},
	{"→", "Pan right."},
	{"↓", "Pan downward."},
}

// MouseShortcuts lists the viewer's mouse shortcuts
var MouseShortcuts = []Shortcut{
	{"Double-click", "Zoom in."},
	{"Shift + Double-click", "Zoom out."},
	{"Mouse-wheel up", "Zoom in."},
	{"Mouse-wheel down", "Zoom out."},
}

// NewHelpContent builds the static shortcut reference
func NewHelpContent() fyne.CanvasObject {
	return container.NewVBox(
		sectionTitle("Keyboard Shortcuts:"),
		shortcutTable(KeyboardShortcuts),
		widget.NewSeparator(),
		sectionTitle("Mouse Shortcuts:"),
		shortcutTable(MouseShortcuts),
	)
}

// ShowHelpDialog displays the shortcut reference over window
func ShowHelpDialog(window fyne.Window, localization *Localization) {
	if localization == nil {
		localization = NewLocalization()
	}
	d := dialog.NewCustom(localization.GetText(KeyShortcuts), "OK", container.NewVScroll(NewHelpContent()), window)
	d.Resize(fyne.NewSize(HelpDialogWidth, HelpDialogHeight))
	d.Show()
}

func sectionTitle(text string) fyne.CanvasObject {
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

func shortcutTable(shortcuts []Shortcut) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(shortcuts)*2)
	for _, s := range shortcuts {
		keys := widget.NewLabel(s.Keys)
		keys.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		objects = append(objects, keys, widget.NewLabel(s.Description))
	}
	return container.New(layout.NewFormLayout(), objects...)
}
