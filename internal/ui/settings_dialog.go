package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/helioviewer/sunviewer/internal/config"
	"github.com/helioviewer/sunviewer/internal/layers"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	durationEntry  *widget.Entry
	policySelect   *widget.Select
	expandedCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization) *SettingsDialog {
	if localization == nil {
		localization = NewLocalization()
	}
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, window, localization)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Slide duration
	sd.durationEntry = widget.NewEntry()
	sd.durationEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxToggleDurationMs))

	// Removal policy
	policyOptions := []string{}
	for _, policy := range sd.settings.GetRemovalPolicyOptions() {
		policyOptions = append(policyOptions, string(policy))
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.expandedCheck = widget.NewCheck(sd.localization.GetText(KeyStartExpanded), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyToggleDuration)+":"),
		sd.durationEntry,

		widget.NewLabel(sd.localization.GetText(KeyRemovalPolicy)+":"),
		sd.policySelect,

		sd.expandedCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.durationEntry.SetText(strconv.Itoa(int(sd.settings.GetToggleDuration() / time.Millisecond)))
	sd.policySelect.SetSelected(string(sd.settings.GetRemovalPolicy()))
	sd.expandedCheck.SetChecked(sd.settings.GetStartExpanded())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Unparseable durations keep the previous value
	if durationStr := sd.durationEntry.Text; durationStr != "" {
		if ms, err := strconv.Atoi(durationStr); err == nil {
			sd.settings.SetToggleDuration(ms)
		}
	}

	if sd.policySelect.Selected != "" {
		sd.settings.SetRemovalPolicy(layers.RemovalPolicy(sd.policySelect.Selected))
	}

	sd.settings.SetStartExpanded(sd.expandedCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
