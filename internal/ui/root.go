package ui

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/helioviewer/sunviewer/internal/config"
	"github.com/helioviewer/sunviewer/internal/events"
	"github.com/helioviewer/sunviewer/internal/model"
	"github.com/helioviewer/sunviewer/internal/provider"
)

// Viewport layout
const (
	RootViewportMinWidth  = 500
	RootViewportMinHeight = 260
	RootLogoSize          = 32
)

// RootUI represents the main window: the viewport summary, the layer
// manager and a status line.
type RootUI struct {
	window       fyne.Window
	bus          events.Bus
	layerSvc     provider.Layers
	settings     *config.Settings
	localization *Localization

	manager *LayerManager

	viewportLabel *widget.Label
	statusLabel   *widget.Label
	statusIcon    *widget.Label

	// Status auto-clear bookkeeping
	statusMutex sync.Mutex
	statusSeq   int

	unsubscribe []func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, bus events.Bus, layerSvc provider.Layers) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		bus:          bus,
		layerSvc:     layerSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.manager = NewLayerManager(bus, LayerManagerOptions{
		Localization:   localization,
		ToggleDuration: settings.GetToggleDuration(),
		RemovalPolicy:  settings.GetRemovalPolicy(),
		StartExpanded:  settings.GetStartExpanded(),
	})

	ui.setupUI()
	ui.initEvents()

	log.Printf("RootUI initialized with layer service: %v", layerSvc != nil)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	helpBtn := widget.NewButton(IconHelp, ui.onShowHelp)
	helpBtn.Importance = widget.LowImportance

	var topPanel *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(RootLogoSize, RootLogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		topPanel = container.NewBorder(nil, nil, logoImage, container.NewHBox(helpBtn, settingsBtn), ui.manager.Container())
	} else {
		log.Printf("Logo not loaded: %v", err)
		topPanel = container.NewBorder(nil, nil, nil, container.NewHBox(helpBtn, settingsBtn), ui.manager.Container())
	}

	// Viewport stand-in: the imagery itself is drawn elsewhere
	backdrop := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	backdrop.SetMinSize(fyne.NewSize(RootViewportMinWidth, RootViewportMinHeight))
	ui.viewportLabel = widget.NewLabel("")
	ui.viewportLabel.Alignment = fyne.TextAlignCenter
	viewport := container.NewStack(backdrop, container.NewCenter(ui.viewportLabel))
	ui.refreshViewport()

	ui.statusIcon = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	statusBar := container.NewHBox(ui.statusIcon, ui.statusLabel)

	content := container.NewBorder(
		topPanel,  // top
		statusBar, // bottom
		nil,       // left
		nil,       // right
		viewport,  // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	layersMenu := fyne.NewMenu(ui.localization.GetText(KeyLayers),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddEITLayer), ui.onAddEITLayer),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddLASLayer), ui.onAddLASLayer),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddEventLayer), ui.onAddEventLayer),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyRemoveLastLayer), ui.onRemoveLastLayer),
	)

	helpMenu := fyne.NewMenu(ui.localization.GetText(KeyHelp),
		fyne.NewMenuItem(ui.localization.GetText(KeyShortcuts), ui.onShowHelp),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		layersMenu,
		languageMenu,
		helpMenu,
	))
}

// initEvents connects row changes back to the layer objects
func (ui *RootUI) initEvents() {
	if ui.bus == nil {
		return
	}
	ui.unsubscribe = append(ui.unsubscribe,
		ui.bus.Subscribe(events.TopicLayerPrepared, ui.onLayerPrepared),
		ui.bus.Subscribe(events.TopicLayerRemoved, func(interface{}) { ui.refreshViewport() }),
		ui.bus.Subscribe(events.TopicInstrumentChanged, ui.onInstrumentChanged),
		ui.bus.Subscribe(events.TopicWavelengthChanged, ui.onWavelengthChanged),
		ui.bus.Subscribe(events.TopicLayerEnabledChanged, func(interface{}) { ui.refreshViewport() }),
		ui.bus.Subscribe(events.TopicOpacityRejected, ui.onOpacityRejected),
	)
}

// Close releases bus subscriptions held by the window and its layer manager
func (ui *RootUI) Close() {
	for _, unsubscribe := range ui.unsubscribe {
		unsubscribe()
	}
	ui.unsubscribe = nil
	ui.manager.Close()
}

// LayerManager returns the embedded layer manager
func (ui *RootUI) LayerManager() *LayerManager {
	return ui.manager
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.manager.RefreshTexts()
	ui.refreshViewport()
}

func (ui *RootUI) onAddEITLayer() {
	ui.addTileLayer(model.InstrumentEIT, model.Wavelength171)
}

func (ui *RootUI) onAddLASLayer() {
	ui.addTileLayer(model.InstrumentLAS, 0)
}

func (ui *RootUI) addTileLayer(instrument string, wavelength int) {
	if _, err := ui.layerSvc.AddTileLayer(instrument, wavelength, provider.DefaultOpacity); err != nil {
		log.Printf("RootUI: add %s layer: %v", instrument, err)
		ui.showStatus(err.Error(), true)
	}
}

func (ui *RootUI) onAddEventLayer() {
	if _, err := ui.layerSvc.AddMarkerLayer(); err != nil {
		log.Printf("RootUI: add marker layer: %v", err)
		ui.showStatus(err.Error(), true)
	}
}

// onRemoveLastLayer removes the most recently added live layer
func (ui *RootUI) onRemoveLastLayer() {
	all := ui.layerSvc.GetAllLayers()
	if len(all) == 0 {
		ui.showStatus(ui.localization.GetText(KeyNoLayers), false)
		return
	}
	last := all[len(all)-1]
	if err := ui.layerSvc.RemoveLayer(last.ID()); err != nil {
		log.Printf("RootUI: remove layer %s: %v", last.ID(), err)
		ui.showStatus(err.Error(), true)
	}
}

func (ui *RootUI) onLayerPrepared(payload interface{}) {
	if p, ok := payload.(model.Provider); ok {
		ui.showStatus(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyLayerAdded), describeProvider(p, ui.localization)), false)
	}
	ui.refreshViewport()
}

// tileLayerFor resolves a row id to the live tile layer behind it
func (ui *RootUI) tileLayerFor(id int) (*provider.TileLayer, bool) {
	state, err := ui.manager.State(id)
	if err != nil {
		log.Printf("RootUI: %v", err)
		return nil, false
	}
	layer, ok := ui.layerSvc.GetLayer(state.ProviderID)
	if !ok {
		log.Printf("RootUI: row %d refers to layer %s which is gone", id, state.ProviderID)
		return nil, false
	}
	tile, ok := layer.(*provider.TileLayer)
	return tile, ok
}

func (ui *RootUI) onInstrumentChanged(payload interface{}) {
	change, ok := payload.(events.InstrumentChange)
	if !ok {
		return
	}
	if tile, ok := ui.tileLayerFor(change.ID); ok {
		tile.SetInstrument(change.Instrument)
		// the row has already settled the wavelength for the new instrument
		if state, err := ui.manager.State(change.ID); err == nil {
			tile.SetWavelength(state.Wavelength)
		}
	}
	ui.refreshViewport()
}

func (ui *RootUI) onWavelengthChanged(payload interface{}) {
	change, ok := payload.(events.WavelengthChange)
	if !ok {
		return
	}
	if tile, ok := ui.tileLayerFor(change.ID); ok {
		tile.SetWavelength(change.Wavelength)
	}
	ui.refreshViewport()
}

func (ui *RootUI) onOpacityRejected(payload interface{}) {
	rejected, ok := payload.(events.OpacityInputError)
	if !ok {
		return
	}
	ui.showStatus(fmt.Sprintf("%s: %q", ui.localization.GetText(KeyInvalidOpacity), rejected.Input), true)
}

// refreshViewport lists the enabled layers, bottom to top
func (ui *RootUI) refreshViewport() {
	if ui.viewportLabel == nil {
		return
	}
	var parts []string
	for _, id := range ui.manager.IDs() {
		state, err := ui.manager.State(id)
		if err != nil || !state.Enabled {
			continue
		}
		parts = append(parts, describeState(state, ui.localization))
	}
	if len(parts) == 0 {
		ui.viewportLabel.SetText(IconSun)
		return
	}
	ui.viewportLabel.SetText(IconSun + " " + strings.Join(parts, MiddleDotSeparator))
}

func describeState(s model.LayerState, l *Localization) string {
	switch s.Kind {
	case model.KindTile:
		if model.HasWavelength(s.Instrument) && s.Wavelength > 0 {
			return fmt.Sprintf("%s %d (%d%s)", s.Instrument, s.Wavelength, s.Opacity, PercentSuffix)
		}
		return fmt.Sprintf("%s (%d%s)", s.Instrument, s.Opacity, PercentSuffix)
	case model.KindMarker:
		return l.GetText(KeyEvents)
	default:
		return l.GetText(KeyUnknownLayer)
	}
}

func describeProvider(p model.Provider, l *Localization) string {
	if src, ok := p.(model.TileSource); ok {
		return src.Instrument()
	}
	if kind, _ := model.ResolveKind(p.Type()); kind == model.KindMarker {
		return l.GetText(KeyEvents)
	}
	return l.GetText(KeyUnknownLayer)
}

// showStatus displays message in the status line and clears it after
// StatusAutoClear unless a newer message replaced it.
func (ui *RootUI) showStatus(message string, warning bool) {
	ui.statusMutex.Lock()
	ui.statusSeq++
	seq := ui.statusSeq
	ui.statusMutex.Unlock()

	if warning {
		ui.statusIcon.SetText(IconWarning)
	} else {
		ui.statusIcon.SetText("")
	}
	ui.statusLabel.SetText(message)

	time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() {
			ui.statusMutex.Lock()
			current := ui.statusSeq == seq
			ui.statusMutex.Unlock()
			if current {
				ui.statusIcon.SetText("")
				ui.statusLabel.SetText("")
			}
		})
	})
}

// Status returns the text of the status line
func (ui *RootUI) Status() string {
	return ui.statusLabel.Text
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running UI
func (ui *RootUI) applySettings() {
	ui.manager.SetToggleDuration(ui.settings.GetToggleDuration())
	ui.manager.SetRemovalPolicy(ui.settings.GetRemovalPolicy())
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.showStatus(ui.localization.GetText(KeySettingsSaved), false)
}

// onShowHelp shows the shortcut reference
func (ui *RootUI) onShowHelp() {
	ShowHelpDialog(ui.window, ui.localization)
}
