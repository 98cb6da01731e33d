package ui

import (
	"image/color"
	"log"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/helioviewer/sunviewer/internal/events"
	"github.com/helioviewer/sunviewer/internal/model"
)

// fixedWidth pins obj to a column width using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// LayerRow is one row of the layer table. The controls depend on the layer
// kind; every row carries an enabled box and a hidden id field.
type LayerRow struct {
	widget.BaseWidget

	id           int
	kind         model.LayerKind
	provider     model.Provider
	bus          events.Bus
	localization *Localization

	// Tile controls
	instrumentSelect *widget.Select
	wavelengthSelect *widget.Select
	opacityEntry     *widget.Entry

	// Marker / unknown label
	placeholder *widget.Label

	enabledCheck *widget.Check
	idField      *widget.Label

	cells []fyne.CanvasObject

	// Callbacks
	onStateChange func(id int, fn func(*model.LayerState))

	lastErr error
}

// NewLayerRow builds the row for provider p registered under id. A nil or
// unrecognized provider yields an "Unknown Layer" row.
func NewLayerRow(id int, p model.Provider, bus events.Bus, localization *Localization) *LayerRow {
	if localization == nil {
		localization = NewLocalization()
	}

	r := &LayerRow{
		id:           id,
		kind:         model.KindUnknown,
		provider:     p,
		bus:          bus,
		localization: localization,
	}

	if p == nil {
		log.Printf("Warning: NewLayerRow called with nil provider for id %d", id)
	} else {
		kind, err := model.ResolveKind(p.Type())
		if err != nil {
			log.Printf("LayerRow %d: %v, rendering placeholder", id, err)
		}
		r.kind = kind
	}

	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetStateCallback sets the callback used to mirror control changes into the
// registry's state record.
func (r *LayerRow) SetStateCallback(onStateChange func(id int, fn func(*model.LayerState))) {
	r.onStateChange = onStateChange
}

// ID returns the row's layer id
func (r *LayerRow) ID() int {
	return r.id
}

// Kind returns the layer kind the row was built for
func (r *LayerRow) Kind() model.LayerKind {
	return r.kind
}

// LastError returns the problem with the most recent opacity input, if any
func (r *LayerRow) LastError() error {
	return r.lastErr
}

// WavelengthVisible reports whether the wavelength selector is shown
func (r *LayerRow) WavelengthVisible() bool {
	return r.wavelengthSelect != nil && r.wavelengthSelect.Visible()
}

// HasControls reports whether the row has instrument/wavelength/opacity controls
func (r *LayerRow) HasControls() bool {
	return r.instrumentSelect != nil
}

// Label returns the merged-cell text for marker and unknown rows
func (r *LayerRow) Label() string {
	if r.placeholder == nil {
		return ""
	}
	return r.placeholder.Text
}

// Enabled reports the state of the enabled box
func (r *LayerRow) Enabled() bool {
	return r.enabledCheck.Checked
}

// createUI creates the controls for the row's kind
func (r *LayerRow) createUI() {
	switch r.kind {
	case model.KindTile:
		r.cells = append(r.cells,
			fixedWidth(InstrumentColumnWidth, r.createInstrumentControl()),
			fixedWidth(WavelengthColumnWidth, r.createWavelengthControl()),
			fixedWidth(OpacityColumnWidth, r.createOpacityControl()),
		)
	case model.KindMarker:
		r.placeholder = widget.NewLabel(r.localization.GetText(KeyEvents))
		r.cells = append(r.cells, fixedWidth(mergedColumnWidth(), r.placeholder))
	default:
		r.placeholder = widget.NewLabel(r.localization.GetText(KeyUnknownLayer))
		r.cells = append(r.cells, fixedWidth(mergedColumnWidth(), r.placeholder))
	}

	r.cells = append(r.cells, fixedWidth(EnabledColumnWidth, r.createEnabledBox()))

	r.idField = widget.NewLabel(strconv.Itoa(r.id))
	r.idField.Hide()
	r.cells = append(r.cells, r.idField)
}

// refreshTexts re-reads the merged-cell label after a language change
func (r *LayerRow) refreshTexts() {
	if r.placeholder == nil {
		return
	}
	if r.kind == model.KindMarker {
		r.placeholder.SetText(r.localization.GetText(KeyEvents))
	} else {
		r.placeholder.SetText(r.localization.GetText(KeyUnknownLayer))
	}
}

// mergedColumnWidth spans the instrument, wavelength and opacity columns
func mergedColumnWidth() float32 {
	return InstrumentColumnWidth + WavelengthColumnWidth + OpacityColumnWidth
}

func (r *LayerRow) createInstrumentControl() fyne.CanvasObject {
	r.instrumentSelect = widget.NewSelect(model.Instruments(), nil)
	if src, ok := r.provider.(model.TileSource); ok {
		r.instrumentSelect.SetSelected(src.Instrument())
	}
	// Assigned after the initial selection so building the row publishes nothing
	r.instrumentSelect.OnChanged = r.onInstrumentChange
	return r.instrumentSelect
}

func (r *LayerRow) createWavelengthControl() fyne.CanvasObject {
	r.wavelengthSelect = widget.NewSelect(model.WavelengthOptions(), nil)

	instrument := ""
	if src, ok := r.provider.(model.TileSource); ok {
		instrument = src.Instrument()
		if model.HasWavelength(instrument) {
			r.wavelengthSelect.SetSelected(strconv.Itoa(src.Wavelength()))
		}
	}
	if !model.HasWavelength(instrument) {
		r.wavelengthSelect.Hide()
	}

	r.wavelengthSelect.OnChanged = r.onWavelengthChange
	return r.wavelengthSelect
}

func (r *LayerRow) createOpacityControl() fyne.CanvasObject {
	r.opacityEntry = widget.NewEntry()
	r.opacityEntry.SetText(strconv.Itoa(model.OpacityPercent(r.provider.Opacity())))
	r.opacityEntry.OnSubmitted = r.onOpacityChange
	return container.NewBorder(nil, nil, nil, widget.NewLabel(PercentSuffix), r.opacityEntry)
}

func (r *LayerRow) createEnabledBox() fyne.CanvasObject {
	r.enabledCheck = widget.NewCheck("", nil)
	r.enabledCheck.SetChecked(true)
	r.enabledCheck.OnChanged = r.onEnabledChange
	return r.enabledCheck
}

// onInstrumentChange toggles the wavelength cell and announces the change
func (r *LayerRow) onInstrumentChange(instrument string) {
	if model.HidesWavelength(instrument) {
		r.wavelengthSelect.Hide()
	} else {
		r.wavelengthSelect.Show()
	}

	wavelength := 0
	if !model.HidesWavelength(instrument) {
		wavelength = r.selectedWavelength()
	}
	r.updateState(func(s *model.LayerState) {
		s.Instrument = instrument
		s.Wavelength = wavelength
	})

	log.Printf("LayerRow %d: instrument changed to %s", r.id, instrument)
	r.publish(events.TopicInstrumentChanged, events.InstrumentChange{ID: r.id, Instrument: instrument})
}

// selectedWavelength reads the wavelength cell, falling back to 171 and
// showing it when nothing usable is selected. The fallback does not fire
// OnChanged.
func (r *LayerRow) selectedWavelength() int {
	if r.wavelengthSelect == nil {
		return model.Wavelength171
	}
	if wavelength, err := strconv.Atoi(r.wavelengthSelect.Selected); err == nil {
		return wavelength
	}
	r.wavelengthSelect.Selected = strconv.Itoa(model.Wavelength171)
	r.wavelengthSelect.Refresh()
	return model.Wavelength171
}

// onWavelengthChange announces a wavelength selection
func (r *LayerRow) onWavelengthChange(value string) {
	wavelength, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("LayerRow %d: ignoring wavelength %q: %v", r.id, value, err)
		return
	}

	r.updateState(func(s *model.LayerState) { s.Wavelength = wavelength })

	log.Printf("LayerRow %d: wavelength changed to %d", r.id, wavelength)
	r.publish(events.TopicWavelengthChanged, events.WavelengthChange{ID: r.id, Wavelength: wavelength})
}

// onOpacityChange forwards the parsed percentage to the layer as a fraction.
// The value is forwarded even when the input is malformed or out of range;
// the problem is recorded and published instead.
func (r *LayerRow) onOpacityChange(text string) {
	percent, err := model.ParsePercent(text)
	r.provider.SetOpacity(percent / model.MaxPercent)

	if !math.IsNaN(percent) {
		mirrored := int(math.Max(model.MinPercent, math.Min(model.MaxPercent, percent)))
		r.updateState(func(s *model.LayerState) { s.Opacity = mirrored })
	}

	r.lastErr = err
	if err != nil {
		log.Printf("LayerRow %d: opacity input %q forwarded as %v: %v", r.id, text, percent, err)
		r.publish(events.TopicOpacityRejected, events.OpacityInputError{
			ID:    r.id,
			Input: text,
			Value: percent,
			Err:   err,
		})
	}
}

// onEnabledChange shows or hides the layer and locks the other inputs
func (r *LayerRow) onEnabledChange(enabled bool) {
	if r.provider != nil {
		r.provider.SetVisible(enabled)
	}

	for _, input := range r.inputs() {
		if enabled {
			input.Enable()
		} else {
			input.Disable()
		}
	}

	r.updateState(func(s *model.LayerState) { s.Enabled = enabled })
	r.publish(events.TopicLayerEnabledChanged, events.EnabledChange{ID: r.id, Enabled: enabled})
}

// inputs returns every control except the enabled box
func (r *LayerRow) inputs() []fyne.Disableable {
	var inputs []fyne.Disableable
	if r.instrumentSelect != nil {
		inputs = append(inputs, r.instrumentSelect)
	}
	if r.wavelengthSelect != nil {
		inputs = append(inputs, r.wavelengthSelect)
	}
	if r.opacityEntry != nil {
		inputs = append(inputs, r.opacityEntry)
	}
	return inputs
}

func (r *LayerRow) updateState(fn func(*model.LayerState)) {
	if r.onStateChange != nil {
		r.onStateChange(r.id, fn)
	}
}

func (r *LayerRow) publish(topic events.Topic, payload interface{}) {
	if r.bus == nil {
		log.Printf("LayerRow %d: no bus, dropping %s", r.id, topic)
		return
	}
	r.bus.Publish(topic, payload)
}

// CreateRenderer creates the widget renderer
func (r *LayerRow) CreateRenderer() fyne.WidgetRenderer {
	return &layerRowRenderer{row: r}
}

// layerRowRenderer renders the layer row widget
type layerRowRenderer struct {
	row    *LayerRow
	layout *fyne.Container
}

// Layout arranges the components
func (lr *layerRowRenderer) Layout(size fyne.Size) {
	if lr.layout == nil {
		lr.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	lr.layout.Resize(size)
}

// MinSize returns the minimum size
func (lr *layerRowRenderer) MinSize() fyne.Size {
	if lr.layout == nil {
		lr.createLayout()
	}
	min := lr.layout.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, RowMinWidth), fyne.Max(min.Height, RowMinHeight))
}

// Refresh refreshes the renderer
func (lr *layerRowRenderer) Refresh() {
	if lr.layout == nil {
		lr.createLayout()
	}
	lr.layout.Refresh()
}

// Objects returns the container objects
func (lr *layerRowRenderer) Objects() []fyne.CanvasObject {
	if lr.layout == nil {
		lr.createLayout()
	}
	return []fyne.CanvasObject{lr.layout}
}

// Destroy cleans up the renderer
func (lr *layerRowRenderer) Destroy() {}

// createLayout lays the cells out in header column order
func (lr *layerRowRenderer) createLayout() {
	lr.layout = container.NewHBox(lr.row.cells...)
}
