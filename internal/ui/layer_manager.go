package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/helioviewer/sunviewer/internal/events"
	"github.com/helioviewer/sunviewer/internal/layers"
	"github.com/helioviewer/sunviewer/internal/model"
)

// LayerManagerOptions configures a LayerManager
type LayerManagerOptions struct {
	Localization   *Localization
	ToggleDuration time.Duration
	RemovalPolicy  layers.RemovalPolicy
	StartExpanded  bool
}

// LayerManager is the collapsible layer table. It listens for layers being
// prepared or removed on the bus, builds a LayerRow for each and keeps them
// in its registry.
type LayerManager struct {
	bus          events.Bus
	registry     *layers.Registry[*LayerRow]
	localization *Localization

	// UI components
	toggleButton *widget.Button
	header       *fyne.Container
	body         *fyne.Container
	panel        *slidePanel
	container    *fyne.Container

	// Panel state
	expanded       bool
	toggleDuration time.Duration
	transition     *Transition

	unsubscribe []func()
}

// NewLayerManager creates the layer manager and subscribes it to bus
func NewLayerManager(bus events.Bus, opts LayerManagerOptions) *LayerManager {
	if opts.Localization == nil {
		opts.Localization = NewLocalization()
	}
	if opts.ToggleDuration < 0 {
		opts.ToggleDuration = 0
	}

	m := &LayerManager{
		bus:            bus,
		registry:       layers.NewRegistry[*LayerRow](opts.RemovalPolicy),
		localization:   opts.Localization,
		expanded:       opts.StartExpanded,
		toggleDuration: opts.ToggleDuration,
	}

	m.createMenu()
	m.initEvents()
	return m
}

// createMenu builds the toggle link, the header row and the empty table body
func (m *LayerManager) createMenu() {
	m.toggleButton = widget.NewButton(m.localization.GetText(KeyLayers), func() {
		m.Toggle()
	})
	m.toggleButton.Importance = widget.LowImportance

	m.header = container.NewHBox(m.headerCells()...)
	m.body = container.NewVBox()

	table := container.NewVBox(m.header, widget.NewSeparator(), m.body)
	m.panel = newSlidePanel(table, m.expanded)

	m.container = container.NewBorder(
		container.NewHBox(m.toggleButton), // top
		nil,                               // bottom
		nil,                               // left
		nil,                               // right
		m.panel.Object(),                  // center - collapsible table
	)
}

func (m *LayerManager) headerCells() []fyne.CanvasObject {
	columns := []struct {
		key   string
		width float32
	}{
		{KeyInstrument, InstrumentColumnWidth},
		{KeyWavelength, WavelengthColumnWidth},
		{KeyOpacity, OpacityColumnWidth},
		{KeyEnabled, EnabledColumnWidth},
		{KeyRemove, RemoveColumnWidth},
		{KeyMove, MoveColumnWidth},
	}

	cells := make([]fyne.CanvasObject, 0, len(columns))
	for _, col := range columns {
		label := widget.NewLabel(m.localization.GetText(col.key))
		label.TextStyle = fyne.TextStyle{Bold: true}
		cells = append(cells, fixedWidth(col.width, label))
	}
	return cells
}

// initEvents subscribes to the layer notifications
func (m *LayerManager) initEvents() {
	if m.bus == nil {
		log.Printf("Warning: LayerManager created without a bus; no layers will be shown")
		return
	}
	m.unsubscribe = append(m.unsubscribe,
		m.bus.Subscribe(events.TopicLayerPrepared, m.onLayerAdded),
		m.bus.Subscribe(events.TopicLayerRemoved, m.onLayerRemoved),
	)
}

// Close unsubscribes from the bus
func (m *LayerManager) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
	if m.transition != nil {
		m.transition.Cancel()
	}
}

// Container returns the layer manager's canvas object
func (m *LayerManager) Container() fyne.CanvasObject {
	return m.container
}

// onLayerAdded handles a "layer prepared" notification
func (m *LayerManager) onLayerAdded(payload interface{}) {
	p, ok := payload.(model.Provider)
	if !ok {
		log.Printf("Warning: LayerManager received %T as a prepared layer", payload)
	}
	m.addMenuEntry(p)
}

// addMenuEntry registers p and appends its row to the table
func (m *LayerManager) addMenuEntry(p model.Provider) int {
	id, err := m.registry.Register(p, func(id int) *LayerRow {
		row := NewLayerRow(id, p, m.bus, m.localization)
		row.SetStateCallback(m.updateState)
		return row
	})
	if err != nil {
		log.Printf("Warning: LayerManager ignoring layer: %v", err)
		return id
	}

	row, err := m.registry.Get(id)
	if err != nil {
		log.Printf("LayerManager: row %d vanished after registration: %v", id, err)
		return id
	}

	m.body.Add(row)
	m.panel.fit()
	log.Printf("LayerManager: added %s row %d (total %d)", row.Kind(), id, m.registry.Size())
	return id
}

// onLayerRemoved handles a "layer removed" notification. With the inert
// removal policy the row stays in the table.
func (m *LayerManager) onLayerRemoved(payload interface{}) {
	providerID, ok := payload.(string)
	if !ok {
		log.Printf("Warning: LayerManager received %T as a removed layer id", payload)
		return
	}

	row, rowErr := m.rowForProvider(providerID)
	id, removed, err := m.registry.Remove(providerID)
	if err != nil {
		log.Printf("LayerManager: remove %s: %v", providerID, err)
		return
	}
	if !removed {
		log.Printf("LayerManager: layer %s (row %d) removed; row kept", providerID, id)
		return
	}

	if rowErr == nil {
		m.body.Remove(row)
		m.panel.fit()
	}
	log.Printf("LayerManager: deleted row %d for layer %s", id, providerID)
}

func (m *LayerManager) rowForProvider(providerID string) (*LayerRow, error) {
	id, ok := m.registry.Lookup(providerID)
	if !ok {
		return nil, layers.ErrNotFound
	}
	return m.registry.Get(id)
}

func (m *LayerManager) updateState(id int, fn func(*model.LayerState)) {
	if err := m.registry.Update(id, fn); err != nil && !errors.Is(err, layers.ErrNotFound) {
		log.Printf("LayerManager: update row %d: %v", id, err)
	}
}

// Toggle flips the panel between expanded and collapsed and starts the
// slide. A slide still running is canceled first.
func (m *LayerManager) Toggle() *Transition {
	if m.transition != nil {
		m.transition.Cancel()
	}
	m.expanded = !m.expanded
	m.transition = m.panel.slide(m.expanded, m.toggleDuration)
	return m.transition
}

// SetToggleDuration changes the slide duration used by later toggles
func (m *LayerManager) SetToggleDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	m.toggleDuration = d
}

// SetRemovalPolicy changes what later "layer removed" notifications do
func (m *LayerManager) SetRemovalPolicy(policy layers.RemovalPolicy) {
	m.registry.SetPolicy(policy)
}

// RemovalPolicy returns the active removal policy
func (m *LayerManager) RemovalPolicy() layers.RemovalPolicy {
	return m.registry.Policy()
}

// RefreshTexts re-reads every label from the localization
func (m *LayerManager) RefreshTexts() {
	m.toggleButton.SetText(m.localization.GetText(KeyLayers))
	m.header.Objects = m.headerCells()
	m.header.Refresh()
	for _, id := range m.registry.IDs() {
		if row, err := m.registry.Get(id); err == nil {
			row.refreshTexts()
		}
	}
	m.panel.fit()
}

// Expanded reports whether the panel is open or opening
func (m *LayerManager) Expanded() bool {
	return m.expanded
}

// PanelVisible reports whether any part of the table is showing
func (m *LayerManager) PanelVisible() bool {
	return m.panel.Visible()
}

// Size returns the number of registered layers
func (m *LayerManager) Size() int {
	return m.registry.Size()
}

// Row returns the row registered under id
func (m *LayerManager) Row(id int) (*LayerRow, error) {
	return m.registry.Get(id)
}

// State returns the state record for id
func (m *LayerManager) State(id int) (model.LayerState, error) {
	return m.registry.State(id)
}

// IDs returns registered ids in table order
func (m *LayerManager) IDs() []int {
	return m.registry.IDs()
}

// RowCount returns the number of rows in the visible table
func (m *LayerManager) RowCount() int {
	return len(m.body.Objects)
}
