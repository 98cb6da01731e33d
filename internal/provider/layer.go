package provider

import (
	"sync"

	"github.com/google/uuid"

	"github.com/helioviewer/sunviewer/internal/model"
)

// Default opacity values
const (
	DefaultOpacity = 1.0
)

// baseLayer holds the state shared by every layer type
type baseLayer struct {
	mu       sync.RWMutex
	id       string
	opacity  float64
	visible  bool
	prepared bool
}

func (l *baseLayer) init(opacity float64) {
	l.id = generateLayerID()
	l.opacity = opacity
	l.visible = true
}

// ID returns the layer identifier
func (l *baseLayer) ID() string {
	return l.id
}

// Opacity returns the opacity fraction
func (l *baseLayer) Opacity() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opacity
}

// SetOpacity stores the opacity fraction as given; no range check is applied
func (l *baseLayer) SetOpacity(opacity float64) {
	l.mu.Lock()
	l.opacity = opacity
	l.mu.Unlock()
}

// Visible reports whether the layer is drawn
func (l *baseLayer) Visible() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.visible
}

// SetVisible shows or hides the layer
func (l *baseLayer) SetVisible(visible bool) {
	l.mu.Lock()
	l.visible = visible
	l.mu.Unlock()
}

// Prepared reports whether setup has completed
func (l *baseLayer) Prepared() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prepared
}

func (l *baseLayer) markPrepared() {
	l.mu.Lock()
	l.prepared = true
	l.mu.Unlock()
}

// TileLayer is a tiled solar image layer
type TileLayer struct {
	baseLayer

	instrument string
	wavelength int
}

// NewTileLayer creates a tile layer for the given instrument and wavelength
func NewTileLayer(instrument string, wavelength int, opacity float64) *TileLayer {
	t := &TileLayer{
		instrument: instrument,
		wavelength: wavelength,
	}
	t.init(opacity)
	return t
}

// Type returns the provider type name
func (t *TileLayer) Type() string {
	return model.TileProviderType
}

// Instrument returns the instrument the tiles come from
func (t *TileLayer) Instrument() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.instrument
}

// SetInstrument switches the tile source instrument
func (t *TileLayer) SetInstrument(instrument string) {
	t.mu.Lock()
	t.instrument = instrument
	t.mu.Unlock()
}

// Wavelength returns the tile source wavelength
func (t *TileLayer) Wavelength() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.wavelength
}

// SetWavelength switches the tile source wavelength
func (t *TileLayer) SetWavelength(wavelength int) {
	t.mu.Lock()
	t.wavelength = wavelength
	t.mu.Unlock()
}

// MarkerLayer is an overlay of solar event markers
type MarkerLayer struct {
	baseLayer
}

// NewMarkerLayer creates an event marker layer
func NewMarkerLayer() *MarkerLayer {
	m := &MarkerLayer{}
	m.init(DefaultOpacity)
	return m
}

// Type returns the provider type name
func (m *MarkerLayer) Type() string {
	return model.MarkerProviderType
}

// generateLayerID generates a unique layer ID
func generateLayerID() string {
	return "layer-" + uuid.New().String()
}
