package model

// Provider is the external layer object owned by the viewer. The layer
// manager reads it for display and writes to it only through the setters.
type Provider interface {
	// ID is the viewer-wide identifier carried by "layer removed" notifications
	ID() string
	// Type is the provider type name, e.g. TileProviderType
	Type() string
	// Opacity is the current opacity fraction (0.0 - 1.0)
	Opacity() float64
	SetOpacity(opacity float64)
	SetVisible(visible bool)
}

// TileSource is implemented by tile providers that know their image source
type TileSource interface {
	Instrument() string
	Wavelength() int
}
