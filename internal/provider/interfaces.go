package provider

import (
	"github.com/helioviewer/sunviewer/internal/model"
)

// Layers defines the interface for the layer service.
type Layers interface {
	AddTileLayer(instrument string, wavelength int, opacity float64) (*TileLayer, error)
	AddMarkerLayer() (*MarkerLayer, error)
	GetLayer(id string) (model.Provider, bool)
	GetAllLayers() []model.Provider
	RemoveLayer(id string) error

	// SetDispatcher sets how bus notifications are handed to the UI goroutine
	SetDispatcher(dispatch func(func()))
}
