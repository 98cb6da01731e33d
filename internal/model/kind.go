package model

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a layer type name has no matching kind.
var ErrUnknownKind = errors.New("unknown layer kind")

// LayerKind represents the kind of a layer, which decides the controls it gets
type LayerKind string

const (
	// KindTile is a tiled image layer with instrument, wavelength and opacity controls
	KindTile LayerKind = "Tile"

	// KindMarker is an event/feature overlay
	KindMarker LayerKind = "Marker"

	// KindUnknown is anything else
	KindUnknown LayerKind = "Unknown"
)

// Provider type names as reported by the layer objects
const (
	TileProviderType   = "TileLayerProvider"
	MarkerProviderType = "MarkerLayerProvider"
)

// String returns the string representation of LayerKind
func (k LayerKind) String() string {
	return string(k)
}

// IsKnown returns true for kinds that get dedicated controls
func (k LayerKind) IsKnown() bool {
	return k == KindTile || k == KindMarker
}

// ResolveKind maps a provider type name to a LayerKind. Unrecognized names
// resolve to KindUnknown together with ErrUnknownKind.
func ResolveKind(typeName string) (LayerKind, error) {
	switch typeName {
	case TileProviderType:
		return KindTile, nil
	case MarkerProviderType:
		return KindMarker, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, typeName)
	}
}
