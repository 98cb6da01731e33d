package model

import "math"

// LayerState is the per-entry record the layer manager renders from. The
// external Provider stays the source of truth for opacity.
type LayerState struct {
	ID         int
	ProviderID string
	Kind       LayerKind
	Instrument string // tile layers only
	Wavelength int    // tile layers only, 0 if not applicable
	Opacity    int    // percent, 0 to 100
	Enabled    bool
}

// NewLayerState derives the initial state for a provider registered under id
func NewLayerState(id int, p Provider) LayerState {
	state := LayerState{
		ID:      id,
		Kind:    KindUnknown,
		Enabled: true,
	}
	if p == nil {
		return state
	}

	state.ProviderID = p.ID()
	state.Kind, _ = ResolveKind(p.Type())
	if state.Kind != KindTile {
		return state
	}

	state.Opacity = OpacityPercent(p.Opacity())
	if src, ok := p.(TileSource); ok {
		state.Instrument = src.Instrument()
		if HasWavelength(state.Instrument) {
			state.Wavelength = src.Wavelength()
		}
	}
	return state
}

// OpacityPercent converts an opacity fraction to a rounded integer percentage
func OpacityPercent(fraction float64) int {
	return int(math.Round(fraction * MaxPercent))
}
