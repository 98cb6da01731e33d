package model

import "testing"

type stubProvider struct {
	id         string
	typeName   string
	opacity    float64
	instrument string
	wavelength int
}

func (s *stubProvider) ID() string           { return s.id }
func (s *stubProvider) Type() string         { return s.typeName }
func (s *stubProvider) Opacity() float64     { return s.opacity }
func (s *stubProvider) SetOpacity(o float64) { s.opacity = o }
func (s *stubProvider) SetVisible(bool)      {}
func (s *stubProvider) Instrument() string   { return s.instrument }
func (s *stubProvider) Wavelength() int      { return s.wavelength }

func TestNewLayerState_Tile(t *testing.T) {
	p := &stubProvider{id: "a", typeName: TileProviderType, opacity: 0.8, instrument: InstrumentEIT, wavelength: Wavelength195}
	state := NewLayerState(3, p)

	if state.ID != 3 || state.ProviderID != "a" {
		t.Errorf("Expected ID 3 and provider a, got %d and %s", state.ID, state.ProviderID)
	}
	if state.Kind != KindTile {
		t.Errorf("Expected kind Tile, got %s", state.Kind)
	}
	if state.Opacity != 80 {
		t.Errorf("Expected opacity 80, got %d", state.Opacity)
	}
	if state.Wavelength != Wavelength195 {
		t.Errorf("Expected wavelength 195, got %d", state.Wavelength)
	}
	if !state.Enabled {
		t.Error("New layers should be enabled")
	}
}

func TestNewLayerState_LASHasNoWavelength(t *testing.T) {
	p := &stubProvider{typeName: TileProviderType, opacity: 1, instrument: InstrumentLAS, wavelength: Wavelength171}
	state := NewLayerState(0, p)

	if state.Wavelength != 0 {
		t.Errorf("Expected no wavelength for LAS, got %d", state.Wavelength)
	}
}

func TestNewLayerState_NilAndUnknown(t *testing.T) {
	state := NewLayerState(1, nil)
	if state.Kind != KindUnknown || !state.Enabled {
		t.Errorf("Expected enabled unknown state for nil provider, got %+v", state)
	}

	state = NewLayerState(2, &stubProvider{typeName: "Mystery"})
	if state.Kind != KindUnknown {
		t.Errorf("Expected unknown kind, got %s", state.Kind)
	}
}
