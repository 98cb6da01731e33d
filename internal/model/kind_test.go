package model

import (
	"errors"
	"testing"
)

func TestResolveKind(t *testing.T) {
	tests := []struct {
		typeName string
		expected LayerKind
		wantErr  bool
	}{
		{TileProviderType, KindTile, false},
		{MarkerProviderType, KindMarker, false},
		{"OverlayLayerProvider", KindUnknown, true},
		{"", KindUnknown, true},
	}

	for _, test := range tests {
		kind, err := ResolveKind(test.typeName)
		if kind != test.expected {
			t.Errorf("ResolveKind(%q) = %s, expected %s", test.typeName, kind, test.expected)
		}
		if test.wantErr && !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ResolveKind(%q) error = %v, expected ErrUnknownKind", test.typeName, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("ResolveKind(%q) unexpected error: %v", test.typeName, err)
		}
	}
}

func TestLayerKind_IsKnown(t *testing.T) {
	tests := []struct {
		kind     LayerKind
		expected bool
	}{
		{KindTile, true},
		{KindMarker, true},
		{KindUnknown, false},
	}

	for _, test := range tests {
		if result := test.kind.IsKnown(); result != test.expected {
			t.Errorf("LayerKind(%s).IsKnown() = %v, expected %v", test.kind, result, test.expected)
		}
	}
}

func TestWavelengthVisibilityRules(t *testing.T) {
	if !HasWavelength(InstrumentEIT) {
		t.Error("EIT rows should start with a wavelength selector")
	}
	if HasWavelength(InstrumentLAS) {
		t.Error("LAS rows should start without a wavelength selector")
	}
	if !HidesWavelength(InstrumentLAS) {
		t.Error("switching to LAS should hide the wavelength selector")
	}
	if HidesWavelength(InstrumentEIT) {
		t.Error("switching to EIT should show the wavelength selector")
	}
}

func TestWavelengthOptions(t *testing.T) {
	expected := []string{"171", "195", "284"}
	options := WavelengthOptions()
	if len(options) != len(expected) {
		t.Fatalf("Expected %d options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("option %d = %s, expected %s", i, options[i], expected[i])
		}
	}
}
