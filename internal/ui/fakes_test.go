package ui

import (
	"fmt"

	"github.com/helioviewer/sunviewer/internal/model"
)

// fakeLayer records setter calls made by the layer manager
type fakeLayer struct {
	id         string
	typeName   string
	opacity    float64
	instrument string
	wavelength int

	opacityCalls []float64
	visible      bool
}

func (f *fakeLayer) ID() string       { return f.id }
func (f *fakeLayer) Type() string     { return f.typeName }
func (f *fakeLayer) Opacity() float64 { return f.opacity }
func (f *fakeLayer) SetOpacity(o float64) {
	f.opacity = o
	f.opacityCalls = append(f.opacityCalls, o)
}
func (f *fakeLayer) SetVisible(v bool)  { f.visible = v }
func (f *fakeLayer) Instrument() string { return f.instrument }
func (f *fakeLayer) Wavelength() int    { return f.wavelength }

var fakeSeq int

func newTile(instrument string, opacity float64) *fakeLayer {
	fakeSeq++
	return &fakeLayer{
		id:         fmt.Sprintf("tile-%d", fakeSeq),
		typeName:   model.TileProviderType,
		opacity:    opacity,
		instrument: instrument,
		wavelength: model.Wavelength171,
		visible:    true,
	}
}

func newMarker() *fakeLayer {
	fakeSeq++
	return &fakeLayer{
		id:       fmt.Sprintf("marker-%d", fakeSeq),
		typeName: model.MarkerProviderType,
		opacity:  1,
		visible:  true,
	}
}

func newOddLayer() *fakeLayer {
	fakeSeq++
	return &fakeLayer{
		id:       fmt.Sprintf("odd-%d", fakeSeq),
		typeName: "HeatmapLayerProvider",
		opacity:  1,
		visible:  true,
	}
}
