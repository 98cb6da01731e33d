package provider

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/helioviewer/sunviewer/internal/events"
	"github.com/helioviewer/sunviewer/internal/model"
)

// DefaultPrepareDelay simulates the time a layer needs before it can be shown
const DefaultPrepareDelay = 150 * time.Millisecond

var (
	// ErrLayerNotFound is returned for unknown layer IDs
	ErrLayerNotFound = errors.New("layer not found")

	// ErrAlreadyRemoved is returned when a layer is removed twice
	ErrAlreadyRemoved = errors.New("layer already removed")
)

// Service owns the viewer's layer objects. New layers are prepared in the
// background and announced with events.TopicLayerPrepared once ready.
type Service struct {
	layers       map[string]model.Provider
	order        []string
	removed      map[string]bool
	layersMutex  sync.RWMutex
	bus          events.Bus
	prepareDelay time.Duration
	dispatch     func(func())
	wg           sync.WaitGroup
}

// NewService creates a new layer service publishing on bus
func NewService(bus events.Bus, prepareDelay time.Duration) *Service {
	if prepareDelay < 0 {
		prepareDelay = 0
	}
	return &Service{
		layers:       make(map[string]model.Provider),
		removed:      make(map[string]bool),
		bus:          bus,
		prepareDelay: prepareDelay,
		dispatch:     func(fn func()) { fn() },
	}
}

// SetDispatcher sets the function used to run bus publications, e.g. fyne.Do
func (s *Service) SetDispatcher(dispatch func(func())) {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	s.layersMutex.Lock()
	s.dispatch = dispatch
	s.layersMutex.Unlock()
}

// AddTileLayer adds a tile layer and starts preparing it
func (s *Service) AddTileLayer(instrument string, wavelength int, opacity float64) (*TileLayer, error) {
	if !isKnownInstrument(instrument) {
		return nil, fmt.Errorf("unsupported instrument: %q", instrument)
	}
	if model.HasWavelength(instrument) && !isKnownWavelength(wavelength) {
		return nil, fmt.Errorf("unsupported wavelength for %s: %d", instrument, wavelength)
	}

	layer := NewTileLayer(instrument, wavelength, opacity)
	s.add(layer)
	return layer, nil
}

// AddMarkerLayer adds an event marker layer and starts preparing it
func (s *Service) AddMarkerLayer() (*MarkerLayer, error) {
	layer := NewMarkerLayer()
	s.add(layer)
	return layer, nil
}

func (s *Service) add(layer preparable) {
	s.layersMutex.Lock()
	s.layers[layer.ID()] = layer
	s.order = append(s.order, layer.ID())
	s.layersMutex.Unlock()

	log.Printf("LayerService: added %s layer %s", layer.Type(), layer.ID())

	s.wg.Add(1)
	go s.prepare(layer)
}

// GetLayer returns a layer by ID
func (s *Service) GetLayer(id string) (model.Provider, bool) {
	s.layersMutex.RLock()
	defer s.layersMutex.RUnlock()
	layer, exists := s.layers[id]
	return layer, exists
}

// GetAllLayers returns all live layers in insertion order
func (s *Service) GetAllLayers() []model.Provider {
	s.layersMutex.RLock()
	defer s.layersMutex.RUnlock()

	layers := make([]model.Provider, 0, len(s.layers))
	for _, id := range s.order {
		if layer, ok := s.layers[id]; ok {
			layers = append(layers, layer)
		}
	}
	return layers
}

// RemoveLayer drops a layer and announces it with events.TopicLayerRemoved
func (s *Service) RemoveLayer(id string) error {
	s.layersMutex.Lock()
	if s.removed[id] {
		s.layersMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyRemoved, id)
	}
	if _, exists := s.layers[id]; !exists {
		s.layersMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrLayerNotFound, id)
	}
	delete(s.layers, id)
	s.removed[id] = true
	dispatch := s.dispatch
	s.layersMutex.Unlock()

	log.Printf("LayerService: removed layer %s", id)
	dispatch(func() {
		s.bus.Publish(events.TopicLayerRemoved, id)
	})
	return nil
}

// Wait blocks until every layer added so far has finished preparing
func (s *Service) Wait() {
	s.wg.Wait()
}

type preparable interface {
	model.Provider
	markPrepared()
}

// prepare finishes layer setup and announces it
func (s *Service) prepare(layer preparable) {
	defer s.wg.Done()

	if s.prepareDelay > 0 {
		time.Sleep(s.prepareDelay)
	}

	s.layersMutex.RLock()
	_, alive := s.layers[layer.ID()]
	dispatch := s.dispatch
	s.layersMutex.RUnlock()
	if !alive {
		log.Printf("LayerService: layer %s removed before it was prepared", layer.ID())
		return
	}

	layer.markPrepared()
	dispatch(func() {
		// RemoveLayer may have run after the check above and already
		// announced the removal
		if !s.isLive(layer.ID()) {
			log.Printf("LayerService: layer %s removed before it was announced", layer.ID())
			return
		}
		s.bus.Publish(events.TopicLayerPrepared, layer)
	})
}

func (s *Service) isLive(id string) bool {
	s.layersMutex.RLock()
	defer s.layersMutex.RUnlock()
	_, ok := s.layers[id]
	return ok
}

func isKnownInstrument(instrument string) bool {
	for _, known := range model.Instruments() {
		if known == instrument {
			return true
		}
	}
	return false
}

func isKnownWavelength(wavelength int) bool {
	for _, known := range model.Wavelengths() {
		if known == wavelength {
			return true
		}
	}
	return false
}
