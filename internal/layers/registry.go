package layers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/helioviewer/sunviewer/internal/model"
)

// ErrNotFound is returned for ids that are not registered
var ErrNotFound = errors.New("layer not found")

// ErrDuplicateProvider is returned when a provider is registered twice
var ErrDuplicateProvider = errors.New("provider already registered")

// RemovalPolicy decides what "layer removed" does to an entry
type RemovalPolicy string

const (
	// RemovalInert keeps removed entries; the table never shrinks
	RemovalInert RemovalPolicy = "inert"

	// RemovalDelete deletes the entry and its row
	RemovalDelete RemovalPolicy = "delete"
)

// ParseRemovalPolicy returns the policy for name, defaulting to RemovalInert
func ParseRemovalPolicy(name string) RemovalPolicy {
	if RemovalPolicy(name) == RemovalDelete {
		return RemovalDelete
	}
	return RemovalInert
}

type entry[H any] struct {
	state  model.LayerState
	handle H
}

// Registry maps layer ids to row handles of type H
type Registry[H any] struct {
	mu         sync.RWMutex
	entries    map[int]*entry[H]
	order      []int
	byProvider map[string]int
	nextID     int
	policy     RemovalPolicy
}

// NewRegistry creates an empty registry with the given removal policy
func NewRegistry[H any](policy RemovalPolicy) *Registry[H] {
	return &Registry[H]{
		entries:    make(map[int]*entry[H]),
		byProvider: make(map[string]int),
		policy:     ParseRemovalPolicy(string(policy)),
	}
}

// Register assigns the next id, builds the row handle with it and stores
// both. build runs outside the registry lock. A provider id that already
// has an entry is rejected with ErrDuplicateProvider and the existing id.
func (r *Registry[H]) Register(p model.Provider, build func(id int) H) (int, error) {
	state := model.NewLayerState(0, p)

	r.mu.Lock()
	if existing, ok := r.byProvider[state.ProviderID]; ok && state.ProviderID != "" {
		r.mu.Unlock()
		return existing, fmt.Errorf("%w: %s is row %d", ErrDuplicateProvider, state.ProviderID, existing)
	}
	id := r.nextID
	r.nextID++
	if state.ProviderID != "" {
		r.byProvider[state.ProviderID] = id
	}
	r.mu.Unlock()

	state.ID = id

	var handle H
	if build != nil {
		handle = build(id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if state.ProviderID != "" {
		if current, ok := r.byProvider[state.ProviderID]; !ok || current != id {
			return id, fmt.Errorf("%w: %s was removed while row %d was built", ErrNotFound, state.ProviderID, id)
		}
	}
	r.entries[id] = &entry[H]{state: state, handle: handle}
	r.order = append(r.order, id)
	return id, nil
}

// Get returns the row handle for id
func (r *Registry[H]) Get(id int) (H, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		var zero H
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return e.handle, nil
}

// State returns a copy of the entry's state
func (r *Registry[H]) State(id int) (model.LayerState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return model.LayerState{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return e.state, nil
}

// Update mutates the entry's state in place
func (r *Registry[H]) Update(id int, fn func(*model.LayerState)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	fn(&e.state)
	e.state.ID = id
	return nil
}

// Size returns the number of entries currently held
func (r *Registry[H]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IDs returns registered ids in insertion order
func (r *Registry[H]) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int(nil), r.order...)
}

// Lookup returns the id registered for an external provider ID
func (r *Registry[H]) Lookup(providerID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byProvider[providerID]
	return id, ok
}

// Policy returns the configured removal policy
func (r *Registry[H]) Policy() RemovalPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.policy
}

// SetPolicy changes the removal policy for later removals
func (r *Registry[H]) SetPolicy(policy RemovalPolicy) {
	r.mu.Lock()
	r.policy = ParseRemovalPolicy(string(policy))
	r.mu.Unlock()
}

// Remove handles a "layer removed" notification for providerID. Under
// RemovalInert nothing changes and removed is false; under RemovalDelete the
// entry is deleted. The id of the matching entry is returned either way.
func (r *Registry[H]) Remove(providerID string) (id int, removed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byProvider[providerID]
	if !ok {
		return 0, false, fmt.Errorf("%w: provider %q", ErrNotFound, providerID)
	}
	if r.policy != RemovalDelete {
		return id, false, nil
	}

	delete(r.entries, id)
	delete(r.byProvider, providerID)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return id, true, nil
}
