package layers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/helioviewer/sunviewer/internal/model"
)

type fakeProvider struct {
	id       string
	typeName string
	opacity  float64
}

func (f *fakeProvider) ID() string           { return f.id }
func (f *fakeProvider) Type() string         { return f.typeName }
func (f *fakeProvider) Opacity() float64     { return f.opacity }
func (f *fakeProvider) SetOpacity(o float64) { f.opacity = o }
func (f *fakeProvider) SetVisible(bool)      {}

func tile(id string) *fakeProvider {
	return &fakeProvider{id: id, typeName: model.TileProviderType, opacity: 1}
}

func TestRegister_SequentialIDs(t *testing.T) {
	reg := NewRegistry[string](RemovalInert)

	for n := 0; n < 5; n++ {
		id, err := reg.Register(tile(fmt.Sprintf("p%d", n)), func(id int) string {
			return fmt.Sprintf("row-%d", id)
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if id != n {
			t.Errorf("Expected id %d, got %d", n, id)
		}
	}

	if reg.Size() != 5 {
		t.Errorf("Expected size 5, got %d", reg.Size())
	}

	ids := reg.IDs()
	for i, id := range ids {
		if id != i {
			t.Errorf("IDs()[%d] = %d, expected %d", i, id, i)
		}
	}
}

func TestRegister_BuildSeesAssignedID(t *testing.T) {
	reg := NewRegistry[int](RemovalInert)
	reg.Register(tile("a"), func(id int) int { return id })
	id, _ := reg.Register(tile("b"), func(id int) int { return id * 10 })

	handle, err := reg.Get(id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if handle != 10 {
		t.Errorf("Expected handle 10, got %d", handle)
	}
}

func TestGet_NotFound(t *testing.T) {
	reg := NewRegistry[string](RemovalInert)
	reg.Register(tile("a"), nil)

	if _, err := reg.Get(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := reg.State(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from State, got %v", err)
	}
	if err := reg.Update(7, func(*model.LayerState) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from Update, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	reg := NewRegistry[string](RemovalInert)
	id, _ := reg.Register(tile("a"), nil)

	err := reg.Update(id, func(s *model.LayerState) {
		s.Instrument = model.InstrumentLAS
		s.Enabled = false
		s.ID = 99
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	state, _ := reg.State(id)
	if state.Instrument != model.InstrumentLAS || state.Enabled {
		t.Errorf("Update not applied: %+v", state)
	}
	if state.ID != id {
		t.Errorf("Update must not change the id, got %d", state.ID)
	}
}

func TestRemove_Inert(t *testing.T) {
	reg := NewRegistry[string](RemovalInert)
	reg.Register(tile("a"), nil)
	reg.Register(tile("b"), nil)

	id, removed, err := reg.Remove("a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != 0 || removed {
		t.Errorf("Expected id 0 kept, got id=%d removed=%v", id, removed)
	}
	if reg.Size() != 2 {
		t.Errorf("Expected size 2 after inert removal, got %d", reg.Size())
	}
	if next, _ := reg.Register(tile("c"), nil); next != 2 {
		t.Errorf("Expected next id 2, got %d", next)
	}
}

func TestRemove_DeleteNeverReusesIDs(t *testing.T) {
	reg := NewRegistry[string](RemovalDelete)
	reg.Register(tile("a"), nil)
	reg.Register(tile("b"), nil)

	id, removed, err := reg.Remove("a")
	if err != nil || !removed || id != 0 {
		t.Fatalf("Expected id 0 removed, got id=%d removed=%v err=%v", id, removed, err)
	}
	if reg.Size() != 1 {
		t.Errorf("Expected size 1, got %d", reg.Size())
	}
	if _, err := reg.Get(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected removed entry to be gone, got %v", err)
	}
	if _, ok := reg.Lookup("a"); ok {
		t.Error("Expected provider mapping to be gone")
	}

	next, _ := reg.Register(tile("c"), nil)
	if next != 2 {
		t.Errorf("Expected next id 2 after deletion, got %d", next)
	}
	if ids := reg.IDs(); len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("Expected ids [1 2], got %v", ids)
	}
}

func TestRemove_UnknownProvider(t *testing.T) {
	reg := NewRegistry[string](RemovalDelete)
	if _, _, err := reg.Remove("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestParseRemovalPolicy(t *testing.T) {
	tests := []struct {
		name     string
		expected RemovalPolicy
	}{
		{"delete", RemovalDelete},
		{"inert", RemovalInert},
		{"", RemovalInert},
		{"bogus", RemovalInert},
	}

	for _, test := range tests {
		if result := ParseRemovalPolicy(test.name); result != test.expected {
			t.Errorf("ParseRemovalPolicy(%q) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestRegistry_SetPolicy(t *testing.T) {
	r := NewRegistry[string](RemovalInert)
	r.Register(tile("a"), func(id int) string { return "row" })

	r.SetPolicy(RemovalDelete)
	if r.Policy() != RemovalDelete {
		t.Fatalf("Expected delete policy, got %s", r.Policy())
	}
	if _, removed, err := r.Remove("a"); err != nil || !removed {
		t.Errorf("Expected removal after switching policy, got removed=%v err=%v", removed, err)
	}
}

func TestRegister_DuplicateProvider(t *testing.T) {
	reg := NewRegistry[string](RemovalDelete)
	reg.Register(tile("a"), nil)

	built := false
	id, err := reg.Register(tile("a"), func(int) string {
		built = true
		return "second"
	})
	if !errors.Is(err, ErrDuplicateProvider) {
		t.Fatalf("Expected ErrDuplicateProvider, got %v", err)
	}
	if id != 0 {
		t.Errorf("Expected the existing id 0, got %d", id)
	}
	if built {
		t.Error("Expected no handle to be built for a duplicate")
	}
	if reg.Size() != 1 {
		t.Errorf("Expected size 1, got %d", reg.Size())
	}

	if _, removed, err := reg.Remove("a"); err != nil || !removed {
		t.Fatalf("Expected removal, got removed=%v err=%v", removed, err)
	}
	if reg.Size() != 0 {
		t.Errorf("Expected no orphaned entry, got size %d", reg.Size())
	}
	if next, _ := reg.Register(tile("d"), nil); next != 1 {
		t.Errorf("Expected next id 1, got %d", next)
	}
}

func TestRegister_WithoutProviderNeverDuplicates(t *testing.T) {
	reg := NewRegistry[string](RemovalInert)
	for i := 0; i < 2; i++ {
		if _, err := reg.Register(nil, nil); err != nil {
			t.Fatalf("Expected providerless rows to register, got %v", err)
		}
	}
	if reg.Size() != 2 {
		t.Errorf("Expected size 2, got %d", reg.Size())
	}
}
