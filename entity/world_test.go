package entity

import (
	"reflect"
	"testing"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type tracker struct {
	initialized *Entity
}

func (t *tracker) Init(e *Entity) {
	t.initialized = e
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	b := w.Create()
	if a.ID() == 0 || b.ID() == 0 {
		t.Error("entity IDs must not be 0")
	}
	if a.ID() == b.ID() {
		t.Error("entity IDs must be unique")
	}
}

func TestAttachGetHasRemove(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	e.Attach(&position{X: 1})

	posType := reflect.TypeOf(&position{})
	if !e.Has(posType) {
		t.Fatal("Has = false after Attach")
	}
	comp, ok := e.Get(posType)
	if !ok || comp.(*position).X != 1 {
		t.Fatalf("Get returned %v, %v", comp, ok)
	}
	if e.Has(reflect.TypeOf(&velocity{})) {
		t.Error("Has reports a component that was never attached")
	}

	e.Remove(posType)
	if e.Has(posType) {
		t.Error("Has = true after Remove")
	}
}

func TestLookupGeneric(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	e.Attach(&position{X: 3})

	p, ok := Lookup[*position](e)
	if !ok || p.X != 3 {
		t.Fatalf("Lookup = %v, %v", p, ok)
	}
	if _, ok := Lookup[*velocity](e); ok {
		t.Error("Lookup found a missing component")
	}
}

func TestAttachRunsInit(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	tr := &tracker{}
	e.Attach(tr)
	if tr.initialized != e {
		t.Error("Init hook did not receive the owning entity")
	}
}

func TestEntitiesWith(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	a.Attach(&position{})
	a.Attach(&velocity{})
	b := w.Create()
	b.Attach(&position{})

	posType := TypeOf[*position]()
	velType := TypeOf[*velocity]()

	both := w.EntitiesWith(posType, velType)
	if len(both) != 1 || both[0] != a {
		t.Errorf("EntitiesWith(pos, vel) = %v", both)
	}

	posOnly := w.EntitiesWith(posType)
	if len(posOnly) != 2 || posOnly[0] != a || posOnly[1] != b {
		t.Error("EntitiesWith should preserve creation order")
	}
}

func TestDestroyIsDeferredUntilFlush(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	e.Attach(&position{})
	e.Destroy()

	if _, ok := w.Get(e.ID()); !ok {
		t.Fatal("entity removed before Flush")
	}

	removed := false
	e.Bind(EventRemove, func(any) { removed = true })
	w.Flush()

	if _, ok := w.Get(e.ID()); ok {
		t.Error("entity still addressable after Flush")
	}
	if !removed {
		t.Error("Remove event not fired on Flush")
	}
	if len(w.Entities()) != 0 {
		t.Error("Entities still lists a flushed entity")
	}
}
