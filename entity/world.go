// Package entity provides the entity-component store and per-entity event
// dispatch. Entities are bags of components addressed by ID; behaviors are
// contributed by components and driven by synchronous events.
package entity

import "reflect"

// ID is the unique identifier of an entity. 0 is reserved as invalid.
type ID uint64

// World owns all entities and their components.
type World struct {
	nextID     uint64
	handles    map[ID]*Entity
	components map[ID]map[reflect.Type]any

	// Creation order, used for deterministic draw dispatch
	order []ID

	toDestroy []ID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:     1,
		handles:    make(map[ID]*Entity),
		components: make(map[ID]map[reflect.Type]any),
	}
}

// Create creates a new entity and returns its handle.
func (w *World) Create() *Entity {
	id := ID(w.nextID)
	w.nextID++

	e := &Entity{id: id, world: w}
	w.handles[id] = e
	w.components[id] = make(map[reflect.Type]any)
	w.order = append(w.order, id)
	return e
}

// Get returns the entity with the given ID.
func (w *World) Get(id ID) (*Entity, bool) {
	e, ok := w.handles[id]
	return e, ok
}

// Destroy marks an entity for removal. The entity stays addressable until
// the next Flush, so handlers running this frame see consistent state.
func (w *World) Destroy(id ID) {
	if _, ok := w.handles[id]; ok {
		w.toDestroy = append(w.toDestroy, id)
	}
}

// Flush removes all entities marked by Destroy.
func (w *World) Flush() {
	for _, id := range w.toDestroy {
		if e, ok := w.handles[id]; ok {
			e.Trigger(EventRemove, nil)
			e.listeners = nil
		}
		delete(w.handles, id)
		delete(w.components, id)
		for i, oid := range w.order {
			if oid == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
	w.toDestroy = w.toDestroy[:0]
}

// Entities returns all live entities in creation order.
func (w *World) Entities() []*Entity {
	result := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		if e, ok := w.handles[id]; ok {
			result = append(result, e)
		}
	}
	return result
}

// EntitiesWith returns, in creation order, the entities owning all of the
// given component types.
func (w *World) EntitiesWith(componentTypes ...reflect.Type) []*Entity {
	result := make([]*Entity, 0)
	for _, id := range w.order {
		compMap, ok := w.components[id]
		if !ok {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, w.handles[id])
		}
	}
	return result
}
