package entity

import "reflect"

// Initializer is implemented by components that register event bindings or
// otherwise need their owning entity at attach time.
type Initializer interface {
	Init(*Entity)
}

// Entity is a handle to one entity in a world.
type Entity struct {
	id    ID
	world *World

	listeners      map[string][]listener
	nextListenerID int
}

// ID returns the entity's identifier.
func (e *Entity) ID() ID {
	return e.id
}

// World returns the owning world.
func (e *Entity) World() *World {
	return e.world
}

// Attach adds a component to the entity, keyed by its concrete type, and
// runs its Init hook if it has one. Attaching a second component of the
// same type replaces the first.
func (e *Entity) Attach(component any) *Entity {
	compMap, ok := e.world.components[e.id]
	if !ok {
		return e
	}
	compMap[reflect.TypeOf(component)] = component
	if init, ok := component.(Initializer); ok {
		init.Init(e)
	}
	return e
}

// Get returns the component of the given type.
func (e *Entity) Get(componentType reflect.Type) (any, bool) {
	if compMap, ok := e.world.components[e.id]; ok {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// Has reports whether the entity owns a component of the given type.
// This is the capability query: a capability is the presence of its
// component.
func (e *Entity) Has(componentType reflect.Type) bool {
	_, ok := e.Get(componentType)
	return ok
}

// Remove detaches the component of the given type.
func (e *Entity) Remove(componentType reflect.Type) {
	if compMap, ok := e.world.components[e.id]; ok {
		delete(compMap, componentType)
	}
}

// Destroy marks the entity for removal at the next world Flush.
func (e *Entity) Destroy() {
	e.world.Destroy(e.id)
}

// Lookup returns the component of type T attached to e. T is the concrete
// (usually pointer) type the component was attached as.
func Lookup[T any](e *Entity) (T, bool) {
	var zero T
	comp, ok := e.Get(reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	t, ok := comp.(T)
	return t, ok
}

// TypeOf returns the component-store key for type T.
func TypeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}
