package entity

// Event names used by the framework itself. Components are free to define
// their own.
const (
	// EventDraw is the per-frame "render now" notification. Its payload
	// describes the target surface.
	EventDraw = "Draw"

	// EventChange signals that an entity's visual state changed and the
	// scene needs repainting. No payload.
	EventChange = "Change"

	// EventRemove fires when a destroyed entity is flushed from the world.
	EventRemove = "Remove"
)

// Handler is an event callback. The payload is event-specific and may be nil.
type Handler func(payload any)

type listener struct {
	id   int
	fn   Handler
	once bool
}

// Bind registers a handler for the named event and returns a token for
// Unbind. Dispatch is synchronous and in registration order.
func (e *Entity) Bind(event string, fn Handler) int {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.nextListenerID++
	e.listeners[event] = append(e.listeners[event], listener{id: e.nextListenerID, fn: fn})
	return e.nextListenerID
}

// One registers a handler that is removed after its first invocation.
func (e *Entity) One(event string, fn Handler) int {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.nextListenerID++
	e.listeners[event] = append(e.listeners[event], listener{id: e.nextListenerID, fn: fn, once: true})
	return e.nextListenerID
}

// Unbind removes the handler registered under the given token.
func (e *Entity) Unbind(event string, token int) {
	ls := e.listeners[event]
	for i, l := range ls {
		if l.id == token {
			e.listeners[event] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// UnbindAll removes every handler for the named event.
func (e *Entity) UnbindAll(event string) {
	delete(e.listeners, event)
}

// Trigger invokes all handlers bound to the named event, synchronously and
// in registration order. Handlers may bind or unbind listeners during
// dispatch; such changes take effect on the next Trigger.
func (e *Entity) Trigger(event string, payload any) {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return
	}

	// Snapshot so mutation during dispatch is safe
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)

	for _, l := range snapshot {
		if l.once {
			e.Unbind(event, l.id)
		}
		l.fn(payload)
	}
}
