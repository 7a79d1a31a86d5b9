package component

import (
	"github.com/chrisuehlinger/vibecraft/canvas"
	"github.com/chrisuehlinger/vibecraft/dom"
	"github.com/chrisuehlinger/vibecraft/entity"
)

// SurfaceKind identifies which surface a draw notification targets.
type SurfaceKind int

const (
	// SurfaceCanvas paints through the shared 2D drawing context.
	SurfaceCanvas SurfaceKind = iota
	// SurfaceDOM mutates the entity's own element.
	SurfaceDOM
)

// DrawEvent is the payload of the per-frame Draw notification. Exactly one
// of Ctx and Element is set, according to Kind.
type DrawEvent struct {
	Kind    SurfaceKind
	Ctx     *canvas.Context2D
	Element *dom.Element
}

// DOM marks an entity as rendered through its own DOM element. Attaching
// it is the DOM-rendering capability other components query for.
type DOM struct {
	Element *dom.Element
}

// NewDOM creates a DOM component backed by a fresh div.
func NewDOM() *DOM {
	return &DOM{}
}

// Init creates the backing element if the component was built without one.
func (d *DOM) Init(e *entity.Entity) {
	if d.Element == nil {
		d.Element = dom.NewElement("div")
	}
}

// DOMOf returns the entity's DOM component, when it has the capability.
func DOMOf(e *entity.Entity) (*DOM, bool) {
	return entity.Lookup[*DOM](e)
}

// Canvas marks an entity as painted onto the stage's shared drawing
// context each frame.
type Canvas struct{}

// CanvasOf returns the entity's Canvas component.
func CanvasOf(e *entity.Entity) (*Canvas, bool) {
	return entity.Lookup[*Canvas](e)
}
