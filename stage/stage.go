// Package stage drives the per-frame render pass. A stage owns the world,
// the shared canvas drawing context and the root DOM element; each step it
// notifies every entity to draw itself onto its surface.
package stage

import (
	"image/color"
	"strconv"

	"github.com/chrisuehlinger/vibecraft/canvas"
	"github.com/chrisuehlinger/vibecraft/component"
	"github.com/chrisuehlinger/vibecraft/dom"
	"github.com/chrisuehlinger/vibecraft/entity"
)

// Stage hosts entities and repaints them when their visuals change.
type Stage struct {
	world *entity.World
	ctx   *canvas.Context2D
	root  *dom.Element

	width  int
	height int

	// Set by any entity's Change notification; cleared after a repaint
	dirty bool
}

// New creates a stage with a canvas surface of the given size and an
// empty DOM root.
func New(width, height int) *Stage {
	root := dom.NewElement("div")
	root.SetAttribute("id", "stage")
	root.Style().SetProperty("position", "relative")
	root.Style().SetProperty("width", px(float64(width)))
	root.Style().SetProperty("height", px(float64(height)))

	return &Stage{
		world:  entity.NewWorld(),
		ctx:    canvas.NewContext2D(width, height),
		root:   root,
		width:  width,
		height: height,
		dirty:  true,
	}
}

// World returns the entity world.
func (s *Stage) World() *entity.World {
	return s.world
}

// Context returns the shared canvas drawing context.
func (s *Stage) Context() *canvas.Context2D {
	return s.ctx
}

// Root returns the root DOM element entities' elements are parented to.
func (s *Stage) Root() *dom.Element {
	return s.root
}

// Size returns the stage dimensions in pixels.
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// Create creates an entity, attaches the given components, and wires it
// into the stage: its element (if any) joins the DOM root, and its Change
// notifications mark the stage dirty.
func (s *Stage) Create(components ...any) *entity.Entity {
	e := s.world.Create()
	for _, c := range components {
		e.Attach(c)
	}

	if d, ok := component.DOMOf(e); ok {
		s.root.AppendChild(d.Element)
	}

	e.Bind(entity.EventChange, func(any) { s.dirty = true })
	e.Bind(entity.EventRemove, func(any) {
		if d, ok := component.DOMOf(e); ok {
			s.root.RemoveChild(d.Element)
		}
		s.dirty = true
	})

	s.dirty = true
	return e
}

// Invalidate forces a repaint on the next Step.
func (s *Stage) Invalidate() {
	s.dirty = true
}

// Step flushes destroyed entities and, when anything changed since the
// last repaint, redraws the frame. It reports whether a repaint happened.
func (s *Stage) Step() bool {
	s.world.Flush()
	if !s.dirty {
		return false
	}
	s.dirty = false

	s.ctx.Canvas().Clear(color.RGBA{})

	for _, e := range s.world.Entities() {
		if d, ok := component.DOMOf(e); ok {
			s.syncElementPosition(e, d)
			e.Trigger(entity.EventDraw, &component.DrawEvent{
				Kind:    component.SurfaceDOM,
				Element: d.Element,
			})
		}
		if _, ok := component.CanvasOf(e); ok {
			e.Trigger(entity.EventDraw, &component.DrawEvent{
				Kind: component.SurfaceCanvas,
				Ctx:  s.ctx,
			})
		}
	}
	return true
}

// syncElementPosition mirrors the entity's spatial state into its
// element's positioning styles before the element draws itself.
func (s *Stage) syncElementPosition(e *entity.Entity, d *component.DOM) {
	td, ok := component.TwoDOf(e)
	if !ok {
		return
	}
	style := d.Element.Style()
	style.SetProperty("position", "absolute")
	style.SetProperty("left", px(td.X))
	style.SetProperty("top", px(td.Y))
	if td.W > 0 {
		style.SetProperty("width", px(td.W))
	}
	if td.H > 0 {
		style.SetProperty("height", px(td.H))
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
