// Package component provides the built-in components: spatial state,
// render-surface capabilities and text rendering.
package component

import "github.com/chrisuehlinger/vibecraft/entity"

// TwoD gives an entity a position and size on the stage. X and Y are the
// top-left corner in stage coordinates.
type TwoD struct {
	X, Y, W, H float64
}

// TwoDOf returns the entity's TwoD component.
func TwoDOf(e *entity.Entity) (*TwoD, bool) {
	return entity.Lookup[*TwoD](e)
}
