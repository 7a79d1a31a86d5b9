// Package canvas provides a 2D drawing context over the raster canvas,
// modeled on the CanvasRenderingContext2D API: fill style, font, an affine
// transform, and a save/restore state stack.
// Reference: https://html.spec.whatwg.org/multipage/canvas.html#canvasrenderingcontext2d
package canvas

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/chrisuehlinger/vibecraft/css"
	"github.com/chrisuehlinger/vibecraft/render"
)

// DefaultFont is the initial font of a fresh context.
const DefaultFont = "10px sans-serif"

// Context2D is a 2D rendering context bound to a raster canvas.
type Context2D struct {
	canvas *render.Canvas

	fillStyle    string
	fillColor    color.RGBA
	strokeStyle  string
	strokeColor  color.RGBA
	globalAlpha  float64
	font         string

	// Current transformation matrix (a, b, c, d, e, f)
	// [ a c e ]
	// [ b d f ]
	// [ 0 0 1 ]
	a, b, c, d, e, f float64

	stateStack []contextState
}

// contextState holds the state captured by Save and reinstated by Restore.
type contextState struct {
	fillStyle        string
	fillColor        color.RGBA
	strokeStyle      string
	strokeColor      color.RGBA
	globalAlpha      float64
	font             string
	a, b, c, d, e, f float64
}

// NewContext2D creates a context over a fresh canvas of the given size.
func NewContext2D(width, height int) *Context2D {
	return &Context2D{
		canvas:      render.NewCanvas(width, height),
		fillStyle:   "#000000",
		fillColor:   color.RGBA{0, 0, 0, 255},
		strokeStyle: "#000000",
		strokeColor: color.RGBA{0, 0, 0, 255},
		globalAlpha: 1.0,
		font:        DefaultFont,
		a:           1, d: 1,
	}
}

// Canvas returns the underlying raster canvas.
func (ctx *Context2D) Canvas() *render.Canvas {
	return ctx.canvas
}

// SetFillStyle sets the fill color from a CSS color string.
// Unparseable values are ignored, matching canvas semantics.
func (ctx *Context2D) SetFillStyle(style string) {
	if c, ok := css.ParseColor(style); ok {
		ctx.fillStyle = style
		ctx.fillColor = color.RGBA{c.R, c.G, c.B, c.A}
	}
}

// FillStyle returns the current fill style string.
func (ctx *Context2D) FillStyle() string {
	return ctx.fillStyle
}

// SetStrokeStyle sets the stroke color from a CSS color string.
func (ctx *Context2D) SetStrokeStyle(style string) {
	if c, ok := css.ParseColor(style); ok {
		ctx.strokeStyle = style
		ctx.strokeColor = color.RGBA{c.R, c.G, c.B, c.A}
	}
}

// StrokeStyle returns the current stroke style string.
func (ctx *Context2D) StrokeStyle() string {
	return ctx.strokeStyle
}

// SetGlobalAlpha sets the global alpha; values outside [0, 1] are ignored.
func (ctx *Context2D) SetGlobalAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		ctx.globalAlpha = alpha
	}
}

// SetFont sets the font string. The value is stored verbatim; size and
// weight are extracted when text is drawn, and unparseable fields fall
// back to the context defaults.
func (ctx *Context2D) SetFont(font string) {
	ctx.font = font
}

// Font returns the current font string.
func (ctx *Context2D) Font() string {
	return ctx.font
}

// Save pushes the current state onto the state stack.
func (ctx *Context2D) Save() {
	ctx.stateStack = append(ctx.stateStack, contextState{
		fillStyle:   ctx.fillStyle,
		fillColor:   ctx.fillColor,
		strokeStyle: ctx.strokeStyle,
		strokeColor: ctx.strokeColor,
		globalAlpha: ctx.globalAlpha,
		font:        ctx.font,
		a:           ctx.a, b: ctx.b, c: ctx.c,
		d: ctx.d, e: ctx.e, f: ctx.f,
	})
}

// Restore pops the state stack and reinstates the saved state.
// Restoring with an empty stack is a no-op.
func (ctx *Context2D) Restore() {
	if len(ctx.stateStack) == 0 {
		return
	}
	s := ctx.stateStack[len(ctx.stateStack)-1]
	ctx.stateStack = ctx.stateStack[:len(ctx.stateStack)-1]

	ctx.fillStyle = s.fillStyle
	ctx.fillColor = s.fillColor
	ctx.strokeStyle = s.strokeStyle
	ctx.strokeColor = s.strokeColor
	ctx.globalAlpha = s.globalAlpha
	ctx.font = s.font
	ctx.a, ctx.b, ctx.c, ctx.d, ctx.e, ctx.f = s.a, s.b, s.c, s.d, s.e, s.f
}

// Translate translates the canvas origin.
func (ctx *Context2D) Translate(x, y float64) {
	ctx.e += ctx.a*x + ctx.c*y
	ctx.f += ctx.b*x + ctx.d*y
}

// Scale scales the canvas.
func (ctx *Context2D) Scale(x, y float64) {
	ctx.a *= x
	ctx.b *= x
	ctx.c *= y
	ctx.d *= y
}

// ResetTransform resets to the identity matrix.
func (ctx *Context2D) ResetTransform() {
	ctx.a, ctx.b, ctx.c, ctx.d, ctx.e, ctx.f = 1, 0, 0, 1, 0, 0
}

// transformPoint maps a local-space point through the current matrix.
func (ctx *Context2D) transformPoint(x, y float64) (float64, float64) {
	return ctx.a*x + ctx.c*y + ctx.e, ctx.b*x + ctx.d*y + ctx.f
}

// applyAlpha scales a color's alpha by the global alpha.
func (ctx *Context2D) applyAlpha(col color.RGBA) color.RGBA {
	if ctx.globalAlpha >= 1.0 {
		return col
	}
	return color.RGBA{col.R, col.G, col.B, uint8(float64(col.A) * ctx.globalAlpha)}
}

// ClearRect clears a rectangle to transparent, in local coordinates.
func (ctx *Context2D) ClearRect(x, y, width, height float64) {
	dx, dy := ctx.transformPoint(x, y)
	for py := int(dy); py < int(dy+height); py++ {
		for px := int(dx); px < int(dx+width); px++ {
			ctx.canvas.SetPixel(px, py, color.RGBA{})
		}
	}
}

// FillRect fills a rectangle with the current fill style.
func (ctx *Context2D) FillRect(x, y, width, height float64) {
	dx, dy := ctx.transformPoint(x, y)
	ctx.canvas.FillRect(int(dx), int(dy), int(width), int(height), ctx.applyAlpha(ctx.fillColor))
}

// StrokeRect draws a rectangle outline with the current stroke style.
func (ctx *Context2D) StrokeRect(x, y, width, height float64) {
	x1, y1 := ctx.transformPoint(x, y)
	x2, y2 := ctx.transformPoint(x+width, y+height)
	col := ctx.applyAlpha(ctx.strokeColor)
	ctx.canvas.DrawLine(int(x1), int(y1), int(x2), int(y1), col)
	ctx.canvas.DrawLine(int(x2), int(y1), int(x2), int(y2), col)
	ctx.canvas.DrawLine(int(x2), int(y2), int(x1), int(y2), col)
	ctx.canvas.DrawLine(int(x1), int(y2), int(x1), int(y1), col)
}

// FillText draws filled text with its alphabetic baseline at (x, y),
// in local coordinates.
func (ctx *Context2D) FillText(text string, x, y float64) {
	size := ctx.fontSize()
	bold := ctx.fontBold()
	dx, dy := ctx.transformPoint(x, y)
	ctx.canvas.DrawText(text, int(dx), int(dy)-int(size), ctx.applyAlpha(ctx.fillColor), size, bold)
}

// MeasureText returns the pixel width of text in the current font.
func (ctx *Context2D) MeasureText(text string) float64 {
	return render.MeasureText(text, ctx.fontSize())
}

// fontSize extracts the pixel size from the font string, falling back to
// the default 10px when no px-suffixed field parses.
func (ctx *Context2D) fontSize() float64 {
	for _, part := range strings.Fields(ctx.font) {
		if strings.HasSuffix(part, "px") {
			if sz, err := strconv.ParseFloat(strings.TrimSuffix(part, "px"), 64); err == nil {
				return sz
			}
		}
	}
	return 10.0
}

// fontBold reports whether any field of the font string is a bold weight.
func (ctx *Context2D) fontBold() bool {
	for _, part := range strings.Fields(ctx.font) {
		if render.IsBoldWeight(part) {
			return true
		}
	}
	return false
}
