package component

import (
	"fmt"

	"github.com/chrisuehlinger/vibecraft/css"
	"github.com/chrisuehlinger/vibecraft/entity"
)

// Font descriptor keys accepted by SetFont and SetFontMap.
const (
	FontType   = "type"
	FontWeight = "weight"
	FontSize   = "size"
	FontFamily = "family"
)

// Defaults applied at render time when the corresponding descriptor field
// is unset. The stored descriptor itself keeps its empty values.
const (
	defaultFontSize   = "10px"
	defaultFontFamily = "sans-serif"
)

// Styles applied by Unselectable, in application order.
var unselectableStyles = [...][2]string{
	{"-webkit-touch-callout", "none"},
	{"-webkit-user-select", "none"},
	{"-khtml-user-select", "none"},
	{"-moz-user-select", "none"},
	{"-ms-user-select", "none"},
	{"user-select", "none"},
}

// Text renders a string at the entity's position, onto either the
// entity's DOM element or the stage's shared canvas context, using a
// configurable font descriptor and color.
//
// Every mutator emits a Change notification so observers (the stage's
// dirty tracking, typically) know the visual changed. None of the
// operations report errors: malformed font or color values are passed
// through to the rendering surface, which applies its own fallback rules.
type Text struct {
	owner *entity.Entity

	text     string
	font     map[string]string
	color    string
	strength float64
}

// NewText creates a Text component with empty text, an empty font
// descriptor and no color set.
func NewText() *Text {
	return &Text{
		font:     make(map[string]string),
		strength: 1,
	}
}

// TextOf returns the entity's Text component.
func TextOf(e *entity.Entity) (*Text, bool) {
	return entity.Lookup[*Text](e)
}

// Init binds the draw reaction to the owning entity.
func (t *Text) Init(e *entity.Entity) {
	t.owner = e
	e.Bind(entity.EventDraw, t.draw)
}

// SetText sets the text content and emits Change. The value may be:
//   - a string, stored as-is;
//   - a func() string or func(*entity.Entity) string, evaluated once
//     immediately against the entity — the function is not retained and
//     is not re-invoked on later draws;
//   - anything else, coerced to its string representation.
func (t *Text) SetText(value any) *Text {
	switch v := value.(type) {
	case string:
		t.text = v
	case func() string:
		t.text = v()
	case func(*entity.Entity) string:
		t.text = v(t.owner)
	default:
		t.text = fmt.Sprint(v)
	}
	t.owner.Trigger(entity.EventChange, nil)
	return t
}

// Text returns the current resolved text. It does not emit Change.
func (t *Text) Text() string {
	return t.text
}

// SetTextColor resolves a color spec plus opacity strength through the
// css utility, stores the result and emits Change.
func (t *Text) SetTextColor(spec string, strength ...float64) *Text {
	s := 1.0
	if len(strength) > 0 {
		s = strength[0]
	}
	t.strength = s
	t.color = css.ToRGB(spec, s)
	t.owner.Trigger(entity.EventChange, nil)
	return t
}

// TextColor returns the resolved color string, or "" when unset.
func (t *Text) TextColor() string {
	return t.color
}

// Strength returns the raw opacity strength last passed to SetTextColor.
func (t *Text) Strength() float64 {
	return t.strength
}

// Font returns the current value of one font descriptor field. It does
// not emit Change.
func (t *Text) Font(key string) string {
	return t.font[key]
}

// SetFont sets exactly one font descriptor field and emits Change. Values
// are not validated; malformed CSS reaches the surface verbatim.
func (t *Text) SetFont(key, value string) *Text {
	t.font[key] = value
	t.owner.Trigger(entity.EventChange, nil)
	return t
}

// SetFontMap merges the given fields into the font descriptor — last
// write per key wins, unnamed fields stay untouched — and emits a single
// Change.
func (t *Text) SetFontMap(fields map[string]string) *Text {
	for k, v := range fields {
		t.font[k] = v
	}
	t.owner.Trigger(entity.EventChange, nil)
	return t
}

// FontString returns the composed CSS font string:
// "<type> <weight> <size> <family>", with size and family falling back to
// "10px" and "sans-serif" when unset. The fields are joined literally, so
// blank fields produce doubled spaces; surfaces accept that form and
// rendering output depends on it staying byte-stable.
func (t *Text) FontString() string {
	size := t.font[FontSize]
	if size == "" {
		size = defaultFontSize
	}
	family := t.font[FontFamily]
	if family == "" {
		family = defaultFontFamily
	}
	return t.font[FontType] + " " + t.font[FontWeight] + " " + size + " " + family
}

// Unselectable disables text selection on the entity's DOM element by
// applying the vendor-prefixed user-select properties, then emits Change.
// Entities without the DOM capability are left untouched and nothing is
// emitted.
func (t *Text) Unselectable() *Text {
	d, ok := DOMOf(t.owner)
	if !ok {
		return t
	}
	for _, kv := range unselectableStyles {
		d.Element.Style().SetProperty(kv[0], kv[1])
	}
	t.owner.Trigger(entity.EventChange, nil)
	return t
}

// draw reacts to the per-frame Draw notification.
func (t *Text) draw(payload any) {
	ev, ok := payload.(*DrawEvent)
	if !ok {
		return
	}

	font := t.FontString()

	switch ev.Kind {
	case SurfaceDOM:
		el := ev.Element
		if el == nil {
			return
		}
		if t.color != "" {
			el.Style().SetProperty("color", t.color)
		}
		el.Style().SetProperty("font", font)
		// Literal injection: the text is the element's markup, unescaped
		_ = el.SetInnerHTML(t.text)

	case SurfaceCanvas:
		ctx := ev.Ctx
		if ctx == nil {
			return
		}
		ctx.Save()
		// Restore unconditionally so fill style and transform never leak
		// into whatever draws next on the shared context
		defer ctx.Restore()

		fill := t.color
		if fill == "" {
			fill = "rgb(0, 0, 0)"
		}
		ctx.SetFillStyle(fill)
		ctx.SetFont(font)

		td, hasPos := TwoDOf(t.owner)
		if hasPos {
			ctx.Translate(td.X, td.Y+td.H)
		}
		ctx.FillText(t.text, 0, 0)

		// Write the rendered extent back so layout and collision logic
		// see the actual width
		if hasPos {
			td.W = ctx.MeasureText(t.text)
		}
	}
}
