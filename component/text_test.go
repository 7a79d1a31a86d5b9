package component

import (
	"testing"

	"github.com/chrisuehlinger/vibecraft/canvas"
	"github.com/chrisuehlinger/vibecraft/entity"
)

func newTextEntity(t *testing.T) (*entity.Entity, *Text) {
	t.Helper()
	w := entity.NewWorld()
	e := w.Create()
	e.Attach(&TwoD{})
	txt := NewText()
	e.Attach(txt)
	return e, txt
}

func countChanges(e *entity.Entity) *int {
	n := new(int)
	e.Bind(entity.EventChange, func(any) { *n++ })
	return n
}

func TestSetTextLiteral(t *testing.T) {
	_, txt := newTextEntity(t)

	txt.SetText("hello")
	if got := txt.Text(); got != "hello" {
		t.Errorf("Text() = %q, want hello", got)
	}

	txt.SetText("")
	if got := txt.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestSetTextFunctionEvaluatedOnce(t *testing.T) {
	e, txt := newTextEntity(t)

	calls := 0
	txt.SetText(func() string {
		calls++
		return "computed"
	})
	if calls != 1 {
		t.Fatalf("function invoked %d times at set, want 1", calls)
	}
	if got := txt.Text(); got != "computed" {
		t.Errorf("Text() = %q, want computed", got)
	}

	// Later draws must not re-invoke the function
	ctx := canvas.NewContext2D(100, 50)
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceCanvas, Ctx: ctx})
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceCanvas, Ctx: ctx})
	if calls != 1 {
		t.Errorf("function invoked %d times after draws, want 1", calls)
	}
}

func TestSetTextEntityFunction(t *testing.T) {
	e, txt := newTextEntity(t)

	txt.SetText(func(owner *entity.Entity) string {
		if owner != e {
			t.Error("function did not receive the owning entity")
		}
		return "from entity"
	})
	if got := txt.Text(); got != "from entity" {
		t.Errorf("Text() = %q, want from entity", got)
	}
}

func TestSetTextPermissiveCoercion(t *testing.T) {
	_, txt := newTextEntity(t)
	txt.SetText(42)
	if got := txt.Text(); got != "42" {
		t.Errorf("Text() = %q, want 42", got)
	}
}

func TestChangeEmissionPerMutator(t *testing.T) {
	e, txt := newTextEntity(t)
	changes := countChanges(e)

	txt.SetText("a")
	if *changes != 1 {
		t.Errorf("changes after SetText = %d, want 1", *changes)
	}

	txt.SetTextColor("#ff0000")
	if *changes != 2 {
		t.Errorf("changes after SetTextColor = %d, want 2", *changes)
	}

	txt.SetFont(FontWeight, "bold")
	if *changes != 3 {
		t.Errorf("changes after SetFont = %d, want 3", *changes)
	}

	txt.SetFontMap(map[string]string{FontSize: "12px", FontFamily: "Arial"})
	if *changes != 4 {
		t.Errorf("changes after SetFontMap = %d, want 4 (one per call)", *changes)
	}

	// Getter forms emit nothing
	_ = txt.Text()
	_ = txt.Font(FontWeight)
	_ = txt.TextColor()
	if *changes != 4 {
		t.Errorf("changes after getters = %d, want 4", *changes)
	}
}

func TestSetFontMergeSemantics(t *testing.T) {
	_, txt := newTextEntity(t)

	txt.SetFont(FontWeight, "bold")
	txt.SetFont(FontSize, "12px")
	txt.SetFontMap(map[string]string{FontType: "italic"})
	txt.SetFontMap(map[string]string{FontFamily: "Arial"})

	if got := txt.Font(FontWeight); got != "bold" {
		t.Errorf("weight = %q, want bold (merge must not clobber)", got)
	}
	if got := txt.Font(FontSize); got != "12px" {
		t.Errorf("size = %q, want 12px", got)
	}
	if got := txt.Font(FontType); got != "italic" {
		t.Errorf("type = %q, want italic", got)
	}
	if got := txt.Font(FontFamily); got != "Arial" {
		t.Errorf("family = %q, want Arial", got)
	}
}

func TestFontStringLiteralConcatenation(t *testing.T) {
	_, txt := newTextEntity(t)

	// Defaults only: two leading spaces from the blank type and weight
	if got := txt.FontString(); got != "  10px sans-serif" {
		t.Errorf("FontString() = %q, want %q", got, "  10px sans-serif")
	}

	txt.SetFont(FontWeight, "bold")
	if got := txt.FontString(); got != " bold 10px sans-serif" {
		t.Errorf("FontString() = %q, want %q", got, " bold 10px sans-serif")
	}

	txt.SetFontMap(map[string]string{
		FontType:   "italic",
		FontSize:   "12px",
		FontFamily: "Georgia",
	})
	if got := txt.FontString(); got != "italic bold 12px Georgia" {
		t.Errorf("FontString() = %q, want %q", got, "italic bold 12px Georgia")
	}
}

func TestStoredDescriptorKeepsEmptyFields(t *testing.T) {
	_, txt := newTextEntity(t)
	_ = txt.FontString()
	if got := txt.Font(FontSize); got != "" {
		t.Errorf("stored size = %q, want empty (defaults apply at render only)", got)
	}
	if got := txt.Font(FontFamily); got != "" {
		t.Errorf("stored family = %q, want empty", got)
	}
}

func TestSetTextColorResolution(t *testing.T) {
	_, txt := newTextEntity(t)

	txt.SetTextColor("#ff0000")
	if got := txt.TextColor(); got != "rgb(255, 0, 0)" {
		t.Errorf("TextColor = %q, want rgb(255, 0, 0)", got)
	}
	if got := txt.Strength(); got != 1 {
		t.Errorf("Strength = %v, want 1", got)
	}

	txt.SetTextColor("#00ff00", 0.5)
	if got := txt.TextColor(); got != "rgba(0, 255, 0, 0.5)" {
		t.Errorf("TextColor = %q, want rgba(0, 255, 0, 0.5)", got)
	}
	if got := txt.Strength(); got != 0.5 {
		t.Errorf("Strength = %v, want 0.5", got)
	}

	// Malformed specs are stored verbatim, not rejected
	txt.SetTextColor("bogus")
	if got := txt.TextColor(); got != "bogus" {
		t.Errorf("TextColor = %q, want bogus", got)
	}
}

func TestCanvasDrawPath(t *testing.T) {
	e, txt := newTextEntity(t)
	td, _ := TwoDOf(e)
	td.X, td.Y, td.H = 10, 20, 5
	td.W = 999 // must be overwritten by the readback

	txt.SetText("hi")
	ctx := canvas.NewContext2D(120, 60)
	ctx.SetFillStyle("#123456") // state that must survive the draw
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceCanvas, Ctx: ctx})

	// Width readback: cached width equals the measured width of "hi" in
	// the composed font, independent of the previous value
	measure := canvas.NewContext2D(1, 1)
	measure.SetFont(txt.FontString())
	if want := measure.MeasureText("hi"); td.W != want {
		t.Errorf("cached width = %v, want %v", td.W, want)
	}

	// Text pixels land below the translated origin (baseline at y=25)
	painted := false
	for y := 15; y < 25; y++ {
		for x := 10; x < 25; x++ {
			if ctx.Canvas().GetPixel(x, y).A != 0 {
				painted = true
			}
		}
	}
	if !painted {
		t.Error("no pixels painted near the entity's baseline")
	}

	// Context state restored unconditionally
	if got := ctx.FillStyle(); got != "#123456" {
		t.Errorf("fill style leaked: %q", got)
	}
	if got := ctx.Font(); got != canvas.DefaultFont {
		t.Errorf("font leaked: %q", got)
	}
}

func TestCanvasDrawDefaultsToOpaqueBlack(t *testing.T) {
	e, txt := newTextEntity(t)
	txt.SetText("x")

	ctx := canvas.NewContext2D(40, 20)
	ctx.SetFillStyle("#ffffff")
	ctx.Save()
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceCanvas, Ctx: ctx})
	ctx.Restore()

	// With no color set the glyph must be opaque black
	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 40; x++ {
			p := ctx.Canvas().GetPixel(x, y)
			if p.A == 255 && p.R == 0 && p.G == 0 && p.B == 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no opaque black pixel painted")
	}
}

func TestDOMDrawPath(t *testing.T) {
	w := entity.NewWorld()
	e := w.Create()
	e.Attach(&TwoD{})
	d := NewDOM()
	e.Attach(d)
	txt := NewText()
	e.Attach(txt)

	txt.SetText("<b>x</b>")
	txt.SetTextColor("#ff0000")
	txt.SetFont(FontWeight, "bold")

	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceDOM, Element: d.Element})

	// Literal injection, no escaping
	if got := d.Element.InnerHTML(); got != "<b>x</b>" {
		t.Errorf("InnerHTML = %q, want <b>x</b>", got)
	}
	if got := d.Element.Style().GetPropertyValue("color"); got != "rgb(255, 0, 0)" {
		t.Errorf("color style = %q, want rgb(255, 0, 0)", got)
	}
	if got := d.Element.Style().GetPropertyValue("font"); got != " bold 10px sans-serif" {
		t.Errorf("font style = %q, want %q", got, " bold 10px sans-serif")
	}
}

func TestDOMDrawWithoutColorLeavesColorUnset(t *testing.T) {
	w := entity.NewWorld()
	e := w.Create()
	d := NewDOM()
	e.Attach(d)
	txt := NewText()
	e.Attach(txt)
	txt.SetText("plain")

	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceDOM, Element: d.Element})

	if got := d.Element.Style().GetPropertyValue("color"); got != "" {
		t.Errorf("color style = %q, want unset", got)
	}
}

func TestUnselectable(t *testing.T) {
	// Without the DOM capability: no state change, no emission
	e, txt := newTextEntity(t)
	changes := countChanges(e)
	txt.Unselectable()
	if *changes != 0 {
		t.Errorf("changes without DOM capability = %d, want 0", *changes)
	}

	// With the DOM capability: styles applied, one emission
	w := entity.NewWorld()
	e2 := w.Create()
	d := NewDOM()
	e2.Attach(d)
	txt2 := NewText()
	e2.Attach(txt2)
	changes2 := countChanges(e2)

	txt2.Unselectable()
	if *changes2 != 1 {
		t.Errorf("changes with DOM capability = %d, want 1", *changes2)
	}
	for _, prop := range []string{
		"-webkit-touch-callout", "-webkit-user-select", "-khtml-user-select",
		"-moz-user-select", "-ms-user-select", "user-select",
	} {
		if got := d.Element.Style().GetPropertyValue(prop); got != "none" {
			t.Errorf("style %s = %q, want none", prop, got)
		}
	}
}

func TestDrawIgnoresForeignPayloads(t *testing.T) {
	e, txt := newTextEntity(t)
	txt.SetText("x")
	// Neither of these may panic
	e.Trigger(entity.EventDraw, nil)
	e.Trigger(entity.EventDraw, "bogus")
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceCanvas})
	e.Trigger(entity.EventDraw, &DrawEvent{Kind: SurfaceDOM})
}
