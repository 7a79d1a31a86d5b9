package script

import (
	"strings"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vibecraft/component"
	"github.com/chrisuehlinger/vibecraft/entity"
	"github.com/chrisuehlinger/vibecraft/stage"
)

// StageBinder exposes a stage and its entities to a JavaScript runtime.
type StageBinder struct {
	runtime *Runtime
	stage   *stage.Stage
}

// NewStageBinder creates a binder for the given runtime.
func NewStageBinder(r *Runtime) *StageBinder {
	return &StageBinder{runtime: r}
}

// BindStage installs the global `stage` object:
//
//	stage.create("2D, Canvas, Text") -> entity
//	stage.step()                     -> bool (whether a repaint happened)
//	stage.width, stage.height
func (b *StageBinder) BindStage(s *stage.Stage) {
	b.stage = s
	vm := b.runtime.VM()

	obj := vm.NewObject()

	obj.Set("create", func(call goja.FunctionCall) goja.Value {
		e := s.Create(parseComponentList(call.Argument(0).String())...)
		return b.entityObject(e)
	})

	obj.Set("step", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(s.Step())
	})

	w, h := s.Size()
	obj.Set("width", w)
	obj.Set("height", h)

	vm.Set("stage", obj)
}

// parseComponentList maps a comma-separated component list to component
// instances. Unknown names are ignored.
func parseComponentList(list string) []any {
	var comps []any
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(name) {
		case "2D":
			comps = append(comps, &component.TwoD{})
		case "DOM":
			comps = append(comps, component.NewDOM())
		case "Canvas":
			comps = append(comps, &component.Canvas{})
		case "Text":
			comps = append(comps, component.NewText())
		}
	}
	return comps
}

// entityObject wraps an entity in a JS object. The text methods keep the
// original polymorphic call shapes: no argument is a getter, an object
// merges, a function is evaluated against the entity.
func (b *StageBinder) entityObject(e *entity.Entity) *goja.Object {
	vm := b.runtime.VM()
	obj := vm.NewObject()

	obj.Set("id", uint64(e.ID()))

	// attr() -> {x, y, w, h}; attr({x: 10, ...}) merges and returns the entity
	obj.Set("attr", func(call goja.FunctionCall) goja.Value {
		td, ok := component.TwoDOf(e)
		if !ok {
			return goja.Undefined()
		}
		if len(call.Arguments) == 0 {
			out := vm.NewObject()
			out.Set("x", td.X)
			out.Set("y", td.Y)
			out.Set("w", td.W)
			out.Set("h", td.H)
			return out
		}
		if arg, ok := call.Argument(0).(*goja.Object); ok {
			for _, key := range arg.Keys() {
				v := arg.Get(key).ToFloat()
				switch key {
				case "x":
					td.X = v
				case "y":
					td.Y = v
				case "w":
					td.W = v
				case "h":
					td.H = v
				}
			}
			e.Trigger(entity.EventChange, nil)
		}
		return obj
	})

	// text() getter; text(value | function) setter
	obj.Set("text", func(call goja.FunctionCall) goja.Value {
		txt, ok := component.TextOf(e)
		if !ok {
			return goja.Undefined()
		}
		if len(call.Arguments) == 0 {
			return vm.ToValue(txt.Text())
		}
		arg := call.Argument(0)
		if fn, isFn := goja.AssertFunction(arg); isFn {
			txt.SetText(func() string {
				res, err := fn(goja.Undefined())
				if err != nil {
					return ""
				}
				return res.String()
			})
		} else {
			txt.SetText(arg.Export())
		}
		return obj
	})

	// textColor(spec, strength?)
	obj.Set("textColor", func(call goja.FunctionCall) goja.Value {
		txt, ok := component.TextOf(e)
		if !ok {
			return goja.Undefined()
		}
		spec := call.Argument(0).String()
		if len(call.Arguments) > 1 {
			txt.SetTextColor(spec, call.Argument(1).ToFloat())
		} else {
			txt.SetTextColor(spec)
		}
		return obj
	})

	// textFont(key) getter; textFont(key, value) setter; textFont(object) merge
	obj.Set("textFont", func(call goja.FunctionCall) goja.Value {
		txt, ok := component.TextOf(e)
		if !ok {
			return goja.Undefined()
		}
		arg := call.Argument(0)
		if m, isObj := arg.(*goja.Object); isObj {
			fields := make(map[string]string)
			for _, key := range m.Keys() {
				fields[key] = m.Get(key).String()
			}
			txt.SetFontMap(fields)
			return obj
		}
		key := arg.String()
		if len(call.Arguments) < 2 {
			return vm.ToValue(txt.Font(key))
		}
		txt.SetFont(key, call.Argument(1).String())
		return obj
	})

	obj.Set("unselectable", func(call goja.FunctionCall) goja.Value {
		if txt, ok := component.TextOf(e); ok {
			txt.Unselectable()
		}
		return obj
	})

	obj.Set("bind", func(call goja.FunctionCall) goja.Value {
		event := call.Argument(0).String()
		fn, isFn := goja.AssertFunction(call.Argument(1))
		if !isFn {
			return goja.Undefined()
		}
		token := e.Bind(event, func(payload any) {
			fn(goja.Undefined(), vm.ToValue(payload))
		})
		return vm.ToValue(token)
	})

	obj.Set("trigger", func(call goja.FunctionCall) goja.Value {
		e.Trigger(call.Argument(0).String(), call.Argument(1).Export())
		return obj
	})

	obj.Set("destroy", func(call goja.FunctionCall) goja.Value {
		e.Destroy()
		return goja.Undefined()
	})

	return obj
}
