// Package script provides JavaScript scripting for the framework using the
// goja engine (pure Go ES5.1+ implementation). Games register a stage and
// drive entities from scripts.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Runtime wraps a goja JavaScript runtime with framework bindings.
type Runtime struct {
	vm *goja.Runtime
	mu sync.Mutex

	// Console output sink, stdout by default
	consoleOut io.Writer
}

// NewRuntime creates a new JavaScript runtime with a console installed.
func NewRuntime() *Runtime {
	r := &Runtime{
		vm:         goja.New(),
		consoleOut: os.Stdout,
	}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetConsoleOutput redirects console.* output, mainly for tests.
func (r *Runtime) SetConsoleOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consoleOut = w
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Recover from panics in the goja parser/runtime
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		return nil, fmt.Errorf("script error: %w", err)
	}
	return result, nil
}

// setupConsole installs console.log/warn/error.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()

	write := func(level string) func(call goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = arg.String()
			}
			fmt.Fprintf(r.consoleOut, "[%s] %s\n", level, strings.Join(parts, " "))
			return goja.Undefined()
		}
	}

	console.Set("log", write("log"))
	console.Set("info", write("info"))
	console.Set("warn", write("warn"))
	console.Set("error", write("error"))
	r.vm.Set("console", console)
}
