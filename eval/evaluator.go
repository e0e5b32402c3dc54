/*
File : kodi-script-go/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for the KodiScript
// language. It walks the parser's AST against a scope chain seeded with
// host variables, resolving names through variables, host-registered
// functions, and builtins, in that order. Execution is bounded by an
// operation counter and an optional wall-clock deadline, both checked at
// every node.
package eval

import (
	"fmt"
	"time"

	"github.com/issadicko/kodi-script-go/function"
	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
	"github.com/issadicko/kodi-script-go/scope"
	"github.com/issadicko/kodi-script-go/std"
)

// maxCallDepth bounds user-level recursion so runaway scripts surface a
// limit error instead of overflowing the host stack.
const maxCallDepth = 10000

// HostFunction is the Go shape of a host-registered function. A returned
// error terminates the run with the error's message captured verbatim.
type HostFunction func(args ...objects.KodiObject) (objects.KodiObject, error)

// hostCallable adapts a HostFunction into a callable script value.
type hostCallable struct {
	name string
	fn   HostFunction
}

func (h *hostCallable) GetType() objects.KodiType { return objects.BuiltinType }
func (h *hostCallable) ToString() string          { return "host(" + h.name + ")" }
func (h *hostCallable) ToObject() string          { return "<host[" + h.name + "]>" }

// Evaluator holds the state for one script run: the scope chain, the
// builtin registry, host-registered functions, the captured output, and
// the execution limits. Two concurrent runs must use two independent
// Evaluator instances.
type Evaluator struct {
	Scp       *scope.Scope            // Root frame for variable bindings
	Builtins  map[string]*std.Builtin // Builtin functions keyed by name
	HostFuncs map[string]KodiCallable // Host-registered callables keyed by name
	Output    *OutputBuffer           // Captured print output, one entry per call

	// MaxOperations caps the number of AST nodes evaluated; zero or
	// negative disables the cap.
	MaxOperations int
	// Deadline is the absolute wall-clock instant after which the run
	// halts; the zero time disables it.
	Deadline time.Time

	operations int // Nodes evaluated so far
	depth      int // Current function activation depth
}

// KodiCallable is the common shape of host callables stored in the
// evaluator's host-function map.
type KodiCallable = objects.KodiObject

// NewEvaluator creates an evaluator with a fresh root scope, a fresh
// builtin registry, and an empty output buffer.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:       scope.NewScope(nil),
		Builtins:  std.NewRegistry(),
		HostFuncs: make(map[string]KodiCallable),
		Output:    NewOutputBuffer(),
	}
}

// SetVariable seeds a variable binding in the root scope before the run.
func (ev *Evaluator) SetVariable(name string, value objects.KodiObject) {
	ev.Scp.Bind(name, value)
}

// RegisterFunction registers a host function under the given name. Host
// functions resolve after variables and before builtins.
func (ev *Evaluator) RegisterFunction(name string, fn HostFunction) {
	ev.HostFuncs[name] = &hostCallable{name: name, fn: fn}
}

// Eval runs a program and returns its value: the value of a top-level
// `return`, otherwise the last statement's value, or null for an empty
// program. A run that fails returns an Error value; output captured
// before the failure stays in the buffer.
func (ev *Evaluator) Eval(root *parser.RootNode) objects.KodiObject {
	if errObj := ev.tick(); errObj != nil {
		return errObj
	}

	var result objects.KodiObject = &objects.Null{}
	for _, stmt := range root.Statements {
		result = ev.evalStatement(stmt)
		if objects.IsError(result) {
			return result
		}
		if rv, ok := result.(*objects.ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}

// tick advances the operation counter and checks both execution limits.
// It is called each time the evaluator begins evaluating any AST node, so
// a tight loop halts within one node evaluation of a limit being crossed.
func (ev *Evaluator) tick() *objects.Error {
	ev.operations++
	if ev.MaxOperations > 0 && ev.operations > ev.MaxOperations {
		return &objects.Error{Message: fmt.Sprintf("max operations exceeded (limit %d)", ev.MaxOperations)}
	}
	if !ev.Deadline.IsZero() && time.Now().After(ev.Deadline) {
		return &objects.Error{Message: "execution timeout"}
	}
	return nil
}

// CallFunction applies a function value to already-evaluated arguments.
// This implements the std.Runtime bridge, letting higher-order builtins
// invoke user-defined functions, host callables, and other builtins.
func (ev *Evaluator) CallFunction(fn objects.KodiObject, args ...objects.KodiObject) objects.KodiObject {
	switch fn := fn.(type) {
	case *function.Function:
		return ev.applyFunction(fn, args)
	case *std.Builtin:
		return fn.Callback(ev, ev.Output, args...)
	case *hostCallable:
		return ev.applyHostCallable(fn, args)
	default:
		return &objects.Error{Message: fmt.Sprintf("not a function: %s", fn.GetType())}
	}
}

// applyFunction activates a user-defined function: a fresh frame extends
// the captured scope, parameters bind positionally (missing arguments
// bind to null, extras are ignored), and the body runs in that frame.
// On normal completion the value is the last statement's; a return signal
// yields its value. The caller's frame is restored on exit, so nothing
// bound inside the call leaks out.
func (ev *Evaluator) applyFunction(fn *function.Function, args []objects.KodiObject) objects.KodiObject {
	if ev.depth >= maxCallDepth {
		return &objects.Error{Message: "max call depth exceeded"}
	}

	frame := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		if i < len(args) {
			frame.Bind(param, args[i])
		} else {
			frame.Bind(param, &objects.Null{})
		}
	}

	saved := ev.Scp
	ev.Scp = frame
	ev.depth++
	defer func() {
		ev.Scp = saved
		ev.depth--
	}()

	var result objects.KodiObject = &objects.Null{}
	for _, stmt := range fn.Body.Statements {
		result = ev.evalStatement(stmt)
		if objects.IsError(result) {
			return result
		}
		if rv, ok := result.(*objects.ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}

// applyHostCallable invokes a host-registered function, converting a Go
// error into a run-terminating Error value with the message kept
// verbatim.
func (ev *Evaluator) applyHostCallable(host *hostCallable, args []objects.KodiObject) objects.KodiObject {
	result, err := host.fn(args...)
	if err != nil {
		return &objects.Error{Message: err.Error()}
	}
	if result == nil {
		return &objects.Null{}
	}
	return result
}
