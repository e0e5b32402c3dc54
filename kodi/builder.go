/*
File : kodi-script-go/kodi/builder.go
*/
package kodi

import (
	"time"

	"github.com/issadicko/kodi-script-go/eval"
	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
)

// Builder assembles one script run: the source, injected variables,
// host-registered functions, and the execution limits. A builder is
// single-use; Execute runs the script once and subsequent calls report
// an error Result.
type Builder struct {
	source        string
	variables     map[string]objects.KodiObject
	functions     map[string]eval.HostFunction
	maxOperations int
	timeoutMillis int64
	executed      bool
}

// NewBuilder creates a builder for the given source.
func NewBuilder(source string) *Builder {
	return &Builder{
		source:    source,
		variables: make(map[string]objects.KodiObject),
		functions: make(map[string]eval.HostFunction),
	}
}

// WithVariable injects one variable, converting the Go value to its
// script equivalent.
func (b *Builder) WithVariable(name string, value interface{}) *Builder {
	b.variables[name] = objects.FromGo(value)
	return b
}

// WithVariables injects a map of variables in bulk.
func (b *Builder) WithVariables(vars map[string]interface{}) *Builder {
	for name, value := range vars {
		b.variables[name] = objects.FromGo(value)
	}
	return b
}

// WithFunction registers a host function under the given name. Host
// functions resolve after variables and before builtins; an error they
// return terminates the run with its message captured verbatim.
func (b *Builder) WithFunction(name string, fn eval.HostFunction) *Builder {
	b.functions[name] = fn
	return b
}

// WithMaxOperations caps the number of AST nodes the run may evaluate.
// Zero or negative disables the cap.
func (b *Builder) WithMaxOperations(n int) *Builder {
	b.maxOperations = n
	return b
}

// WithTimeout bounds the run to the given wall-clock budget in
// milliseconds, measured from the start of execution. Zero or negative
// disables the deadline.
func (b *Builder) WithTimeout(millis int64) *Builder {
	b.timeoutMillis = millis
	return b
}

// Execute parses and runs the script once, producing the full Result
// record. Parse and lexical errors surface in Result.Errors without
// evaluation; runtime errors preserve the output captured before the
// failure.
func (b *Builder) Execute() Result {
	if b.executed {
		return Result{Output: []string{}, Errors: []string{"builder already executed"}}
	}
	b.executed = true

	par := parser.NewParser(b.source)
	root := par.Parse()
	if par.HasErrors() {
		return Result{Output: []string{}, Errors: par.GetErrors()}
	}

	ev := eval.NewEvaluator()
	for name, value := range b.variables {
		ev.SetVariable(name, value)
	}
	for name, fn := range b.functions {
		ev.RegisterFunction(name, fn)
	}
	ev.MaxOperations = b.maxOperations
	if b.timeoutMillis > 0 {
		ev.Deadline = time.Now().Add(time.Duration(b.timeoutMillis) * time.Millisecond)
	}

	value := ev.Eval(root)
	if objects.IsError(value) {
		return Result{
			Output: ev.Output.Lines(),
			Errors: []string{value.ToString()},
		}
	}

	return Result{
		Value:  objects.ToGo(value),
		Output: ev.Output.Lines(),
		Errors: []string{},
	}
}
