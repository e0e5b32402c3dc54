/*
File : kodi-script-go/scope/scope.go
*/

// Package scope implements the environment frames for the KodiScript
// evaluator. A Scope maps identifier names to runtime values and chains
// to the enclosing frame, which gives the language lexical lookup and
// closure capture.
package scope

import "github.com/issadicko/kodi-script-go/objects"

// Scope defines one environment frame for variable lifetime and
// accessibility.
//
// The evaluator creates exactly one frame per function activation; blocks,
// conditionals, and loop bodies evaluate in the frame that is already
// active. Both `let` and plain assignment bind on the active frame, so a
// name set inside a function call never leaks into the caller, while a
// name set inside a loop body is visible after the loop.
//
// Function values capture a pointer to the frame in effect at creation
// time. Calling a function extends the captured frame with a fresh
// activation frame, which makes recursion through `let f = fn(n) { ...
// f(n-1) ... }` resolve naturally: by call time the binding of `f` lives
// in the captured frame.
type Scope struct {
	// Variables maps variable names to their current values in this frame
	Variables map[string]objects.KodiObject

	// Parent points to the enclosing frame, forming a lookup chain.
	// nil indicates this is the root (per-run) frame.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// frame. A nil parent creates a root frame.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.KodiObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this frame and all parent
// frames, returning the nearest binding. Inner frames shadow outer ones.
func (s *Scope) LookUp(name string) (objects.KodiObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.KodiObject)
	}
	obj, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(name)
	}
	return obj, ok
}

// Bind writes a variable binding into this frame, creating or replacing
// it. Bindings in parent frames are untouched (shadowing is allowed).
func (s *Scope) Bind(name string, obj objects.KodiObject) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.KodiObject)
	}
	s.Variables[name] = obj
}
