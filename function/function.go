/*
File : kodi-script-go/function/function.go
*/

// Package function defines the user-defined function value. It lives in
// its own package because the value references parser nodes (the body)
// and a scope frame, and scope itself depends on objects; keeping it out
// of objects keeps the import graph acyclic.
package function

import (
	"strings"

	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
	"github.com/issadicko/kodi-script-go/scope"
)

// Function represents a user-defined function value in KodiScript.
// It captures the parameter names, the body block, and the scope frame in
// effect when the `fn` literal was evaluated (for closure support).
type Function struct {
	Params []string                   // Ordered parameter names
	Body   *parser.BlockStatementNode // Function body (statements to execute)
	Scp    *scope.Scope               // Captured frame for closures
}

// GetType returns the type identifier for this Function value.
func (f *Function) GetType() objects.KodiType {
	return objects.FunctionType
}

// ToString returns a display representation of the function. Printing a
// function is unspecified by the language but must never fail.
func (f *Function) ToString() string {
	return "fn(" + strings.Join(f.Params, ", ") + ")"
}

// ToObject returns a detailed representation of the function.
func (f *Function) ToObject() string {
	return "<function[" + f.ToString() + "]>"
}
