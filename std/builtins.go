/*
File : kodi-script-go/std/builtins.go
*/

// Package std defines the builtin functions available in the KodiScript
// language. It includes I/O (print), string, math, random, type, array,
// JSON, encoding, crypto-hash, and date/time functions. Builtins receive
// already-evaluated arguments; the higher-order ones (map, filter,
// reduce, find, findIndex) re-enter the evaluator only through
// the Runtime bridge they are handed at call time.
package std

import (
	"io"

	"github.com/issadicko/kodi-script-go/objects"
)

// Local names for the object types used throughout the catalogue.
type (
	KodiObject = objects.KodiObject
	KodiType   = objects.KodiType
	Null       = objects.Null
	Boolean    = objects.Boolean
	Number     = objects.Number
	String     = objects.String
	Array      = objects.Array
	Object     = objects.Object
	Error      = objects.Error
)

// Runtime is the capability the evaluator hands to builtins so that
// higher-order functions can invoke user-defined function values they
// receive as arguments. Builtins must not enter the evaluator any other
// way.
type Runtime interface {
	// CallFunction applies a function value (user-defined or callable)
	// to the given arguments and returns its result, which may be an
	// Error value.
	CallFunction(fn KodiObject, args ...KodiObject) KodiObject
}

// CallbackFunc is the function signature for builtin implementations.
// The writer receives everything `print` emits; each write is one output
// entry of the run.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject

// Builtin represents a builtin function with a name and its
// implementation callback.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "print")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type identifier for a builtin callable.
func (b *Builtin) GetType() objects.KodiType { return objects.BuiltinType }

// ToString returns a display representation of the builtin.
func (b *Builtin) ToString() string { return "builtin(" + b.Name + ")" }

// ToObject returns a detailed representation of the builtin.
func (b *Builtin) ToObject() string { return "<builtin[" + b.Name + "]>" }

// NewRegistry builds the full builtin catalogue keyed by name. The
// registry is freshly allocated so independent evaluators never share
// mutable state; the Builtin values themselves are stateless.
func NewRegistry() map[string]*Builtin {
	registry := make(map[string]*Builtin)
	for _, group := range [][]*Builtin{
		commonMethods,
		stringMethods,
		mathMethods,
		arrayMethods,
		jsonMethods,
		cryptoMethods,
		timeMethods,
	} {
		for _, builtin := range group {
			registry[builtin.Name] = builtin
		}
	}
	return registry
}
