/*
File : kodi-script-go/std/common.go
*/

// This file defines the core builtin functions shared by every script:
// printing, string/number conversion, length, and the type predicates.
package std

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/issadicko/kodi-script-go/objects"
)

// commonMethods lists the always-available core functions.
var commonMethods = []*Builtin{
	{Name: "print", Callback: print},       // Appends one entry to the run's output
	{Name: "toString", Callback: toString}, // Converts a value to its display string
	{Name: "toNumber", Callback: toNumber}, // Coerces a value to a number
	{Name: "length", Callback: length},     // Length of a string, array, or object

	{Name: "typeOf", Callback: typeOfFunc}, // Returns the type name of a value
	{Name: "isNull", Callback: isNull},     // Checks for null
	{Name: "isNumber", Callback: isNumber}, // Checks for a number
	{Name: "isString", Callback: isString}, // Checks for a string
	{Name: "isBool", Callback: isBool},     // Checks for a boolean
}

// createError is a utility to build an Error value with a formatted
// message. Builtins signal failure by returning such a value; the
// evaluator terminates the run when it sees one.
func createError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// print appends the space-joined display representations of its
// arguments as one entry of the run's output. Each call is one entry.
func print(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.ToString()
	}
	fmt.Fprintln(writer, strings.Join(parts, " "))
	return &Null{}
}

// toString converts a value to its display representation.
func toString(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `toString`. got=%d, want=1", len(args))
	}
	return &String{Value: args[0].ToString()}
}

// toNumber coerces a value to a number using the language rule:
// booleans become 1/0, null becomes 0, numeric strings parse, and
// everything else coerces to 0.
func toNumber(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `toNumber`. got=%d, want=1", len(args))
	}
	return &Number{Value: objects.ToNumber(args[0])}
}

// length returns the length of a string (in code points), array, or
// object.
func length(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `length`. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Number{Value: float64(utf8.RuneCountInString(arg.Value))}
	case *Array:
		return &Number{Value: float64(len(arg.Elements))}
	case *Object:
		return &Number{Value: float64(len(arg.Keys))}
	default:
		return createError("argument to `length` not supported, got %s", arg.GetType())
	}
}

// typeOfFunc returns the script-visible type name of its argument.
func typeOfFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `typeOf`. got=%d, want=1", len(args))
	}
	return &String{Value: objects.TypeName(args[0])}
}

// isNull reports whether the argument is null.
func isNull(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `isNull`. got=%d, want=1", len(args))
	}
	return &Boolean{Value: args[0].GetType() == objects.NullType}
}

// isNumber reports whether the argument is a number.
func isNumber(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `isNumber`. got=%d, want=1", len(args))
	}
	return &Boolean{Value: args[0].GetType() == objects.NumberType}
}

// isString reports whether the argument is a string.
func isString(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `isString`. got=%d, want=1", len(args))
	}
	return &Boolean{Value: args[0].GetType() == objects.StringType}
}

// isBool reports whether the argument is a boolean.
func isBool(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `isBool`. got=%d, want=1", len(args))
	}
	return &Boolean{Value: args[0].GetType() == objects.BooleanType}
}
