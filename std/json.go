/*
File : kodi-script-go/std/json.go
*/

// This file defines the JSON builtin functions for the KodiScript
// language.
package std

import (
	"encoding/json"
	"io"

	"github.com/issadicko/kodi-script-go/objects"
)

var jsonMethods = []*Builtin{
	{Name: "jsonParse", Callback: jsonParse},         // JSON text to a value
	{Name: "jsonStringify", Callback: jsonStringify}, // Value to JSON text
}

// jsonParse decodes a JSON document into a KodiScript value. Objects
// decode with sorted keys so repeated parses of the same document
// produce the same insertion order.
func jsonParse(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `jsonParse`. got=%d, want=1", len(args))
	}
	if args[0].GetType() != objects.StringType {
		return createError("argument to `jsonParse` must be a string, got %s", args[0].GetType())
	}

	var data interface{}
	if err := json.Unmarshal([]byte(args[0].ToString()), &data); err != nil {
		return createError("failed to decode JSON: %v", err)
	}

	return objects.FromGo(data)
}

// jsonStringify encodes a KodiScript value as JSON text. Functions and
// callables have no JSON form and encode as their display strings.
func jsonStringify(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `jsonStringify`. got=%d, want=1", len(args))
	}

	bytes, err := json.Marshal(objects.ToGo(args[0]))
	if err != nil {
		return createError("failed to encode JSON: %v", err)
	}

	return &String{Value: string(bytes)}
}
