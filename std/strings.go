/*
File : kodi-script-go/std/strings.go
*/

// This file defines the string builtin functions for the KodiScript
// language. All positional operations work on code points, not bytes, so
// Unicode text behaves consistently with lengths and indexing.
package std

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/issadicko/kodi-script-go/objects"
)

var stringMethods = []*Builtin{
	{Name: "substring", Callback: substring},     // Extracts [start, end) by code point
	{Name: "toUpperCase", Callback: toUpperCase}, // Uppercases a string
	{Name: "toLowerCase", Callback: toLowerCase}, // Lowercases a string
	{Name: "trim", Callback: trim},               // Strips surrounding whitespace
	{Name: "replace", Callback: replace},         // Replaces all occurrences
	{Name: "split", Callback: split},             // Splits on a separator
	{Name: "join", Callback: join},               // Joins array elements with a separator
	{Name: "contains", Callback: contains},       // Substring test
	{Name: "startsWith", Callback: startsWith},   // Prefix test
	{Name: "endsWith", Callback: endsWith},       // Suffix test
	{Name: "indexOf", Callback: indexOf},         // First occurrence, -1 if absent
	{Name: "repeat", Callback: repeat},           // Repeats a string n times
	{Name: "padLeft", Callback: padLeft},         // Pads on the left to a width
	{Name: "padRight", Callback: padRight},       // Pads on the right to a width
}

// stringArg extracts a required string argument, coercing non-strings via
// their display representation.
func stringArg(arg KodiObject) string {
	return arg.ToString()
}

// substring extracts the code points in [start, end) from a string. The
// end index is optional and defaults to the string length; out-of-range
// indices clamp.
func substring(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 2 || len(args) > 3 {
		return createError("wrong number of arguments to `substring`. got=%d, want=2 or 3", len(args))
	}
	runes := []rune(stringArg(args[0]))
	start := int(objects.ToNumber(args[1]))
	end := len(runes)
	if len(args) == 3 {
		end = int(objects.ToNumber(args[2]))
	}

	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= len(runes) || end <= start {
		return &String{Value: ""}
	}
	return &String{Value: string(runes[start:end])}
}

// toUpperCase uppercases a string.
func toUpperCase(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `toUpperCase`. got=%d, want=1", len(args))
	}
	return &String{Value: strings.ToUpper(stringArg(args[0]))}
}

// toLowerCase lowercases a string.
func toLowerCase(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `toLowerCase`. got=%d, want=1", len(args))
	}
	return &String{Value: strings.ToLower(stringArg(args[0]))}
}

// trim strips leading and trailing whitespace.
func trim(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `trim`. got=%d, want=1", len(args))
	}
	return &String{Value: strings.TrimSpace(stringArg(args[0]))}
}

// replace substitutes every occurrence of a search string.
func replace(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 3 {
		return createError("wrong number of arguments to `replace`. got=%d, want=3", len(args))
	}
	return &String{Value: strings.ReplaceAll(stringArg(args[0]), stringArg(args[1]), stringArg(args[2]))}
}

// split breaks a string on a separator. An empty separator splits into
// individual code points.
func split(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `split`. got=%d, want=2", len(args))
	}
	str := stringArg(args[0])
	sep := stringArg(args[1])

	var parts []string
	if sep == "" {
		for _, r := range str {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(str, sep)
	}

	elements := make([]KodiObject, len(parts))
	for i, part := range parts {
		elements[i] = &String{Value: part}
	}
	return &Array{Elements: elements}
}

// join concatenates the display representations of an array's elements
// with a separator.
func join(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `join`. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("first argument to `join` must be an array, got %s", args[0].GetType())
	}
	sep := stringArg(args[1])

	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.ToString()
	}
	return &String{Value: strings.Join(parts, sep)}
}

// contains reports whether a string contains a substring.
func contains(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `contains`. got=%d, want=2", len(args))
	}
	return &Boolean{Value: strings.Contains(stringArg(args[0]), stringArg(args[1]))}
}

// startsWith reports whether a string begins with a prefix.
func startsWith(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `startsWith`. got=%d, want=2", len(args))
	}
	return &Boolean{Value: strings.HasPrefix(stringArg(args[0]), stringArg(args[1]))}
}

// endsWith reports whether a string ends with a suffix.
func endsWith(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `endsWith`. got=%d, want=2", len(args))
	}
	return &Boolean{Value: strings.HasSuffix(stringArg(args[0]), stringArg(args[1]))}
}

// indexOf returns the code-point position of the first occurrence of a
// substring, including position 0, or -1 when absent.
func indexOf(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `indexOf`. got=%d, want=2", len(args))
	}
	str := stringArg(args[0])
	idx := strings.Index(str, stringArg(args[1]))
	if idx < 0 {
		return &Number{Value: -1}
	}
	return &Number{Value: float64(utf8.RuneCountInString(str[:idx]))}
}

// repeat concatenates n copies of a string.
func repeat(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `repeat`. got=%d, want=2", len(args))
	}
	n := int(objects.ToNumber(args[1]))
	if n < 0 {
		n = 0
	}
	return &String{Value: strings.Repeat(stringArg(args[0]), n)}
}

// padLeft pads a string on the left with a pad string (default space)
// until it reaches the requested code-point width.
func padLeft(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return padString(args, true)
}

// padRight pads a string on the right with a pad string (default space)
// until it reaches the requested code-point width.
func padRight(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return padString(args, false)
}

// padString implements padLeft/padRight: the pad string repeats
// cyclically and is truncated to fit the target width exactly.
func padString(args []KodiObject, left bool) KodiObject {
	if len(args) < 2 || len(args) > 3 {
		return createError("wrong number of arguments to `pad`. got=%d, want=2 or 3", len(args))
	}
	str := stringArg(args[0])
	width := int(objects.ToNumber(args[1]))
	pad := " "
	if len(args) == 3 {
		pad = stringArg(args[2])
	}
	if pad == "" {
		return &String{Value: str}
	}

	current := utf8.RuneCountInString(str)
	if current >= width {
		return &String{Value: str}
	}

	padRunes := []rune(pad)
	filler := make([]rune, 0, width-current)
	for i := 0; len(filler) < width-current; i++ {
		filler = append(filler, padRunes[i%len(padRunes)])
	}

	if left {
		return &String{Value: string(filler) + str}
	}
	return &String{Value: str + string(filler)}
}
