/*
File : kodi-script-go/std/arrays.go
*/

// This file implements the builtin array functions for the KodiScript
// language: accessors, slicing, sorting, and the higher-order functions
// (map, filter, reduce, find, findIndex) which invoke user-defined
// function arguments through the Runtime bridge.
package std

import (
	"io"
	"sort"
	"strings"

	"github.com/issadicko/kodi-script-go/objects"
)

var arrayMethods = []*Builtin{
	{Name: "size", Callback: size},           // Number of elements
	{Name: "first", Callback: first},         // First element or null
	{Name: "last", Callback: last},           // Last element or null
	{Name: "reverse", Callback: reverse},     // New array in reverse order
	{Name: "slice", Callback: sliceFunc},     // Subsequence [start, end)
	{Name: "sort", Callback: sortFunc},       // Sorted copy, "asc" or "desc"
	{Name: "sortBy", Callback: sortBy},       // Sorted copy by object field
	{Name: "filter", Callback: filterFunc},   // Elements passing a predicate
	{Name: "map", Callback: mapFunc},         // Transformed copy
	{Name: "reduce", Callback: reduceFunc},   // Left fold with initial value
	{Name: "find", Callback: find},           // First element passing a predicate
	{Name: "findIndex", Callback: findIndex}, // Index of first match, -1 if absent
}

// arrayArg extracts a required array argument.
func arrayArg(name string, args []KodiObject, pos int) (*Array, *Error) {
	arr, ok := args[pos].(*Array)
	if !ok {
		return nil, createError("argument %d to `%s` must be an array, got %s",
			pos+1, name, args[pos].GetType())
	}
	return arr, nil
}

// size returns the number of elements in an array (objects and strings
// report their lengths too, mirroring `length`).
func size(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return length(rt, writer, args...)
}

// first returns the first element of an array, or null when empty.
func first(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `first`. got=%d, want=1", len(args))
	}
	arr, errObj := arrayArg("first", args, 0)
	if errObj != nil {
		return errObj
	}
	if len(arr.Elements) == 0 {
		return &Null{}
	}
	return arr.Elements[0]
}

// last returns the last element of an array, or null when empty.
func last(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `last`. got=%d, want=1", len(args))
	}
	arr, errObj := arrayArg("last", args, 0)
	if errObj != nil {
		return errObj
	}
	if len(arr.Elements) == 0 {
		return &Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

// reverse returns a new array with the elements in reverse order.
func reverse(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `reverse`. got=%d, want=1", len(args))
	}
	arr, errObj := arrayArg("reverse", args, 0)
	if errObj != nil {
		return errObj
	}
	reversed := make([]KodiObject, len(arr.Elements))
	for i, el := range arr.Elements {
		reversed[len(arr.Elements)-1-i] = el
	}
	return &Array{Elements: reversed}
}

// sliceFunc returns the subsequence [start, end) of an array; end is
// optional and defaults to the array length. Out-of-range indices clamp.
func sliceFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 2 || len(args) > 3 {
		return createError("wrong number of arguments to `slice`. got=%d, want=2 or 3", len(args))
	}
	arr, errObj := arrayArg("slice", args, 0)
	if errObj != nil {
		return errObj
	}
	start := int(objects.ToNumber(args[1]))
	end := len(arr.Elements)
	if len(args) == 3 {
		end = int(objects.ToNumber(args[2]))
	}

	if start < 0 {
		start = 0
	}
	if end > len(arr.Elements) {
		end = len(arr.Elements)
	}
	if start >= len(arr.Elements) || end <= start {
		return &Array{Elements: make([]KodiObject, 0)}
	}

	sliced := make([]KodiObject, end-start)
	copy(sliced, arr.Elements[start:end])
	return &Array{Elements: sliced}
}

// compareForSort orders two values for sorting: nulls first, then
// numbers numerically, strings lexicographically, and anything else by
// display representation. Returns a negative, zero, or positive value.
func compareForSort(a, b KodiObject) int {
	aNull := a == nil || a.GetType() == objects.NullType
	bNull := b == nil || b.GetType() == objects.NullType
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	if an, ok := a.(*Number); ok {
		if bn, ok := b.(*Number); ok {
			switch {
			case an.Value < bn.Value:
				return -1
			case an.Value > bn.Value:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(a.ToString(), b.ToString())
}

// sortOrder decodes an optional "asc"/"desc" argument; ascending is the
// default.
func sortOrder(args []KodiObject, pos int) bool {
	if len(args) <= pos {
		return false
	}
	return strings.EqualFold(args[pos].ToString(), "desc")
}

// sortFunc returns a stably sorted copy of an array in ascending or
// descending order.
func sortFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 1 || len(args) > 2 {
		return createError("wrong number of arguments to `sort`. got=%d, want=1 or 2", len(args))
	}
	arr, errObj := arrayArg("sort", args, 0)
	if errObj != nil {
		return errObj
	}
	desc := sortOrder(args, 1)

	sorted := make([]KodiObject, len(arr.Elements))
	copy(sorted, arr.Elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareForSort(sorted[i], sorted[j])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return &Array{Elements: sorted}
}

// sortBy returns a stably sorted copy of an array of objects, ordered by
// the named field. Elements that are not objects or lack the field sort
// with null keys, which order before non-null keys.
func sortBy(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 2 || len(args) > 3 {
		return createError("wrong number of arguments to `sortBy`. got=%d, want=2 or 3", len(args))
	}
	arr, errObj := arrayArg("sortBy", args, 0)
	if errObj != nil {
		return errObj
	}
	field := args[1].ToString()
	desc := sortOrder(args, 2)

	key := func(el KodiObject) KodiObject {
		obj, ok := el.(*Object)
		if !ok {
			return &Null{}
		}
		v, ok := obj.Get(field)
		if !ok {
			return &Null{}
		}
		return v
	}

	sorted := make([]KodiObject, len(arr.Elements))
	copy(sorted, arr.Elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareForSort(key(sorted[i]), key(sorted[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return &Array{Elements: sorted}
}

// filterFunc returns the elements for which the predicate is truthy.
func filterFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `filter`. got=%d, want=2", len(args))
	}
	arr, errObj := arrayArg("filter", args, 0)
	if errObj != nil {
		return errObj
	}

	kept := make([]KodiObject, 0)
	for _, el := range arr.Elements {
		result := rt.CallFunction(args[1], el)
		if objects.IsError(result) {
			return result
		}
		if objects.IsTruthy(result) {
			kept = append(kept, el)
		}
	}
	return &Array{Elements: kept}
}

// mapFunc returns a new array holding the function's result for each
// element.
func mapFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `map`. got=%d, want=2", len(args))
	}
	arr, errObj := arrayArg("map", args, 0)
	if errObj != nil {
		return errObj
	}

	mapped := make([]KodiObject, len(arr.Elements))
	for i, el := range arr.Elements {
		result := rt.CallFunction(args[1], el)
		if objects.IsError(result) {
			return result
		}
		mapped[i] = result
	}
	return &Array{Elements: mapped}
}

// reduceFunc folds an array from the left: acc = fn(acc, element),
// starting from the provided initial value.
func reduceFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 3 {
		return createError("wrong number of arguments to `reduce`. got=%d, want=3", len(args))
	}
	arr, errObj := arrayArg("reduce", args, 0)
	if errObj != nil {
		return errObj
	}

	acc := args[2]
	for _, el := range arr.Elements {
		acc = rt.CallFunction(args[1], acc, el)
		if objects.IsError(acc) {
			return acc
		}
	}
	return acc
}

// find returns the first element for which the predicate is truthy, or
// null when none matches.
func find(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `find`. got=%d, want=2", len(args))
	}
	arr, errObj := arrayArg("find", args, 0)
	if errObj != nil {
		return errObj
	}

	for _, el := range arr.Elements {
		result := rt.CallFunction(args[1], el)
		if objects.IsError(result) {
			return result
		}
		if objects.IsTruthy(result) {
			return el
		}
	}
	return &Null{}
}

// findIndex returns the index of the first element for which the
// predicate is truthy, or -1 when none matches.
func findIndex(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `findIndex`. got=%d, want=2", len(args))
	}
	arr, errObj := arrayArg("findIndex", args, 0)
	if errObj != nil {
		return errObj
	}

	for i, el := range arr.Elements {
		result := rt.CallFunction(args[1], el)
		if objects.IsError(result) {
			return result
		}
		if objects.IsTruthy(result) {
			return &Number{Value: float64(i)}
		}
	}
	return &Number{Value: -1}
}
