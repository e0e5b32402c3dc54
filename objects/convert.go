/*
File : kodi-script-go/objects/convert.go
*/
package objects

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FromGo converts a native Go value into its KodiScript equivalent.
// It is used when hosts inject variables and when JSON documents are
// decoded into script values. Maps convert with their keys sorted so two
// conversions of the same document produce the same insertion order.
func FromGo(v interface{}) KodiObject {
	switch v := v.(type) {
	case nil:
		return &Null{}
	case KodiObject:
		return v
	case bool:
		return &Boolean{Value: v}
	case float64:
		return &Number{Value: v}
	case float32:
		return &Number{Value: float64(v)}
	case int:
		return &Number{Value: float64(v)}
	case int32:
		return &Number{Value: float64(v)}
	case int64:
		return &Number{Value: float64(v)}
	case string:
		return &String{Value: v}
	case []interface{}:
		elements := make([]KodiObject, len(v))
		for i, el := range v {
			elements[i] = FromGo(el)
		}
		return &Array{Elements: elements}
	case []string:
		elements := make([]KodiObject, len(v))
		for i, el := range v {
			elements[i] = &String{Value: el}
		}
		return &Array{Elements: elements}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromGo(v[k]))
		}
		return obj
	default:
		return &String{Value: fmt.Sprintf("%v", v)}
	}
}

// ToNumber applies the language's numeric coercion: numbers pass
// through, booleans become 1 or 0, null becomes 0, and strings parse as
// decimal numbers (non-numeric strings coerce to 0).
func ToNumber(obj KodiObject) float64 {
	switch obj := obj.(type) {
	case *Number:
		return obj.Value
	case *Boolean:
		if obj.Value {
			return 1
		}
		return 0
	case *String:
		v, err := strconv.ParseFloat(strings.TrimSpace(obj.Value), 64)
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

// ToGo converts a KodiScript value back into a native Go value: null to
// nil, numbers to float64, arrays to []interface{}, and objects to
// map[string]interface{}. Functions and callables convert to their
// display representation since they have no Go-native equivalent.
func ToGo(obj KodiObject) interface{} {
	switch obj := obj.(type) {
	case *Null, nil:
		return nil
	case *Boolean:
		return obj.Value
	case *Number:
		return obj.Value
	case *String:
		return obj.Value
	case *Array:
		elements := make([]interface{}, len(obj.Elements))
		for i, el := range obj.Elements {
			elements[i] = ToGo(el)
		}
		return elements
	case *Object:
		pairs := make(map[string]interface{}, len(obj.Keys))
		for _, k := range obj.Keys {
			pairs[k] = ToGo(obj.Pairs[k])
		}
		return pairs
	default:
		return obj.ToString()
	}
}
