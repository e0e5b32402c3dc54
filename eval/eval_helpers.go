/*
File : kodi-script-go/eval/eval_helpers.go
*/
package eval

import (
	"fmt"
	"math"

	"github.com/issadicko/kodi-script-go/objects"
)

// evalPlus implements `+`: when either side is a string both sides
// stringify and concatenate; otherwise both sides coerce to numbers and
// add.
func evalPlus(left, right objects.KodiObject) objects.KodiObject {
	if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
		return &objects.String{Value: left.ToString() + right.ToString()}
	}
	return &objects.Number{Value: objects.ToNumber(left) + objects.ToNumber(right)}
}

// modNumber computes the remainder with the sign conventions of the
// language's doubles.
func modNumber(a, b float64) float64 {
	return math.Mod(a, b)
}

// strictEquals implements `==`: same kind and same value for the
// primitives, so a number never equals a string even when the digits
// match. Arrays, objects, and functions compare by identity.
func strictEquals(left, right objects.KodiObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}

	switch left := left.(type) {
	case *objects.Null:
		return true
	case *objects.Boolean:
		return left.Value == right.(*objects.Boolean).Value
	case *objects.Number:
		return left.Value == right.(*objects.Number).Value
	case *objects.String:
		return left.Value == right.(*objects.String).Value
	default:
		return left == right
	}
}

// compareValues implements the ordering operators: numeric for two
// numbers, lexicographic for two strings, and a type error for anything
// else.
func compareValues(op string, left, right objects.KodiObject) objects.KodiObject {
	if ln, ok := left.(*objects.Number); ok {
		if rn, ok := right.(*objects.Number); ok {
			return orderResult(op, ln.Value < rn.Value, ln.Value == rn.Value)
		}
	}
	if ls, ok := left.(*objects.String); ok {
		if rs, ok := right.(*objects.String); ok {
			return orderResult(op, ls.Value < rs.Value, ls.Value == rs.Value)
		}
	}
	return &objects.Error{Message: fmt.Sprintf("cannot compare %s with %s", left.GetType(), right.GetType())}
}

// orderResult turns a less-than/equals pair into the boolean result for
// the requested ordering operator.
func orderResult(op string, less, equal bool) *objects.Boolean {
	switch op {
	case "<":
		return &objects.Boolean{Value: less}
	case "<=":
		return &objects.Boolean{Value: less || equal}
	case ">":
		return &objects.Boolean{Value: !less && !equal}
	default: // ">="
		return &objects.Boolean{Value: !less}
	}
}
