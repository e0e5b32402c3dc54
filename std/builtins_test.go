/*
File : kodi-script-go/std/builtins_test.go
*/
package std

import (
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issadicko/kodi-script-go/objects"
)

// callBuiltin invokes a registered builtin directly. The Runtime handle
// is nil because the functions under test here never re-enter the
// evaluator; the higher-order bridge is covered by the eval tests.
func callBuiltin(t *testing.T, name string, args ...KodiObject) KodiObject {
	t.Helper()
	registry := NewRegistry()
	builtin, ok := registry[name]
	require.Truef(t, ok, "builtin %q not registered", name)
	return builtin.Callback(nil, io.Discard, args...)
}

func str(s string) *String  { return &String{Value: s} }
func num(v float64) *Number { return &Number{Value: v} }
func arr(els ...KodiObject) *Array {
	return &Array{Elements: els}
}

// TestRegistry_Catalogue verifies every documented builtin is present.
func TestRegistry_Catalogue(t *testing.T) {
	names := []string{
		"print",
		"toString", "toNumber", "length", "substring", "toUpperCase", "toLowerCase",
		"trim", "replace", "split", "join", "contains", "startsWith", "endsWith",
		"indexOf", "repeat", "padLeft", "padRight",
		"abs", "floor", "ceil", "round", "min", "max", "pow", "sqrt",
		"sin", "cos", "tan", "log", "log10", "exp",
		"random", "randomInt", "randomUUID",
		"typeOf", "isNull", "isNumber", "isString", "isBool",
		"size", "first", "last", "reverse", "slice", "sort", "sortBy",
		"filter", "map", "reduce", "find", "findIndex",
		"jsonParse", "jsonStringify",
		"base64Encode", "base64Decode", "urlEncode", "urlDecode",
		"md5", "sha1", "sha256",
		"now", "date", "time", "datetime", "timestamp", "formatDate",
		"year", "month", "day", "hour", "minute", "second", "dayOfWeek",
		"addDays", "addHours", "diffDays",
	}

	registry := NewRegistry()
	for _, name := range names {
		assert.Containsf(t, registry, name, "missing builtin %q", name)
	}
}

// TestStringBuiltins exercises the string catalogue.
func TestStringBuiltins(t *testing.T) {
	assert.Equal(t, "ell", callBuiltin(t, "substring", str("hello"), num(1), num(4)).ToString())
	assert.Equal(t, "llo", callBuiltin(t, "substring", str("hello"), num(2)).ToString())
	assert.Equal(t, "", callBuiltin(t, "substring", str("hello"), num(9)).ToString())
	assert.Equal(t, "él", callBuiltin(t, "substring", str("héllo"), num(1), num(3)).ToString())

	assert.Equal(t, "HI", callBuiltin(t, "toUpperCase", str("hi")).ToString())
	assert.Equal(t, "hi", callBuiltin(t, "toLowerCase", str("HI")).ToString())
	assert.Equal(t, "x", callBuiltin(t, "trim", str("  x \t")).ToString())
	assert.Equal(t, "b-b", callBuiltin(t, "replace", str("a-a"), str("a"), str("b")).ToString())

	parts := callBuiltin(t, "split", str("a,b,c"), str(",")).(*Array)
	require.Len(t, parts.Elements, 3)
	assert.Equal(t, "b", parts.Elements[1].ToString())

	chars := callBuiltin(t, "split", str("ab"), str("")).(*Array)
	assert.Len(t, chars.Elements, 2)

	joined := callBuiltin(t, "join", arr(num(1), str("a"), &Boolean{Value: true}), str("-"))
	assert.Equal(t, "1-a-true", joined.ToString())

	assert.True(t, callBuiltin(t, "contains", str("hello"), str("ell")).(*Boolean).Value)
	assert.True(t, callBuiltin(t, "startsWith", str("hello"), str("he")).(*Boolean).Value)
	assert.True(t, callBuiltin(t, "endsWith", str("hello"), str("lo")).(*Boolean).Value)

	// indexOf returns real positions including 0, and -1 when absent.
	assert.Equal(t, 0.0, callBuiltin(t, "indexOf", str("hello"), str("he")).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "indexOf", str("hello"), str("ll")).(*Number).Value)
	assert.Equal(t, -1.0, callBuiltin(t, "indexOf", str("hello"), str("xyz")).(*Number).Value)

	assert.Equal(t, "ababab", callBuiltin(t, "repeat", str("ab"), num(3)).ToString())
	assert.Equal(t, "007", callBuiltin(t, "padLeft", str("7"), num(3), str("0")).ToString())
	assert.Equal(t, "7..", callBuiltin(t, "padRight", str("7"), num(3), str(".")).ToString())
	assert.Equal(t, "  x", callBuiltin(t, "padLeft", str("x"), num(3)).ToString())
	assert.Equal(t, "long", callBuiltin(t, "padLeft", str("long"), num(2)).ToString())
}

// TestMathBuiltins exercises the math catalogue.
func TestMathBuiltins(t *testing.T) {
	assert.Equal(t, 5.0, callBuiltin(t, "abs", num(-5)).(*Number).Value)
	assert.Equal(t, 1.0, callBuiltin(t, "floor", num(1.9)).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "ceil", num(1.1)).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "round", num(1.5)).(*Number).Value)
	assert.Equal(t, 1.0, callBuiltin(t, "min", num(3), num(1), num(2)).(*Number).Value)
	assert.Equal(t, 3.0, callBuiltin(t, "max", num(3), num(1), num(2)).(*Number).Value)
	assert.Equal(t, 8.0, callBuiltin(t, "pow", num(2), num(3)).(*Number).Value)
	assert.Equal(t, 3.0, callBuiltin(t, "sqrt", num(9)).(*Number).Value)
	assert.InDelta(t, 0.0, callBuiltin(t, "sin", num(0)).(*Number).Value, 1e-12)
	assert.InDelta(t, 1.0, callBuiltin(t, "cos", num(0)).(*Number).Value, 1e-12)
	assert.InDelta(t, 0.0, callBuiltin(t, "tan", num(0)).(*Number).Value, 1e-12)
	assert.InDelta(t, 1.0, callBuiltin(t, "log", num(2.718281828459045)).(*Number).Value, 1e-12)
	assert.Equal(t, 2.0, callBuiltin(t, "log10", num(100)).(*Number).Value)
	assert.Equal(t, 1.0, callBuiltin(t, "exp", num(0)).(*Number).Value)

	// Numeric coercion applies to string arguments.
	assert.Equal(t, 4.0, callBuiltin(t, "abs", str("-4")).(*Number).Value)
}

// TestRandomBuiltins verifies ranges and the UUID shape.
func TestRandomBuiltins(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := callBuiltin(t, "random").(*Number).Value
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)

		n := callBuiltin(t, "randomInt", num(1), num(6)).(*Number).Value
		assert.GreaterOrEqual(t, n, 1.0)
		assert.LessOrEqual(t, n, 6.0)
		assert.Equal(t, n, float64(int64(n)), "randomInt yields integers")
	}

	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	id := callBuiltin(t, "randomUUID").ToString()
	assert.Regexp(t, uuidPattern, id)
	assert.NotEqual(t, id, callBuiltin(t, "randomUUID").ToString())
}

// TestArrayBuiltins exercises the non-higher-order array catalogue.
func TestArrayBuiltins(t *testing.T) {
	xs := arr(num(3), num(1), num(2))

	assert.Equal(t, 3.0, callBuiltin(t, "size", xs).(*Number).Value)
	assert.Equal(t, 3.0, callBuiltin(t, "first", xs).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "last", xs).(*Number).Value)
	assert.Equal(t, objects.NullType, callBuiltin(t, "first", arr()).GetType())
	assert.Equal(t, objects.NullType, callBuiltin(t, "last", arr()).GetType())

	assert.Equal(t, "[2,1,3]", callBuiltin(t, "reverse", xs).ToString())
	assert.Equal(t, "[3,1,2]", xs.ToString(), "reverse copies")

	assert.Equal(t, "[1,2]", callBuiltin(t, "slice", arr(num(0), num(1), num(2), num(3)), num(1), num(3)).ToString())
	assert.Equal(t, "[2,3]", callBuiltin(t, "slice", arr(num(0), num(1), num(2), num(3)), num(2)).ToString())
	assert.Equal(t, "[]", callBuiltin(t, "slice", xs, num(9)).ToString())

	assert.Equal(t, "[1,2,3]", callBuiltin(t, "sort", xs).ToString())
	assert.Equal(t, "[3,2,1]", callBuiltin(t, "sort", xs, str("desc")).ToString())
	assert.Equal(t, `["apple","banana","cherry"]`,
		callBuiltin(t, "sort", arr(str("banana"), str("cherry"), str("apple"))).ToString())
}

// TestSortBy verifies field ordering, including null keys for elements
// without the field.
func TestSortBy(t *testing.T) {
	person := func(name string, age float64) *Object {
		o := objects.NewObject()
		o.Set("name", str(name))
		o.Set("age", num(age))
		return o
	}

	people := arr(person("carol", 35), person("alice", 30), person("bob", 25))

	sorted := callBuiltin(t, "sortBy", people, str("age")).(*Array)
	names := make([]string, 3)
	for i, el := range sorted.Elements {
		v, _ := el.(*Object).Get("name")
		names[i] = v.ToString()
	}
	assert.Equal(t, []string{"bob", "alice", "carol"}, names)

	sorted = callBuiltin(t, "sortBy", people, str("age"), str("desc")).(*Array)
	v, _ := sorted.Elements[0].(*Object).Get("name")
	assert.Equal(t, "carol", v.ToString())

	// Elements without the field sort with null keys, first.
	mixed := arr(person("zed", 50), num(7))
	sorted = callBuiltin(t, "sortBy", mixed, str("age")).(*Array)
	assert.Equal(t, objects.NumberType, sorted.Elements[0].GetType())
}

// TestJSONBuiltins verifies parse/stringify round-tripping.
func TestJSONBuiltins(t *testing.T) {
	parsed := callBuiltin(t, "jsonParse", str(`{"b":[1,2],"a":"x"}`))
	obj, ok := parsed.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys, "parsed keys are sorted")

	text := callBuiltin(t, "jsonStringify", parsed).ToString()
	assert.Equal(t, `{"a":"x","b":[1,2]}`, text)

	// Normalised documents are stable under a second round trip.
	again := callBuiltin(t, "jsonStringify", callBuiltin(t, "jsonParse", str(text))).ToString()
	assert.Equal(t, text, again)

	assert.Equal(t, objects.ErrorType, callBuiltin(t, "jsonParse", str("{nope")).GetType())
	assert.Equal(t, "[1,null,true]", callBuiltin(t, "jsonStringify",
		arr(num(1), &Null{}, &Boolean{Value: true})).ToString())
}

// TestCryptoBuiltins verifies the hex digests and encodings against
// known vectors.
func TestCryptoBuiltins(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", callBuiltin(t, "md5", str("hello")).ToString())
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", callBuiltin(t, "sha1", str("hello")).ToString())
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		callBuiltin(t, "sha256", str("hello")).ToString())

	assert.Equal(t, "aGVsbG8=", callBuiltin(t, "base64Encode", str("hello")).ToString())
	assert.Equal(t, "hello", callBuiltin(t, "base64Decode", str("aGVsbG8=")).ToString())
	assert.Equal(t, objects.ErrorType, callBuiltin(t, "base64Decode", str("!!!")).GetType())

	assert.Equal(t, "a+b%26c", callBuiltin(t, "urlEncode", str("a b&c")).ToString())
	assert.Equal(t, "a b&c", callBuiltin(t, "urlDecode", str("a+b%26c")).ToString())
}

// TestTimeBuiltins verifies the calendar functions over a fixed
// timestamp, computing expectations through the same local zone.
func TestTimeBuiltins(t *testing.T) {
	ref := time.Date(2024, time.March, 9, 14, 30, 45, 0, time.Local)
	ts := float64(ref.UnixMilli())

	assert.Equal(t, ref.Format("2006-01-02"), callBuiltin(t, "date", num(ts)).ToString())
	assert.Equal(t, ref.Format("15:04:05"), callBuiltin(t, "time", num(ts)).ToString())
	assert.Equal(t, ref.Format("2006-01-02 15:04:05"), callBuiltin(t, "datetime", num(ts)).ToString())

	assert.Equal(t, 2024.0, callBuiltin(t, "year", num(ts)).(*Number).Value)
	assert.Equal(t, 3.0, callBuiltin(t, "month", num(ts)).(*Number).Value)
	assert.Equal(t, 9.0, callBuiltin(t, "day", num(ts)).(*Number).Value)
	assert.Equal(t, 14.0, callBuiltin(t, "hour", num(ts)).(*Number).Value)
	assert.Equal(t, 30.0, callBuiltin(t, "minute", num(ts)).(*Number).Value)
	assert.Equal(t, 45.0, callBuiltin(t, "second", num(ts)).(*Number).Value)
	assert.Equal(t, float64(int(ref.Weekday())), callBuiltin(t, "dayOfWeek", num(ts)).(*Number).Value)

	// timestamp parses what datetime renders.
	back := callBuiltin(t, "timestamp", str(ref.Format("2006-01-02 15:04:05")))
	assert.Equal(t, ts, back.(*Number).Value)
	assert.Equal(t, objects.ErrorType, callBuiltin(t, "timestamp", str("not a date")).GetType())

	formatted := callBuiltin(t, "formatDate", num(ts), str("Y/m/d H:i:s")).ToString()
	assert.Equal(t, ref.Format("2006/01/02 15:04:05"), formatted)
	assert.Equal(t, ref.Format("2006-01-02 15:04:05"), callBuiltin(t, "formatDate", num(ts)).ToString())

	// Arithmetic stays in milliseconds.
	assert.Equal(t, ts+2*86400000, callBuiltin(t, "addDays", num(ts), num(2)).(*Number).Value)
	assert.Equal(t, ts+3*3600000, callBuiltin(t, "addHours", num(ts), num(3)).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "diffDays", num(ts+2*86400000), num(ts)).(*Number).Value)
	assert.Equal(t, -2.0, callBuiltin(t, "diffDays", num(ts), num(ts+2*86400000)).(*Number).Value)

	nowMillis := callBuiltin(t, "now").(*Number).Value
	assert.InDelta(t, float64(time.Now().UnixMilli()), nowMillis, 5000)
}

// TestTypeBuiltins verifies typeOf and the predicates.
func TestTypeBuiltins(t *testing.T) {
	assert.Equal(t, "number", callBuiltin(t, "typeOf", num(1)).ToString())
	assert.Equal(t, "string", callBuiltin(t, "typeOf", str("x")).ToString())
	assert.Equal(t, "null", callBuiltin(t, "typeOf", &Null{}).ToString())
	assert.Equal(t, "array", callBuiltin(t, "typeOf", arr()).ToString())
	assert.Equal(t, "object", callBuiltin(t, "typeOf", objects.NewObject()).ToString())
	assert.Equal(t, "boolean", callBuiltin(t, "typeOf", &Boolean{Value: true}).ToString())

	assert.True(t, callBuiltin(t, "isNull", &Null{}).(*Boolean).Value)
	assert.True(t, callBuiltin(t, "isNumber", num(1)).(*Boolean).Value)
	assert.True(t, callBuiltin(t, "isString", str("")).(*Boolean).Value)
	assert.True(t, callBuiltin(t, "isBool", &Boolean{}).(*Boolean).Value)
	assert.False(t, callBuiltin(t, "isNumber", str("1")).(*Boolean).Value)
}

// TestConversionBuiltins verifies toString/toNumber/length behaviour.
func TestConversionBuiltins(t *testing.T) {
	assert.Equal(t, "42", callBuiltin(t, "toString", num(42)).ToString())
	assert.Equal(t, "3.5", callBuiltin(t, "toString", num(3.5)).ToString())
	assert.Equal(t, 42.0, callBuiltin(t, "toNumber", str("42")).(*Number).Value)
	assert.Equal(t, 0.0, callBuiltin(t, "toNumber", str("nope")).(*Number).Value)
	assert.Equal(t, 1.0, callBuiltin(t, "toNumber", &Boolean{Value: true}).(*Number).Value)

	assert.Equal(t, 5.0, callBuiltin(t, "length", str("héllo")).(*Number).Value)
	assert.Equal(t, 2.0, callBuiltin(t, "length", arr(num(1), num(2))).(*Number).Value)
	assert.Equal(t, objects.ErrorType, callBuiltin(t, "length", num(5)).GetType())
}
