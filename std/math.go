/*
File : kodi-script-go/std/math.go
*/

// This file defines the math and random builtin functions for the
// KodiScript language: absolute value, rounding, powers, roots,
// trigonometry, logarithms, and the random number helpers.
package std

import (
	"io"
	"math"
	"math/rand"

	"github.com/issadicko/kodi-script-go/objects"
)

var mathMethods = []*Builtin{
	{Name: "abs", Callback: abs},     // Absolute value
	{Name: "floor", Callback: floor}, // Round toward negative infinity
	{Name: "ceil", Callback: ceil},   // Round toward positive infinity
	{Name: "round", Callback: round}, // Round half away from zero
	{Name: "min", Callback: minFunc}, // Smallest of the arguments
	{Name: "max", Callback: maxFunc}, // Largest of the arguments
	{Name: "pow", Callback: pow},     // base raised to exponent
	{Name: "sqrt", Callback: sqrt},   // Square root
	{Name: "sin", Callback: sin},     // Sine of the radian argument
	{Name: "cos", Callback: cos},     // Cosine of the radian argument
	{Name: "tan", Callback: tan},     // Tangent of the radian argument
	{Name: "log", Callback: logFunc}, // Natural logarithm
	{Name: "log10", Callback: log10}, // Decimal logarithm
	{Name: "exp", Callback: exp},     // e raised to the argument

	{Name: "random", Callback: random},       // Random float in [0, 1)
	{Name: "randomInt", Callback: randomInt}, // Random integer in [min, max]
}

// unaryMath wraps a one-argument math function over numeric coercion.
func unaryMath(name string, f func(float64) float64, args []KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `%s`. got=%d, want=1", name, len(args))
	}
	return &Number{Value: f(objects.ToNumber(args[0]))}
}

func abs(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("abs", math.Abs, args)
}

func floor(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("floor", math.Floor, args)
}

func ceil(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("ceil", math.Ceil, args)
}

func round(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("round", math.Round, args)
}

func sqrt(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("sqrt", math.Sqrt, args)
}

func sin(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("sin", math.Sin, args)
}

func cos(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("cos", math.Cos, args)
}

func tan(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("tan", math.Tan, args)
}

func logFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("log", math.Log, args)
}

func log10(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("log10", math.Log10, args)
}

func exp(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return unaryMath("exp", math.Exp, args)
}

// minFunc returns the smallest of its numeric arguments.
func minFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 2 {
		return createError("wrong number of arguments to `min`. got=%d, want=2 or more", len(args))
	}
	best := objects.ToNumber(args[0])
	for _, arg := range args[1:] {
		best = math.Min(best, objects.ToNumber(arg))
	}
	return &Number{Value: best}
}

// maxFunc returns the largest of its numeric arguments.
func maxFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 2 {
		return createError("wrong number of arguments to `max`. got=%d, want=2 or more", len(args))
	}
	best := objects.ToNumber(args[0])
	for _, arg := range args[1:] {
		best = math.Max(best, objects.ToNumber(arg))
	}
	return &Number{Value: best}
}

// pow raises base to exponent.
func pow(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `pow`. got=%d, want=2", len(args))
	}
	return &Number{Value: math.Pow(objects.ToNumber(args[0]), objects.ToNumber(args[1]))}
}

// random returns a uniform float in [0, 1).
func random(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 0 {
		return createError("wrong number of arguments to `random`. got=%d, want=0", len(args))
	}
	return &Number{Value: rand.Float64()}
}

// randomInt returns a uniform integer in the inclusive range [min, max].
func randomInt(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `randomInt`. got=%d, want=2", len(args))
	}
	lo := int64(objects.ToNumber(args[0]))
	hi := int64(objects.ToNumber(args[1]))
	if hi < lo {
		lo, hi = hi, lo
	}
	return &Number{Value: float64(lo + rand.Int63n(hi-lo+1))}
}
