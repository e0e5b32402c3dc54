/*
File : kodi-script-go/eval/eval_expressions.go
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/issadicko/kodi-script-go/function"
	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
)

// evalExpression dispatches one expression node.
func (ev *Evaluator) evalExpression(expr parser.ExpressionNode) objects.KodiObject {
	if errObj := ev.tick(); errObj != nil {
		return errObj
	}

	switch expr := expr.(type) {
	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: expr.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: expr.Value}
	case *parser.TemplateStringExpressionNode:
		return ev.evalTemplateString(expr)
	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: expr.Value}
	case *parser.NullLiteralExpressionNode:
		return &objects.Null{}
	case *parser.IdentifierExpressionNode:
		return ev.evalIdentifier(expr)
	case *parser.BinaryExpressionNode:
		return ev.evalBinaryExpression(expr)
	case *parser.UnaryExpressionNode:
		return ev.evalUnaryExpression(expr)
	case *parser.CallExpressionNode:
		return ev.evalCallExpression(expr)
	case *parser.MemberExpressionNode:
		return ev.evalMemberExpression(expr.Object, expr.Property, false)
	case *parser.SafeMemberExpressionNode:
		return ev.evalMemberExpression(expr.Object, expr.Property, true)
	case *parser.ElvisExpressionNode:
		return ev.evalElvisExpression(expr)
	case *parser.ArrayExpressionNode:
		return ev.evalArrayExpression(expr)
	case *parser.ObjectExpressionNode:
		return ev.evalObjectExpression(expr)
	case *parser.IndexExpressionNode:
		return ev.evalIndexExpression(expr)
	case *parser.FunctionLiteralExpressionNode:
		return &function.Function{Params: expr.Params, Body: expr.Body, Scp: ev.Scp}
	default:
		return &objects.Error{Message: fmt.Sprintf("unknown expression type %T", expr)}
	}
}

// evalTemplateString concatenates the template's parts: literal parts
// stand for themselves, embedded expressions stringify with the same
// rule `+` uses for strings.
func (ev *Evaluator) evalTemplateString(expr *parser.TemplateStringExpressionNode) objects.KodiObject {
	var sb strings.Builder
	for _, part := range expr.Parts {
		value := ev.evalExpression(part)
		if objects.IsError(value) {
			return value
		}
		sb.WriteString(value.ToString())
	}
	return &objects.String{Value: sb.String()}
}

// evalIdentifier resolves a name through the runtime search order:
// variables first, then host-registered functions, then builtins.
func (ev *Evaluator) evalIdentifier(expr *parser.IdentifierExpressionNode) objects.KodiObject {
	if value, ok := ev.Scp.LookUp(expr.Name); ok {
		return value
	}
	if host, ok := ev.HostFuncs[expr.Name]; ok {
		return host
	}
	if builtin, ok := ev.Builtins[expr.Name]; ok {
		return builtin
	}
	return &objects.Error{Message: fmt.Sprintf("undefined variable: %s", expr.Name)}
}

// evalBinaryExpression evaluates both operands and applies the operator.
// Both sides always evaluate; the logical operators do not short-circuit,
// which keeps operation counts deterministic.
func (ev *Evaluator) evalBinaryExpression(expr *parser.BinaryExpressionNode) objects.KodiObject {
	left := ev.evalExpression(expr.Left)
	if objects.IsError(left) {
		return left
	}
	right := ev.evalExpression(expr.Right)
	if objects.IsError(right) {
		return right
	}

	switch expr.Operation.Literal {
	case "+":
		return evalPlus(left, right)
	case "-":
		return &objects.Number{Value: objects.ToNumber(left) - objects.ToNumber(right)}
	case "*":
		return &objects.Number{Value: objects.ToNumber(left) * objects.ToNumber(right)}
	case "/":
		divisor := objects.ToNumber(right)
		if divisor == 0 {
			return &objects.Error{Message: "division by zero"}
		}
		return &objects.Number{Value: objects.ToNumber(left) / divisor}
	case "%":
		return &objects.Number{Value: modNumber(objects.ToNumber(left), objects.ToNumber(right))}
	case "==":
		return &objects.Boolean{Value: strictEquals(left, right)}
	case "!=":
		return &objects.Boolean{Value: !strictEquals(left, right)}
	case "<", "<=", ">", ">=":
		return compareValues(expr.Operation.Literal, left, right)
	case "&&", "and":
		return &objects.Boolean{Value: objects.IsTruthy(left) && objects.IsTruthy(right)}
	case "||", "or":
		return &objects.Boolean{Value: objects.IsTruthy(left) || objects.IsTruthy(right)}
	default:
		return &objects.Error{Message: fmt.Sprintf("unknown operator: %s", expr.Operation.Literal)}
	}
}

// evalUnaryExpression applies `-` (numeric negation) or `!`/`not`
// (logical negation by the truthiness rule).
func (ev *Evaluator) evalUnaryExpression(expr *parser.UnaryExpressionNode) objects.KodiObject {
	operand := ev.evalExpression(expr.Right)
	if objects.IsError(operand) {
		return operand
	}

	switch expr.Operation.Literal {
	case "-":
		return &objects.Number{Value: -objects.ToNumber(operand)}
	case "!", "not":
		return &objects.Boolean{Value: !objects.IsTruthy(operand)}
	default:
		return &objects.Error{Message: fmt.Sprintf("unknown operator: %s", expr.Operation.Literal)}
	}
}

// evalCallExpression evaluates the callee and the arguments in order,
// then applies through the common call path shared with the builtin
// bridge.
func (ev *Evaluator) evalCallExpression(expr *parser.CallExpressionNode) objects.KodiObject {
	callee := ev.evalExpression(expr.Callee)
	if objects.IsError(callee) {
		return callee
	}

	args := make([]objects.KodiObject, len(expr.Arguments))
	for i, argExpr := range expr.Arguments {
		arg := ev.evalExpression(argExpr)
		if objects.IsError(arg) {
			return arg
		}
		args[i] = arg
	}

	return ev.CallFunction(callee, args...)
}

// evalMemberExpression looks up a property on an object. With the safe
// form a null receiver yields null; otherwise non-object receivers fail
// with a property-access error. A missing key yields null.
func (ev *Evaluator) evalMemberExpression(objectExpr parser.ExpressionNode, property string, safe bool) objects.KodiObject {
	receiver := ev.evalExpression(objectExpr)
	if objects.IsError(receiver) {
		return receiver
	}

	if receiver.GetType() == objects.NullType {
		if safe {
			return &objects.Null{}
		}
		return &objects.Error{Message: fmt.Sprintf("cannot access property %q on null", property)}
	}

	obj, ok := receiver.(*objects.Object)
	if !ok {
		return &objects.Error{Message: fmt.Sprintf("cannot access property %q on %s", property, receiver.GetType())}
	}

	if value, ok := obj.Get(property); ok {
		return value
	}
	return &objects.Null{}
}

// evalElvisExpression yields the left value when it is not null,
// otherwise evaluates and yields the right value. The test is null-ness,
// not truthiness: `0 ?: 1` yields 0.
func (ev *Evaluator) evalElvisExpression(expr *parser.ElvisExpressionNode) objects.KodiObject {
	left := ev.evalExpression(expr.Left)
	if objects.IsError(left) {
		return left
	}
	if left.GetType() != objects.NullType {
		return left
	}
	return ev.evalExpression(expr.Right)
}

// evalArrayExpression evaluates the elements in order.
func (ev *Evaluator) evalArrayExpression(expr *parser.ArrayExpressionNode) objects.KodiObject {
	elements := make([]objects.KodiObject, len(expr.Elements))
	for i, elExpr := range expr.Elements {
		el := ev.evalExpression(elExpr)
		if objects.IsError(el) {
			return el
		}
		elements[i] = el
	}
	return &objects.Array{Elements: elements}
}

// evalObjectExpression evaluates the values in declared order; duplicate
// keys keep the last value at the key's original position.
func (ev *Evaluator) evalObjectExpression(expr *parser.ObjectExpressionNode) objects.KodiObject {
	obj := objects.NewObject()
	for _, pair := range expr.Pairs {
		value := ev.evalExpression(pair.Value)
		if objects.IsError(value) {
			return value
		}
		obj.Set(pair.Key, value)
	}
	return obj
}

// evalIndexExpression subscripts arrays (numeric index, null when out of
// bounds), objects (index looked up by its string form), and strings
// (one code point, null when out of bounds). Anything else is not
// indexable.
func (ev *Evaluator) evalIndexExpression(expr *parser.IndexExpressionNode) objects.KodiObject {
	receiver := ev.evalExpression(expr.Object)
	if objects.IsError(receiver) {
		return receiver
	}
	index := ev.evalExpression(expr.Index)
	if objects.IsError(index) {
		return index
	}

	switch receiver := receiver.(type) {
	case *objects.Array:
		num, ok := index.(*objects.Number)
		if !ok {
			return &objects.Error{Message: fmt.Sprintf("array index must be a number, got %s", index.GetType())}
		}
		i := int(num.Value)
		if i < 0 || i >= len(receiver.Elements) {
			return &objects.Null{}
		}
		return receiver.Elements[i]
	case *objects.Object:
		if value, ok := receiver.Get(index.ToString()); ok {
			return value
		}
		return &objects.Null{}
	case *objects.String:
		num, ok := index.(*objects.Number)
		if !ok {
			return &objects.Error{Message: fmt.Sprintf("string index must be a number, got %s", index.GetType())}
		}
		runes := []rune(receiver.Value)
		i := int(num.Value)
		if i < 0 || i >= len(runes) {
			return &objects.Null{}
		}
		return &objects.String{Value: string(runes[i])}
	default:
		return &objects.Error{Message: fmt.Sprintf("cannot index %s", receiver.GetType())}
	}
}
