/*
File : kodi-script-go/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
)

// evalStatement dispatches one statement node. Every statement yields a
// value (blocks and programs use the last one); errors and return
// signals pass through unchanged so they propagate to the nearest
// function activation.
func (ev *Evaluator) evalStatement(stmt parser.StatementNode) objects.KodiObject {
	if errObj := ev.tick(); errObj != nil {
		return errObj
	}

	switch stmt := stmt.(type) {
	case *parser.LetStatementNode:
		return ev.evalLetStatement(stmt)
	case *parser.AssignmentStatementNode:
		return ev.evalAssignmentStatement(stmt)
	case *parser.IfStatementNode:
		return ev.evalIfStatement(stmt)
	case *parser.ForInStatementNode:
		return ev.evalForInStatement(stmt)
	case *parser.WhileStatementNode:
		return ev.evalWhileStatement(stmt)
	case *parser.ReturnStatementNode:
		return ev.evalReturnStatement(stmt)
	case *parser.BlockStatementNode:
		return ev.evalBlockStatement(stmt)
	case *parser.ExpressionStatementNode:
		return ev.evalExpression(stmt.Expr)
	default:
		return &objects.Error{Message: fmt.Sprintf("unknown statement type %T", stmt)}
	}
}

// evalLetStatement evaluates the right-hand side and binds the name on
// the active frame. The statement yields the bound value.
func (ev *Evaluator) evalLetStatement(stmt *parser.LetStatementNode) objects.KodiObject {
	value := ev.evalExpression(stmt.Value)
	if objects.IsError(value) {
		return value
	}
	ev.Scp.Bind(stmt.Name, value)
	return value
}

// evalAssignmentStatement shares binding semantics with `let`: the name
// is set on the active frame regardless of outer bindings.
func (ev *Evaluator) evalAssignmentStatement(stmt *parser.AssignmentStatementNode) objects.KodiObject {
	value := ev.evalExpression(stmt.Value)
	if objects.IsError(value) {
		return value
	}
	ev.Scp.Bind(stmt.Name, value)
	return value
}

// evalIfStatement branches on the condition's truthiness. A missing else
// branch yields null.
func (ev *Evaluator) evalIfStatement(stmt *parser.IfStatementNode) objects.KodiObject {
	condition := ev.evalExpression(stmt.Condition)
	if objects.IsError(condition) {
		return condition
	}

	if objects.IsTruthy(condition) {
		return ev.evalStatement(stmt.Then)
	}
	if stmt.Else != nil {
		return ev.evalStatement(stmt.Else)
	}
	return &objects.Null{}
}

// evalForInStatement iterates an array (elements in order), an object
// (values in insertion order), or a string (one code point at a time).
// The loop variable binds on the active frame for each element; return
// signals and errors from the body propagate out.
func (ev *Evaluator) evalForInStatement(stmt *parser.ForInStatementNode) objects.KodiObject {
	iterable := ev.evalExpression(stmt.Iterable)
	if objects.IsError(iterable) {
		return iterable
	}

	runBody := func(element objects.KodiObject) objects.KodiObject {
		ev.Scp.Bind(stmt.VarName, element)
		return ev.evalBlockStatement(stmt.Body)
	}

	switch iterable := iterable.(type) {
	case *objects.Array:
		for _, el := range iterable.Elements {
			result := runBody(el)
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	case *objects.Object:
		for _, key := range iterable.Keys {
			result := runBody(iterable.Pairs[key])
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	case *objects.String:
		for _, r := range iterable.Value {
			result := runBody(&objects.String{Value: string(r)})
			if objects.IsError(result) {
				return result
			}
			if _, ok := result.(*objects.ReturnValue); ok {
				return result
			}
		}
	default:
		return &objects.Error{Message: fmt.Sprintf("cannot iterate over %s", iterable.GetType())}
	}

	return &objects.Null{}
}

// evalWhileStatement re-evaluates the condition before each turn and
// runs the body while it is truthy. The limit checks inside expression
// evaluation bound infinite loops.
func (ev *Evaluator) evalWhileStatement(stmt *parser.WhileStatementNode) objects.KodiObject {
	for {
		condition := ev.evalExpression(stmt.Condition)
		if objects.IsError(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			return &objects.Null{}
		}

		result := ev.evalBlockStatement(stmt.Body)
		if objects.IsError(result) {
			return result
		}
		if _, ok := result.(*objects.ReturnValue); ok {
			return result
		}
	}
}

// evalReturnStatement raises the non-local return signal, carrying the
// evaluated expression or null.
func (ev *Evaluator) evalReturnStatement(stmt *parser.ReturnStatementNode) objects.KodiObject {
	var value objects.KodiObject = &objects.Null{}
	if stmt.Value != nil {
		value = ev.evalExpression(stmt.Value)
		if objects.IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}

// evalBlockStatement evaluates statements in order within the active
// frame. The block's value is the last statement's, or null when empty;
// errors and return signals stop the block and propagate.
func (ev *Evaluator) evalBlockStatement(block *parser.BlockStatementNode) objects.KodiObject {
	var result objects.KodiObject = &objects.Null{}
	for _, stmt := range block.Statements {
		result = ev.evalStatement(stmt)
		if objects.IsError(result) {
			return result
		}
		if _, ok := result.(*objects.ReturnValue); ok {
			return result
		}
	}
	return result
}
