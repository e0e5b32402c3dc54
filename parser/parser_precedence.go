/*
File : kodi-script-go/parser/parser_precedence.go
*/
package parser

import "github.com/issadicko/kodi-script-go/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Elvis (?:)
//  2. Logical OR (||, or)
//  3. Logical AND (&&, and)
//  4. Equality (==, !=)
//  5. Comparison (<, <=, >, >=)
//  6. Additive (+, -)
//  7. Multiplicative (*, /, %)
//  8. Unary prefix (-, !, not)
//  9. Postfix chain (call, index, member, safe member)
//
// All binary operators are left-associative, including elvis.
//
// Example: in "a + b * c", multiplication binds tighter than addition, so
// the expression parses as "a + (b * c)".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Elvis operator: a ?: b (lowest expression level)
	ELVIS_PRIORITY = 10

	// Logical OR: a || b, a or b
	OR_PRIORITY = 20

	// Logical AND: a && b, a and b
	AND_PRIORITY = 30

	// Equality: a == b, a != b
	EQUALITY_PRIORITY = 40

	// Comparison: a < b, a <= b, a > b, a >= b
	COMPARISON_PRIORITY = 50

	// Additive: a + b, a - b
	PLUS_PRIORITY = 60

	// Multiplicative: a * b, a / b, a % b
	MUL_PRIORITY = 70

	// Unary prefix: -a, !a, not a
	PREFIX_PRIORITY = 80

	// Postfix chain: f(args), a[i], obj.name, obj?.name
	POSTFIX_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token. This
// function is central to the Pratt algorithm, determining how tightly
// operators bind to their operands. Non-operator tokens return -1.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	case lexer.ELVIS_OP:
		return ELVIS_PRIORITY

	case lexer.OR_OP:
		return OR_PRIORITY

	case lexer.AND_OP:
		return AND_PRIORITY

	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return COMPARISON_PRIORITY

	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	case lexer.LEFT_PAREN, lexer.LEFT_BRACKET, lexer.DOT_OP, lexer.SAFE_DOT_OP:
		return POSTFIX_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction is the function type for parsing infix and postfix
// expressions. The already-parsed left operand is passed in; the function
// consumes the operator and its right-hand side (if any) and returns the
// complete expression node.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is the function type for parsing prefix expressions
// and primaries.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs registers a unary parsing function for one or more
// token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs registers a binary parsing function for one or more
// token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
