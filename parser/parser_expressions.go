/*
File : kodi-script-go/parser/parser_expressions.go
*/
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/issadicko/kodi-script-go/lexer"
)

// parseExpression is the heart of the Pratt algorithm. It parses a
// complete expression whose operators all bind tighter than the given
// precedence. The strict comparison in the loop makes every binary
// operator left-associative.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.addError(fmt.Sprintf("[line %d] parse error: unexpected token %s",
			par.CurrToken.Line, par.CurrToken.Type))
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && precedence < getPrecedence(&par.NextToken) {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseNumberLiteral decodes the current number token to a float value.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.addError(fmt.Sprintf("[line %d] parse error: malformed number literal %q",
			par.CurrToken.Line, par.CurrToken.Literal))
		return nil
	}
	return &NumberLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseStringLiteral wraps the current (already decoded) string token.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseTemplateString expands a templated string token into an ordered
// sequence of literal and expression parts. Each ${...} segment is parsed
// as a complete embedded expression; the surrounding text becomes string
// literal parts. Evaluation concatenates the parts with the string `+`
// rule.
func (par *Parser) parseTemplateString() ExpressionNode {
	token := par.CurrToken
	parts := make([]ExpressionNode, 0)
	body := token.Literal

	for {
		idx := strings.Index(body, "${")
		if idx < 0 {
			break
		}

		// Find the matching closing brace, tracking nesting so embedded
		// object literals survive.
		depth := 1
		end := -1
		for i := idx + 2; i < len(body); i++ {
			switch body[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			par.addError(fmt.Sprintf("[line %d] parse error: unterminated template expression",
				token.Line))
			return nil
		}

		if idx > 0 {
			parts = append(parts, &StringLiteralExpressionNode{Token: token, Value: body[:idx]})
		}

		embedded := par.parseEmbeddedExpression(body[idx+2:end], token)
		if embedded == nil {
			return nil
		}
		parts = append(parts, embedded)

		body = body[end+1:]
	}

	if len(body) > 0 || len(parts) == 0 {
		parts = append(parts, &StringLiteralExpressionNode{Token: token, Value: body})
	}

	return &TemplateStringExpressionNode{Token: token, Parts: parts}
}

// parseEmbeddedExpression parses the source inside a ${...} marker with a
// fresh sub-parser, forwarding any errors it collects.
func (par *Parser) parseEmbeddedExpression(src string, token lexer.Token) ExpressionNode {
	sub := NewParser(src)
	expr := sub.parseExpression(MINIMUM_PRIORITY)
	if sub.HasErrors() {
		for _, msg := range sub.GetErrors() {
			par.addError(fmt.Sprintf("[line %d] parse error: in template expression: %s",
				token.Line, msg))
		}
		return nil
	}
	if expr == nil || sub.NextToken.Type != lexer.EOF_TYPE {
		par.addError(fmt.Sprintf("[line %d] parse error: malformed template expression %q",
			token.Line, src))
		return nil
	}
	return expr
}

// parseBooleanLiteral wraps true/false keyword tokens.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseNullLiteral wraps the null keyword token.
func (par *Parser) parseNullLiteral() ExpressionNode {
	return &NullLiteralExpressionNode{Token: par.CurrToken}
}

// parseIdentifierExpression wraps the current identifier token.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseGroupedExpression parses `( EXPR )`. Grouping only affects
// structure, so the inner expression is returned directly without a
// wrapper node.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseUnaryExpression parses the prefix operators `-` and `!`/`not`.
// Unary binds tighter than any binary operator but looser than the
// postfix chain, so -f(x) negates the call result.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	operand := par.parseExpression(PREFIX_PRIORITY)
	if operand == nil {
		return nil
	}
	return &UnaryExpressionNode{Operation: operation, Right: operand}
}

// parseBinaryExpression parses one infix operation. The left operand has
// already been parsed; the operator is the current token.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	precedence := getPrecedence(&operation)
	par.advance()
	right := par.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseElvisExpression parses `LEFT ?: RIGHT`.
func (par *Parser) parseElvisExpression(left ExpressionNode) ExpressionNode {
	token := par.CurrToken
	par.advance()
	right := par.parseExpression(ELVIS_PRIORITY)
	if right == nil {
		return nil
	}
	return &ElvisExpressionNode{Token: token, Left: left, Right: right}
}

// parseCallExpression parses `CALLEE(ARG, ...)`. The callee has already
// been parsed; the current token is the opening parenthesis.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	token := par.CurrToken
	arguments := make([]ExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return &CallExpressionNode{Token: token, Callee: callee, Arguments: arguments}
	}

	par.advance()
	arg := par.parseExpression(MINIMUM_PRIORITY)
	if arg == nil {
		return nil
	}
	arguments = append(arguments, arg)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		arg = par.parseExpression(MINIMUM_PRIORITY)
		if arg == nil {
			return nil
		}
		arguments = append(arguments, arg)
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return &CallExpressionNode{Token: token, Callee: callee, Arguments: arguments}
}

// parseIndexExpression parses `OBJECT[INDEX]`.
func (par *Parser) parseIndexExpression(object ExpressionNode) ExpressionNode {
	token := par.CurrToken
	par.advance()
	index := par.parseExpression(MINIMUM_PRIORITY)
	if index == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &IndexExpressionNode{Token: token, Object: object, Index: index}
}

// parseMemberExpression parses `OBJECT.NAME`.
func (par *Parser) parseMemberExpression(object ExpressionNode) ExpressionNode {
	token := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &MemberExpressionNode{Token: token, Object: object, Property: par.CurrToken.Literal}
}

// parseSafeMemberExpression parses `OBJECT?.NAME`.
func (par *Parser) parseSafeMemberExpression(object ExpressionNode) ExpressionNode {
	token := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &SafeMemberExpressionNode{Token: token, Object: object, Property: par.CurrToken.Literal}
}

// parseArrayExpression parses `[ EXPR, ... ]`. The empty array `[]` is
// valid; trailing commas are not.
func (par *Parser) parseArrayExpression() ExpressionNode {
	token := par.CurrToken
	elements := make([]ExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_BRACKET {
		par.advance()
		return &ArrayExpressionNode{Token: token, Elements: elements}
	}

	par.advance()
	el := par.parseExpression(MINIMUM_PRIORITY)
	if el == nil {
		return nil
	}
	elements = append(elements, el)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		el = par.parseExpression(MINIMUM_PRIORITY)
		if el == nil {
			return nil
		}
		elements = append(elements, el)
	}

	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}

	return &ArrayExpressionNode{Token: token, Elements: elements}
}

// parseObjectExpression parses `{ NAME: EXPR, ... }`. Keys are parsed as
// identifiers, not arbitrary expressions; the empty object `{}` is valid.
func (par *Parser) parseObjectExpression() ExpressionNode {
	token := par.CurrToken
	pairs := make([]ObjectPair, 0)

	if par.NextToken.Type == lexer.RIGHT_BRACE {
		par.advance()
		return &ObjectExpressionNode{Token: token, Pairs: pairs}
	}

	for {
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		key := par.CurrToken.Literal
		if !par.expectAdvance(lexer.COLON_DELIM) {
			return nil
		}
		par.advance()
		value := par.parseExpression(MINIMUM_PRIORITY)
		if value == nil {
			return nil
		}
		pairs = append(pairs, ObjectPair{Key: key, Value: value})

		if par.NextToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance()
	}

	if !par.expectAdvance(lexer.RIGHT_BRACE) {
		return nil
	}

	return &ObjectExpressionNode{Token: token, Pairs: pairs}
}

// parseFunctionLiteral parses `fn ( NAME, ... ) { BODY }`. The body must
// be a block.
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	token := par.CurrToken
	params := make([]string, 0)

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
	} else {
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, par.CurrToken.Literal)

		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			params = append(params, par.CurrToken.Literal)
		}

		if !par.expectAdvance(lexer.RIGHT_PAREN) {
			return nil
		}
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &FunctionLiteralExpressionNode{Token: token, Params: params, Body: body}
}
