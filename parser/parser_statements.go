/*
File : kodi-script-go/parser/parser_statements.go
*/
package parser

import (
	"fmt"

	"github.com/issadicko/kodi-script-go/lexer"
)

// parseStatement dispatches on the current token to the matching
// statement parser. An identifier directly followed by `=` (single-token
// lookahead) is an assignment; anything unrecognised parses as an
// expression statement.
//
// Every statement parser leaves CurrToken on the last token of its
// construct; the caller advances past it.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.FOR_KEY:
		return par.parseForInStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.IDENTIFIER_ID:
		if par.NextToken.Type == lexer.ASSIGN_OP {
			return par.parseAssignmentStatement()
		}
		return par.parseExpressionStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses `let NAME = EXPR`.
func (par *Parser) parseLetStatement() StatementNode {
	token := par.CurrToken

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}
	par.advance()

	value := par.parseExpression(MINIMUM_PRIORITY)
	if value == nil {
		return nil
	}

	return &LetStatementNode{Token: token, Name: name, Value: value}
}

// parseAssignmentStatement parses `NAME = EXPR`. The current token is the
// identifier; the lookahead already confirmed the `=`.
func (par *Parser) parseAssignmentStatement() StatementNode {
	token := par.CurrToken
	name := par.CurrToken.Literal

	par.advance() // onto '='
	par.advance() // onto the value expression

	value := par.parseExpression(MINIMUM_PRIORITY)
	if value == nil {
		return nil
	}

	return &AssignmentStatementNode{Token: token, Name: name, Value: value}
}

// parseReturnStatement parses `return EXPR?`. The expression is omitted
// when the next token is `;`, `}`, or end of input.
func (par *Parser) parseReturnStatement() StatementNode {
	token := par.CurrToken

	switch par.NextToken.Type {
	case lexer.SEMICOLON_DELIM, lexer.RIGHT_BRACE, lexer.EOF_TYPE:
		return &ReturnStatementNode{Token: token}
	}

	par.advance()
	value := par.parseExpression(MINIMUM_PRIORITY)
	if value == nil {
		return nil
	}

	return &ReturnStatementNode{Token: token, Value: value}
}

// parseIfStatement parses `if (EXPR) BRANCH (else BRANCH)?`. Branches are
// either blocks or single statements.
func (par *Parser) parseIfStatement() StatementNode {
	token := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()

	condition := par.parseExpression(MINIMUM_PRIORITY)
	if condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	par.advance()

	then := par.parseBranch()
	if then == nil {
		return nil
	}

	var alt StatementNode
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // onto 'else'
		par.advance() // onto the branch start
		alt = par.parseBranch()
		if alt == nil {
			return nil
		}
	}

	return &IfStatementNode{Token: token, Condition: condition, Then: then, Else: alt}
}

// parseBranch parses one conditional branch: a block when the current
// token is `{`, otherwise a single statement.
func (par *Parser) parseBranch() StatementNode {
	if par.CurrToken.Type == lexer.LEFT_BRACE {
		return par.parseBlockStatement()
	}
	return par.parseStatement()
}

// parseForInStatement parses `for (NAME in EXPR) { BODY }`. The body must
// be a block.
func (par *Parser) parseForInStatement() StatementNode {
	token := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	varName := par.CurrToken.Literal

	if !par.expectAdvance(lexer.IN_KEY) {
		return nil
	}
	par.advance()

	iterable := par.parseExpression(MINIMUM_PRIORITY)
	if iterable == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &ForInStatementNode{Token: token, VarName: varName, Iterable: iterable, Body: body}
}

// parseWhileStatement parses `while (EXPR) { BODY }`. The body must be a
// block.
func (par *Parser) parseWhileStatement() StatementNode {
	token := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()

	condition := par.parseExpression(MINIMUM_PRIORITY)
	if condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &WhileStatementNode{Token: token, Condition: condition, Body: body}
}

// parseBlockStatement parses `{ STMT* }`. The current token is the
// opening brace; semicolons between statements are absorbed.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	token := par.CurrToken
	statements := make([]StatementNode, 0)

	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
			par.advance()
			continue
		}
		stmt := par.parseStatement()
		if stmt == nil || par.HasErrors() {
			return nil
		}
		statements = append(statements, stmt)
		par.advance()
	}

	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError(fmt.Sprintf("[line %d] parse error: expected %s, got %s",
			par.CurrToken.Line, lexer.RIGHT_BRACE, par.CurrToken.Type))
		return nil
	}

	return &BlockStatementNode{Token: token, Statements: statements}
}

// parseExpressionStatement wraps a bare expression as a statement.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}
