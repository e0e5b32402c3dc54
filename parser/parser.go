/*
File : kodi-script-go/parser/parser.go
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the KodiScript language.

The parser converts the token stream produced by the lexer into an
Abstract Syntax Tree (AST). It handles:
- Expressions (binary, unary, postfix chains, literals, identifiers)
- Statements (let, assignment, control flow, blocks)
- Function literals and calls
- Operator precedence and left associativity
- String template expansion (${...} into part sequences)

Errors are collected rather than raised on first failure, so a parse
reports everything it found; lexical errors surface through the same
list.
*/
package parser

import (
	"fmt"

	"github.com/issadicko/kodi-script-go/lexer"
)

// Parser represents the parser state and configuration. It maintains all
// the information needed to parse KodiScript source code into an AST.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing: these associate token types with
	// their parsing functions.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and primaries
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix and postfix operators

	// Collect parsing errors instead of panicking. This allows reporting
	// multiple errors in a single parse.
	Errors []string
}

// NewParser creates and initializes a new Parser for the given source.
// The parser is ready to use immediately; call Parse() to produce the
// program AST.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex: lex,
	}

	par.init()

	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Primaries and prefix operators
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseTemplateString, lexer.TEMPLATE_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNullLiteral, lexer.NULL_KEY)
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LEFT_PAREN)
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)
	par.registerUnaryFuncs(par.parseArrayExpression, lexer.LEFT_BRACKET)
	par.registerUnaryFuncs(par.parseObjectExpression, lexer.LEFT_BRACE)
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FN_KEY)

	// Infix operators, lowest to highest band
	par.registerBinaryFuncs(par.parseElvisExpression, lexer.ELVIS_OP)
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.OR_OP, lexer.AND_OP,
		lexer.EQ_OP, lexer.NE_OP,
		lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP,
		lexer.PLUS_OP, lexer.MINUS_OP,
		lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP)

	// Postfix chain: calls, indexing, member access
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)
	par.registerBinaryFuncs(par.parseMemberExpression, lexer.DOT_OP)
	par.registerBinaryFuncs(par.parseSafeMemberExpression, lexer.SAFE_DOT_OP)

	// Prime the token lookahead by advancing twice. After this,
	// CurrToken and NextToken are both valid.
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token: CurrToken becomes
// NextToken and NextToken is fetched from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks that the next token matches the expected type and
// advances past it; a mismatch records an error.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks that the next token matches the expected type. A
// mismatch records an expected/actual error with the token's line.
// The parser is not advanced; use expectAdvance to check and consume.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("[line %d] parse error: expected %s, got %s",
			par.NextToken.Line, expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether parsing (or lexing) produced errors.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0 || par.Lex.HasErrors()
}

// GetErrors returns all lexical and parse errors collected so far:
// lexical errors first, then parse errors.
func (par *Parser) GetErrors() []string {
	errs := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errs = append(errs, par.Lex.Errors...)
	errs = append(errs, par.Errors...)
	return errs
}

// Parse converts the source into a program AST. It repeatedly parses
// statements until end of input, absorbing optional semicolons between
// them. On errors the returned tree may be partial; callers must check
// HasErrors before evaluating.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
			par.advance()
			continue
		}
		if par.CurrToken.Type == lexer.INVALID_TYPE {
			// The lexer already recorded the error.
			break
		}
		stmt := par.parseStatement()
		if stmt == nil || par.HasErrors() {
			break
		}
		root.Statements = append(root.Statements, stmt)
		par.advance()
	}

	return root
}
