/*
File : kodi-script-go/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseProgram parses a source and fails the test on any error.
func parseProgram(t *testing.T, src string) *RootNode {
	t.Helper()
	par := NewParser(src)
	root := par.Parse()
	require.Falsef(t, par.HasErrors(), "source %q: %v", src, par.GetErrors())
	return root
}

// TestParser_Precedence verifies the operator precedence ladder through
// the parenthesised Literal() rendering of parsed expressions.
func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"1 + 2 - 3", "((1 + 2) - 3)"},
		{"a == b + 1", "(a == (b + 1))"},
		{"a < b == c < d", "((a < b) == (c < d))"},
		{"a && b || c", "((a && b) || c)"},
		{"a or b and c", "(a or (b and c))"},
		{"not a && b", "((not a) && b)"},
		{"-a * b", "((-a) * b)"},
		{"!a == b", "((!a) == b)"},
		{"a ?: b || c", "(a ?: (b || c))"},
		{"a ?: b ?: c", "((a ?: b) ?: c)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a % 2 == 0", "((a % 2) == 0)"},
	}

	for _, tt := range tests {
		root := parseProgram(t, tt.input)
		require.Lenf(t, root.Statements, 1, "input %q", tt.input)
		assert.Equalf(t, tt.expected, root.Statements[0].Literal(), "input %q", tt.input)
	}
}

// TestParser_PostfixChain verifies that calls, indexing, and member
// access apply left to right and bind tighter than unary.
func TestParser_PostfixChain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"f(1, 2)", "f(1, 2)"},
		{"obj.a.b", "obj.a.b"},
		{"obj?.a", "obj?.a"},
		{"arr[0][1]", "arr[0][1]"},
		{"obj.items[0].name", "obj.items[0].name"},
		{"f(x)(y)", "f(x)(y)"},
		{"-f(x)", "(-f(x))"},
	}

	for _, tt := range tests {
		root := parseProgram(t, tt.input)
		require.Lenf(t, root.Statements, 1, "input %q", tt.input)
		assert.Equalf(t, tt.expected, root.Statements[0].Literal(), "input %q", tt.input)
	}
}

// TestParser_LetStatement verifies let parsing.
func TestParser_LetStatement(t *testing.T) {
	root := parseProgram(t, "let x = 5 * 3")
	require.Len(t, root.Statements, 1)

	let, ok := root.Statements[0].(*LetStatementNode)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.Equal(t, "(5 * 3)", let.Value.Literal())
}

// TestParser_AssignmentLookahead verifies that an identifier followed by
// `=` parses as an assignment statement, while a bare identifier parses
// as an expression statement.
func TestParser_AssignmentLookahead(t *testing.T) {
	root := parseProgram(t, "x = 100; x")
	require.Len(t, root.Statements, 2)

	assign, ok := root.Statements[0].(*AssignmentStatementNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	assert.Equal(t, "100", assign.Value.Literal())

	_, ok = root.Statements[1].(*ExpressionStatementNode)
	assert.True(t, ok)
}

// TestParser_IfStatement verifies both branch shapes: blocks and single
// statements.
func TestParser_IfStatement(t *testing.T) {
	root := parseProgram(t, "if (x > 0) { print(x) } else { print(0) }")
	require.Len(t, root.Statements, 1)

	ifStmt, ok := root.Statements[0].(*IfStatementNode)
	require.True(t, ok)
	assert.Equal(t, "(x > 0)", ifStmt.Condition.Literal())
	_, ok = ifStmt.Then.(*BlockStatementNode)
	assert.True(t, ok)
	require.NotNil(t, ifStmt.Else)

	root = parseProgram(t, "if (x) y = 1 else y = 2")
	ifStmt, ok = root.Statements[0].(*IfStatementNode)
	require.True(t, ok)
	_, ok = ifStmt.Then.(*AssignmentStatementNode)
	assert.True(t, ok)
	_, ok = ifStmt.Else.(*AssignmentStatementNode)
	assert.True(t, ok)

	root = parseProgram(t, "if (x) { 1 }")
	ifStmt, ok = root.Statements[0].(*IfStatementNode)
	require.True(t, ok)
	assert.Nil(t, ifStmt.Else)
}

// TestParser_Loops verifies for-in and while statements with mandatory
// block bodies.
func TestParser_Loops(t *testing.T) {
	root := parseProgram(t, "for (i in [1, 2, 3]) { sum = sum + i }")
	forStmt, ok := root.Statements[0].(*ForInStatementNode)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.VarName)
	assert.Equal(t, "[1, 2, 3]", forStmt.Iterable.Literal())
	require.Len(t, forStmt.Body.Statements, 1)

	root = parseProgram(t, "while (n < 10) { n = n + 1 }")
	whileStmt, ok := root.Statements[0].(*WhileStatementNode)
	require.True(t, ok)
	assert.Equal(t, "(n < 10)", whileStmt.Condition.Literal())

	par := NewParser("for (i in xs) i = 1")
	par.Parse()
	assert.True(t, par.HasErrors(), "for body must be a block")

	par = NewParser("while (x) x = 1")
	par.Parse()
	assert.True(t, par.HasErrors(), "while body must be a block")
}

// TestParser_ReturnStatement verifies the optional return expression.
func TestParser_ReturnStatement(t *testing.T) {
	root := parseProgram(t, "fn() { return }")
	fnLit := root.Statements[0].(*ExpressionStatementNode).Expr.(*FunctionLiteralExpressionNode)
	ret := fnLit.Body.Statements[0].(*ReturnStatementNode)
	assert.Nil(t, ret.Value)

	root = parseProgram(t, "fn() { return 1 + 2 }")
	fnLit = root.Statements[0].(*ExpressionStatementNode).Expr.(*FunctionLiteralExpressionNode)
	ret = fnLit.Body.Statements[0].(*ReturnStatementNode)
	require.NotNil(t, ret.Value)
	assert.Equal(t, "(1 + 2)", ret.Value.Literal())

	root = parseProgram(t, "return 42")
	_, ok := root.Statements[0].(*ReturnStatementNode)
	assert.True(t, ok, "top-level return is valid")
}

// TestParser_Literals verifies array, object, and function literals.
func TestParser_Literals(t *testing.T) {
	root := parseProgram(t, "[]")
	arr := root.Statements[0].(*ExpressionStatementNode).Expr.(*ArrayExpressionNode)
	assert.Empty(t, arr.Elements)

	root = parseProgram(t, "[1, 2 + 3, \"x\"]")
	arr = root.Statements[0].(*ExpressionStatementNode).Expr.(*ArrayExpressionNode)
	assert.Len(t, arr.Elements, 3)

	root = parseProgram(t, "let o = {name: \"Alice\", age: 30}")
	obj := root.Statements[0].(*LetStatementNode).Value.(*ObjectExpressionNode)
	require.Len(t, obj.Pairs, 2)
	assert.Equal(t, "name", obj.Pairs[0].Key)
	assert.Equal(t, "age", obj.Pairs[1].Key)

	root = parseProgram(t, "fn(a, b) { a + b }")
	fnLit := root.Statements[0].(*ExpressionStatementNode).Expr.(*FunctionLiteralExpressionNode)
	assert.Equal(t, []string{"a", "b"}, fnLit.Params)

	root = parseProgram(t, "fn() { 1 }")
	fnLit = root.Statements[0].(*ExpressionStatementNode).Expr.(*FunctionLiteralExpressionNode)
	assert.Empty(t, fnLit.Params)
}

// TestParser_BlockStatement verifies that a brace at statement position
// opens a block, not an object literal.
func TestParser_BlockStatement(t *testing.T) {
	root := parseProgram(t, "{ let x = 1; x }")
	block, ok := root.Statements[0].(*BlockStatementNode)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

// TestParser_TemplateExpansion verifies ${...} expansion into literal
// and expression parts.
func TestParser_TemplateExpansion(t *testing.T) {
	root := parseProgram(t, `"sum: ${a + b}!"`)
	tmpl := root.Statements[0].(*ExpressionStatementNode).Expr.(*TemplateStringExpressionNode)
	require.Len(t, tmpl.Parts, 3)

	lit, ok := tmpl.Parts[0].(*StringLiteralExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "sum: ", lit.Value)

	_, ok = tmpl.Parts[1].(*BinaryExpressionNode)
	assert.True(t, ok)

	lit, ok = tmpl.Parts[2].(*StringLiteralExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "!", lit.Value)

	par := NewParser(`"${unclosed"`)
	par.Parse()
	assert.True(t, par.HasErrors())
}

// TestParser_Semicolons verifies that semicolons are optional and
// repeated semicolons are absorbed.
func TestParser_Semicolons(t *testing.T) {
	root := parseProgram(t, "let a = 1;; let b = 2\nlet c = 3;")
	assert.Len(t, root.Statements, 3)
}

// TestParser_Errors verifies expected-token diagnostics.
func TestParser_Errors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"let = 5", "expected Identifier"},
		{"let x 5", "expected ="},
		{"if x { 1 }", "expected ("},
		{"(1 + 2", "expected )"},
		{"[1, 2", "expected ]"},
		{"{ 1", "expected }"},
		{"1 +", "unexpected token"},
		{"for (i of xs) { }", "expected in"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		par.Parse()
		require.Truef(t, par.HasErrors(), "input %q should fail", tt.input)
		assert.Containsf(t, par.GetErrors()[0], tt.contains, "input %q", tt.input)
	}
}
