/*
File : kodi-script-go/parser/node.go
*/
package parser

import (
	"strings"

	"github.com/issadicko/kodi-script-go/lexer"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or analysis without coupling
// those operations to the node definitions.
type NodeVisitor interface {
	VisitRootNode(node *RootNode) // Entry point for visiting the entire program

	// Literal value visitors
	VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode)   // 42, 3.14
	VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode)   // "hello"
	VisitTemplateStringExpressionNode(node *TemplateStringExpressionNode) // "sum: ${a + b}"
	VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) // true, false
	VisitNullLiteralExpressionNode(node *NullLiteralExpressionNode)       // null

	// Expression visitors
	VisitIdentifierExpressionNode(node *IdentifierExpressionNode) // x, user
	VisitBinaryExpressionNode(node *BinaryExpressionNode)         // +, -, ==, &&, ...
	VisitUnaryExpressionNode(node *UnaryExpressionNode)           // -x, !x
	VisitCallExpressionNode(node *CallExpressionNode)             // f(a, b)
	VisitMemberExpressionNode(node *MemberExpressionNode)         // obj.name
	VisitSafeMemberExpressionNode(node *SafeMemberExpressionNode) // obj?.name
	VisitElvisExpressionNode(node *ElvisExpressionNode)           // a ?: b
	VisitArrayExpressionNode(node *ArrayExpressionNode)           // [1, 2, 3]
	VisitObjectExpressionNode(node *ObjectExpressionNode)         // {a: 1, b: 2}
	VisitIndexExpressionNode(node *IndexExpressionNode)           // arr[0]
	VisitFunctionLiteralExpressionNode(node *FunctionLiteralExpressionNode)

	// Statement visitors
	VisitLetStatementNode(node *LetStatementNode)               // let x = expr
	VisitAssignmentStatementNode(node *AssignmentStatementNode) // x = expr
	VisitIfStatementNode(node *IfStatementNode)                 // if (cond) ... else ...
	VisitForInStatementNode(node *ForInStatementNode)           // for (x in xs) { ... }
	VisitWhileStatementNode(node *WhileStatementNode)           // while (cond) { ... }
	VisitReturnStatementNode(node *ReturnStatementNode)         // return expr
	VisitBlockStatementNode(node *BlockStatementNode)           // { stmt1; stmt2 }
	VisitExpressionStatementNode(node *ExpressionStatementNode) // bare expression
}

// Node is the base interface for all nodes of the AST.
// Literal() returns a source-like string representation of the node;
// Accept() dispatches a visitor to the node's concrete type.
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode is the base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for all expression nodes.
// Every expression is also usable as a statement.
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode represents the root of the AST (the program node).
type RootNode struct {
	Statements []StatementNode // Ordered top-level statements
}

func (root *RootNode) Literal() string {
	parts := make([]string, len(root.Statements))
	for i, stmt := range root.Statements {
		parts[i] = stmt.Literal()
	}
	return strings.Join(parts, "; ")
}

func (root *RootNode) Accept(visitor NodeVisitor) { visitor.VisitRootNode(root) }

// NumberLiteralExpressionNode represents a numeric literal such as 42 or
// 3.14. The value is decoded to a float at parse time.
type NumberLiteralExpressionNode struct {
	Token lexer.Token // The number token
	Value float64     // The decoded numeric value
}

func (node *NumberLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumberLiteralExpressionNode(node)
}
func (node *NumberLiteralExpressionNode) Statement()  {}
func (node *NumberLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode represents a plain string literal with its
// escapes already decoded.
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token
	Value string      // The decoded string payload
}

func (node *StringLiteralExpressionNode) Literal() string { return "\"" + node.Value + "\"" }
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(node)
}
func (node *StringLiteralExpressionNode) Statement()  {}
func (node *StringLiteralExpressionNode) Expression() {}

// TemplateStringExpressionNode represents a string literal that contained
// ${...} markers. Parts alternate between string literals and the
// embedded expressions; evaluation concatenates them with the string `+`
// rule. A template with an unterminated or malformed marker is a parse
// error and yields no node.
type TemplateStringExpressionNode struct {
	Token lexer.Token      // The template token
	Parts []ExpressionNode // Ordered literal and expression parts
}

func (node *TemplateStringExpressionNode) Literal() string { return "\"" + node.Token.Literal + "\"" }
func (node *TemplateStringExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitTemplateStringExpressionNode(node)
}
func (node *TemplateStringExpressionNode) Statement()  {}
func (node *TemplateStringExpressionNode) Expression() {}

// BooleanLiteralExpressionNode represents true or false.
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean keyword token
	Value bool        // The boolean value
}

func (node *BooleanLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(node)
}
func (node *BooleanLiteralExpressionNode) Statement()  {}
func (node *BooleanLiteralExpressionNode) Expression() {}

// NullLiteralExpressionNode represents the null literal.
type NullLiteralExpressionNode struct {
	Token lexer.Token // The null keyword token
}

func (node *NullLiteralExpressionNode) Literal() string { return "null" }
func (node *NullLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNullLiteralExpressionNode(node)
}
func (node *NullLiteralExpressionNode) Statement()  {}
func (node *NullLiteralExpressionNode) Expression() {}

// IdentifierExpressionNode represents a variable or function reference.
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier spelling
}

func (node *IdentifierExpressionNode) Literal() string { return node.Name }
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(node)
}
func (node *IdentifierExpressionNode) Statement()  {}
func (node *IdentifierExpressionNode) Expression() {}

// BinaryExpressionNode represents an infix operation: arithmetic,
// comparison, equality, or logical.
type BinaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Left      ExpressionNode // Left operand
	Right     ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}
func (node *BinaryExpressionNode) Statement()  {}
func (node *BinaryExpressionNode) Expression() {}

// UnaryExpressionNode represents a prefix operation: numeric negation or
// logical not.
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // The operand
}

func (node *UnaryExpressionNode) Literal() string {
	op := node.Operation.Literal
	if op == "not" {
		op += " "
	}
	return "(" + op + node.Right.Literal() + ")"
}
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}
func (node *UnaryExpressionNode) Statement()  {}
func (node *UnaryExpressionNode) Expression() {}

// CallExpressionNode represents a function invocation with ordered
// arguments.
type CallExpressionNode struct {
	Token     lexer.Token      // The '(' token
	Callee    ExpressionNode   // The expression being called
	Arguments []ExpressionNode // Ordered argument expressions
}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, len(node.Arguments))
	for i, arg := range node.Arguments {
		args[i] = arg.Literal()
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}
func (node *CallExpressionNode) Statement()  {}
func (node *CallExpressionNode) Expression() {}

// MemberExpressionNode represents property access: obj.name.
type MemberExpressionNode struct {
	Token    lexer.Token    // The '.' token
	Object   ExpressionNode // The receiver expression
	Property string         // The property name
}

func (node *MemberExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Property
}
func (node *MemberExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitMemberExpressionNode(node)
}
func (node *MemberExpressionNode) Statement()  {}
func (node *MemberExpressionNode) Expression() {}

// SafeMemberExpressionNode represents null-safe property access:
// obj?.name yields null when the receiver is null.
type SafeMemberExpressionNode struct {
	Token    lexer.Token    // The '?.' token
	Object   ExpressionNode // The receiver expression
	Property string         // The property name
}

func (node *SafeMemberExpressionNode) Literal() string {
	return node.Object.Literal() + "?." + node.Property
}
func (node *SafeMemberExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitSafeMemberExpressionNode(node)
}
func (node *SafeMemberExpressionNode) Statement()  {}
func (node *SafeMemberExpressionNode) Expression() {}

// ElvisExpressionNode represents the null-default operator: the left
// value when it is not null, otherwise the right value.
type ElvisExpressionNode struct {
	Token lexer.Token    // The '?:' token
	Left  ExpressionNode // The candidate value
	Right ExpressionNode // The fallback value
}

func (node *ElvisExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " ?: " + node.Right.Literal() + ")"
}
func (node *ElvisExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitElvisExpressionNode(node)
}
func (node *ElvisExpressionNode) Statement()  {}
func (node *ElvisExpressionNode) Expression() {}

// ArrayExpressionNode represents an array literal with ordered elements.
type ArrayExpressionNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // Ordered element expressions
}

func (node *ArrayExpressionNode) Literal() string {
	parts := make([]string, len(node.Elements))
	for i, el := range node.Elements {
		parts[i] = el.Literal()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (node *ArrayExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitArrayExpressionNode(node)
}
func (node *ArrayExpressionNode) Statement()  {}
func (node *ArrayExpressionNode) Expression() {}

// ObjectPair is one key/value entry of an object literal. Keys are
// identifier-syntax strings; duplicate keys keep the last value.
type ObjectPair struct {
	Key   string
	Value ExpressionNode
}

// ObjectExpressionNode represents an object literal with its pairs in
// declaration order.
type ObjectExpressionNode struct {
	Token lexer.Token  // The '{' token
	Pairs []ObjectPair // Ordered key/value pairs
}

func (node *ObjectExpressionNode) Literal() string {
	parts := make([]string, len(node.Pairs))
	for i, pair := range node.Pairs {
		parts[i] = pair.Key + ": " + pair.Value.Literal()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (node *ObjectExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitObjectExpressionNode(node)
}
func (node *ObjectExpressionNode) Statement()  {}
func (node *ObjectExpressionNode) Expression() {}

// IndexExpressionNode represents subscript access: arr[i], obj["k"],
// str[i].
type IndexExpressionNode struct {
	Token  lexer.Token    // The '[' token
	Object ExpressionNode // The receiver expression
	Index  ExpressionNode // The index expression
}

func (node *IndexExpressionNode) Literal() string {
	return node.Object.Literal() + "[" + node.Index.Literal() + "]"
}
func (node *IndexExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIndexExpressionNode(node)
}
func (node *IndexExpressionNode) Statement()  {}
func (node *IndexExpressionNode) Expression() {}

// FunctionLiteralExpressionNode represents an fn literal with ordered
// parameter names and a block body.
type FunctionLiteralExpressionNode struct {
	Token  lexer.Token         // The 'fn' token
	Params []string            // Ordered parameter names
	Body   *BlockStatementNode // The function body
}

func (node *FunctionLiteralExpressionNode) Literal() string {
	return "fn(" + strings.Join(node.Params, ", ") + ") " + node.Body.Literal()
}
func (node *FunctionLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionLiteralExpressionNode(node)
}
func (node *FunctionLiteralExpressionNode) Statement()  {}
func (node *FunctionLiteralExpressionNode) Expression() {}

// LetStatementNode represents `let NAME = EXPR`.
type LetStatementNode struct {
	Token lexer.Token    // The 'let' token
	Name  string         // The bound name
	Value ExpressionNode // The bound value expression
}

func (node *LetStatementNode) Literal() string {
	return "let " + node.Name + " = " + node.Value.Literal()
}
func (node *LetStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitLetStatementNode(node)
}
func (node *LetStatementNode) Statement() {}

// AssignmentStatementNode represents `NAME = EXPR`. Assignment and `let`
// share binding semantics; both set the name on the active frame.
type AssignmentStatementNode struct {
	Token lexer.Token    // The identifier token
	Name  string         // The assigned name
	Value ExpressionNode // The assigned value expression
}

func (node *AssignmentStatementNode) Literal() string {
	return node.Name + " = " + node.Value.Literal()
}
func (node *AssignmentStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentStatementNode(node)
}
func (node *AssignmentStatementNode) Statement() {}

// IfStatementNode represents a conditional with an optional else branch.
// Branches may be blocks or single statements.
type IfStatementNode struct {
	Token     lexer.Token    // The 'if' token
	Condition ExpressionNode // The condition expression
	Then      StatementNode  // The then branch
	Else      StatementNode  // The else branch, or nil
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.Then.Literal()
	if node.Else != nil {
		res += " else " + node.Else.Literal()
	}
	return res
}
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}
func (node *IfStatementNode) Statement() {}

// ForInStatementNode represents `for (NAME in EXPR) { BODY }`.
type ForInStatementNode struct {
	Token    lexer.Token         // The 'for' token
	VarName  string              // The loop variable name
	Iterable ExpressionNode      // The iterable expression
	Body     *BlockStatementNode // The loop body
}

func (node *ForInStatementNode) Literal() string {
	return "for (" + node.VarName + " in " + node.Iterable.Literal() + ") " + node.Body.Literal()
}
func (node *ForInStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitForInStatementNode(node)
}
func (node *ForInStatementNode) Statement() {}

// WhileStatementNode represents `while (EXPR) { BODY }`.
type WhileStatementNode struct {
	Token     lexer.Token         // The 'while' token
	Condition ExpressionNode      // The condition expression
	Body      *BlockStatementNode // The loop body
}

func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(node)
}
func (node *WhileStatementNode) Statement() {}

// ReturnStatementNode represents `return EXPR?`. A missing expression
// returns null.
type ReturnStatementNode struct {
	Token lexer.Token    // The 'return' token
	Value ExpressionNode // The returned expression, or nil
}

func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return"
	}
	return "return " + node.Value.Literal()
}
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}
func (node *ReturnStatementNode) Statement() {}

// BlockStatementNode represents `{ ... }` with ordered statements.
type BlockStatementNode struct {
	Token      lexer.Token     // The '{' token
	Statements []StatementNode // Ordered statements
}

func (node *BlockStatementNode) Literal() string {
	parts := make([]string, len(node.Statements))
	for i, stmt := range node.Statements {
		parts[i] = stmt.Literal()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}
func (node *BlockStatementNode) Statement() {}

// ExpressionStatementNode wraps a bare expression used as a statement.
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() }
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}
func (node *ExpressionStatementNode) Statement() {}
