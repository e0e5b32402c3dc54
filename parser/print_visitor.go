/*
File : kodi-script-go/parser/print_visitor.go
*/
package parser

import (
	"bytes"
	"fmt"
	"strings"
)

const indentSize = 4

// PrintingVisitor renders an AST as an indented tree, one node per line.
// It is used by the parser's snapshot tests and for debugging.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// String returns the rendered tree.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// indent writes the current indentation prefix.
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line describing a node.
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits a child subtree one indentation level deeper.
func (p *PrintingVisitor) nested(nodes ...Node) {
	p.Indent += indentSize
	for _, node := range nodes {
		if node != nil {
			node.Accept(p)
		}
	}
	p.Indent -= indentSize
}

// VisitRootNode renders the program node and its statements.
func (p *PrintingVisitor) VisitRootNode(node *RootNode) {
	p.line("Program")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

func (p *PrintingVisitor) VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode) {
	p.line("Number(%s)", node.Token.Literal)
}

func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode) {
	p.line("String(%q)", node.Value)
}

func (p *PrintingVisitor) VisitTemplateStringExpressionNode(node *TemplateStringExpressionNode) {
	p.line("Template(%d parts)", len(node.Parts))
	for _, part := range node.Parts {
		p.nested(part)
	}
}

func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) {
	p.line("Boolean(%t)", node.Value)
}

func (p *PrintingVisitor) VisitNullLiteralExpressionNode(node *NullLiteralExpressionNode) {
	p.line("Null")
}

func (p *PrintingVisitor) VisitIdentifierExpressionNode(node *IdentifierExpressionNode) {
	p.line("Identifier(%s)", node.Name)
}

func (p *PrintingVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	p.line("Binary(%s)", node.Operation.Literal)
	p.nested(node.Left, node.Right)
}

func (p *PrintingVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	p.line("Unary(%s)", node.Operation.Literal)
	p.nested(node.Right)
}

func (p *PrintingVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	p.line("Call(%d args)", len(node.Arguments))
	p.nested(node.Callee)
	for _, arg := range node.Arguments {
		p.nested(arg)
	}
}

func (p *PrintingVisitor) VisitMemberExpressionNode(node *MemberExpressionNode) {
	p.line("Member(.%s)", node.Property)
	p.nested(node.Object)
}

func (p *PrintingVisitor) VisitSafeMemberExpressionNode(node *SafeMemberExpressionNode) {
	p.line("SafeMember(?.%s)", node.Property)
	p.nested(node.Object)
}

func (p *PrintingVisitor) VisitElvisExpressionNode(node *ElvisExpressionNode) {
	p.line("Elvis")
	p.nested(node.Left, node.Right)
}

func (p *PrintingVisitor) VisitArrayExpressionNode(node *ArrayExpressionNode) {
	p.line("Array(%d elements)", len(node.Elements))
	for _, el := range node.Elements {
		p.nested(el)
	}
}

func (p *PrintingVisitor) VisitObjectExpressionNode(node *ObjectExpressionNode) {
	keys := make([]string, len(node.Pairs))
	for i, pair := range node.Pairs {
		keys[i] = pair.Key
	}
	p.line("Object(%s)", strings.Join(keys, ", "))
	for _, pair := range node.Pairs {
		p.nested(pair.Value)
	}
}

func (p *PrintingVisitor) VisitIndexExpressionNode(node *IndexExpressionNode) {
	p.line("Index")
	p.nested(node.Object, node.Index)
}

func (p *PrintingVisitor) VisitFunctionLiteralExpressionNode(node *FunctionLiteralExpressionNode) {
	p.line("Function(%s)", strings.Join(node.Params, ", "))
	p.nested(node.Body)
}

func (p *PrintingVisitor) VisitLetStatementNode(node *LetStatementNode) {
	p.line("Let(%s)", node.Name)
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitAssignmentStatementNode(node *AssignmentStatementNode) {
	p.line("Assign(%s)", node.Name)
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitIfStatementNode(node *IfStatementNode) {
	p.line("If")
	p.nested(node.Condition, node.Then)
	if node.Else != nil {
		p.line("Else")
		p.nested(node.Else)
	}
}

func (p *PrintingVisitor) VisitForInStatementNode(node *ForInStatementNode) {
	p.line("ForIn(%s)", node.VarName)
	p.nested(node.Iterable, node.Body)
}

func (p *PrintingVisitor) VisitWhileStatementNode(node *WhileStatementNode) {
	p.line("While")
	p.nested(node.Condition, node.Body)
}

func (p *PrintingVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	p.line("Return")
	if node.Value != nil {
		p.nested(node.Value)
	}
}

func (p *PrintingVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	p.line("Block(%d statements)", len(node.Statements))
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

func (p *PrintingVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	node.Expr.Accept(p)
}
