package ast

import (
	"github.com/mna/zkcalc/lang/token"
)

// Node is implemented by every AST node: expressions and declarations.
type Node interface {
	// Span reports the source span this node was parsed from, or the zero
	// Span if the node is synthetic (e.g. produced by the inliner or
	// optimiser).
	Span() token.Span
}

// Expr is an expression node.
type Expr interface {
	Node
	// Walk visits this node's direct children, in evaluation order.
	Walk(v Visitor)
	expr()
}

type (
	// LiteralExpr is a literal field element or boolean.
	LiteralExpr struct {
		Ann token.Span
		Lit Literal
	}

	// VariableExpr is a reference to a declared identifier.
	VariableExpr struct {
		Ann   token.Span
		Ident Ident
	}

	// UnaryExpr is a prefix operator applied to a single operand.
	UnaryExpr struct {
		Ann token.Span
		Op  UnaryOp
		X   Expr
	}

	// BinExpr is an infix operator applied to two operands.
	BinExpr struct {
		Ann token.Span
		X   Expr
		Op  BinOp
		Y   Expr
	}

	// IfExpr is a conditional expression; both branches must be present (this
	// language has no statements, only expressions).
	IfExpr struct {
		Ann  token.Span
		Cond Expr
		Then Expr
		Else Expr
	}
)

func (n *LiteralExpr) Span() token.Span  { return n.Ann }
func (n *VariableExpr) Span() token.Span { return n.Ann }
func (n *UnaryExpr) Span() token.Span    { return n.Ann }
func (n *BinExpr) Span() token.Span      { return n.Ann }
func (n *IfExpr) Span() token.Span       { return n.Ann }

func (n *LiteralExpr) expr()  {}
func (n *VariableExpr) expr() {}
func (n *UnaryExpr) expr()    {}
func (n *BinExpr) expr()      {}
func (n *IfExpr) expr()       {}

func (n *LiteralExpr) Walk(v Visitor) {}
func (n *VariableExpr) Walk(v Visitor) {}
func (n *UnaryExpr) Walk(v Visitor) {
	Walk(v, n.X)
}
func (n *BinExpr) Walk(v Visitor) {
	Walk(v, n.X)
	Walk(v, n.Y)
}
func (n *IfExpr) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	Walk(v, n.Else)
}

// Clone deep-copies e. Expression ownership is exclusive and non-shared,
// so every transformation that needs to keep an original around clones
// first rather than mutating in place.
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case *LiteralExpr:
		cp := *n
		return &cp
	case *VariableExpr:
		cp := *n
		return &cp
	case *UnaryExpr:
		return &UnaryExpr{Ann: n.Ann, Op: n.Op, X: Clone(n.X)}
	case *BinExpr:
		return &BinExpr{Ann: n.Ann, X: Clone(n.X), Op: n.Op, Y: Clone(n.Y)}
	case *IfExpr:
		return &IfExpr{Ann: n.Ann, Cond: Clone(n.Cond), Then: Clone(n.Then), Else: Clone(n.Else)}
	default:
		panic("ast: unknown Expr type in Clone")
	}
}

// ClearAnnotations returns a structurally-equal copy of e with every span
// replaced by the zero (synthetic) Span, per the "Annotation parametricity"
// design note: this lets tests compare trees built from source text against
// trees built programmatically without having to fabricate matching spans.
func ClearAnnotations(e Expr) Expr {
	switch n := e.(type) {
	case *LiteralExpr:
		return &LiteralExpr{Lit: n.Lit}
	case *VariableExpr:
		return &VariableExpr{Ident: n.Ident}
	case *UnaryExpr:
		return &UnaryExpr{Op: n.Op, X: ClearAnnotations(n.X)}
	case *BinExpr:
		return &BinExpr{X: ClearAnnotations(n.X), Op: n.Op, Y: ClearAnnotations(n.Y)}
	case *IfExpr:
		return &IfExpr{Cond: ClearAnnotations(n.Cond), Then: ClearAnnotations(n.Then), Else: ClearAnnotations(n.Else)}
	default:
		panic("ast: unknown Expr type in ClearAnnotations")
	}
}
