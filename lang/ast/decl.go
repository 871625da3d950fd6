package ast

import "github.com/mna/zkcalc/lang/token"

// Binder names a declaration: the identifier it introduces, its source span
// and, optionally, its declared type. The declared type is mandatory for
// public-variable declarations and optional for let-bindings (§3).
type Binder struct {
	Ann     token.Span
	Ident   Ident
	DeclTy  Type
	HasType bool
}

// Decl is either a VarAssignment (a let-binding) or a PublicVar declaration.
type Decl interface {
	Node
	// Identifier returns the name this declaration binds.
	Identifier() Ident
	// Dependencies returns the free variables of this declaration's own
	// expression (empty for PublicVar, which has no body).
	Dependencies() []Ident
	decl()
}

type (
	// VarAssignment is a `let ident = expr;` declaration.
	VarAssignment struct {
		Ann    token.Span
		Binder Binder
		Expr   Expr
	}

	// PublicVar is a `pub ident: Type;` declaration. It carries no expression;
	// its value is supplied by the caller at proving/interpretation time.
	PublicVar struct {
		Ann    token.Span
		Binder Binder
	}
)

func (d *VarAssignment) Span() token.Span { return d.Ann }
func (d *PublicVar) Span() token.Span     { return d.Ann }

func (d *VarAssignment) decl() {}
func (d *PublicVar) decl()     {}

func (d *VarAssignment) Identifier() Ident { return d.Binder.Ident }
func (d *PublicVar) Identifier() Ident     { return d.Binder.Ident }

func (d *VarAssignment) Dependencies() []Ident { return FreeVars(d.Expr) }
func (d *PublicVar) Dependencies() []Ident     { return nil }

// CloneDecl deep-copies a declaration.
func CloneDecl(d Decl) Decl {
	switch n := d.(type) {
	case *VarAssignment:
		return &VarAssignment{Ann: n.Ann, Binder: n.Binder, Expr: Clone(n.Expr)}
	case *PublicVar:
		cp := *n
		return &cp
	default:
		panic("ast: unknown Decl type in CloneDecl")
	}
}
