// Package ast defines the typed, source-annotated abstract syntax tree for
// the expression language: literals, variables, operators, let-bindings,
// public-variable declarations and whole programs.
package ast

// Ident is an opaque, hashable, printable identifier. It wraps a plain string
// so that it can be used directly as a map key while still documenting
// intent at call sites that would otherwise just pass a bare string.
type Ident string

func (i Ident) String() string { return string(i) }

// NewIdent constructs an Ident from a name.
func NewIdent(name string) Ident { return Ident(name) }
