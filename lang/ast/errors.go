package ast

import (
	"fmt"

	"github.com/mna/zkcalc/lang/token"
)

// DuplicateIdentifierError reports that two declarations bind the same name.
type DuplicateIdentifierError struct {
	Ident Ident
	Span  token.Span
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q at %s", e.Ident, e.Span)
}

// UnboundIdentifierError reports a reference to an identifier that is not
// declared anywhere.
type UnboundIdentifierError struct {
	Ident Ident
	Span  token.Span
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier %q at %s", e.Ident, e.Span)
}

// CyclicDependencyError reports that the let-binding dependency graph has a
// cycle; Ident is any one identifier on the cycle.
type CyclicDependencyError struct {
	Ident Ident
	Span  token.Span
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency involving %q at %s", e.Ident, e.Span)
}
