package checker

import (
	"fmt"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/token"
)

// TypeMismatchError reports that an expression's inferred type didn't match
// the type demanded by its context (e.g. both operands of '+' must be
// Field). It carries both the demanding and the supplying positions.
type TypeMismatchError struct {
	Want, Got         ast.Type
	WantSpan, GotSpan token.Span
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s at %s, got %s at %s", e.Want, e.WantSpan, e.Got, e.GotSpan)
}

// UndefinedVariableError reports a reference to an identifier with no entry
// in the type context. Structurally distinct from ast.UnboundIdentifierError
// because it is raised by the type checker walking an already
// constructor-validated Program, not by the smart constructor itself — the
// two cannot fire on the same Program but exist for defense in depth.
type UndefinedVariableError struct {
	Ident ast.Ident
	Span  token.Span
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q at %s", e.Ident, e.Span)
}
