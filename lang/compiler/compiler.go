// Package compiler implements the compiler gate: it runs the inliner
// and optimiser over a Program and asserts the result's free variables
// are covered by the declared public variables, producing an
// ast.CompiledProgram. A single exported entry point wraps a short
// validated pipeline.
package compiler

import (
	"fmt"
	"strings"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/inline"
	"github.com/mna/zkcalc/lang/optimize"
)

// UnconstrainedVariableError reports that the compiled expression's free
// variables are not a subset of the program's declared public variables.
// It carries every offending free variable, in the order FreeVars
// discovered them.
type UnconstrainedVariableError struct {
	Idents []ast.Ident
}

func (e *UnconstrainedVariableError) Error() string {
	names := make([]string, len(e.Idents))
	for i, id := range e.Idents {
		names[i] = string(id)
	}
	return fmt.Sprintf("unconstrained free variable(s): %s", strings.Join(names, ", "))
}

// Compile implements the §4.6 gate: (1) collect declared public-variable
// identifiers in declaration order; (2) inline; (3) fold constants; (4)
// compute the result's free variables; (5) require that set be a subset of
// the public-variable set. This check is intentionally asymmetric — an
// unused public variable is not an error here; lang/circuit enforces the
// stricter converse condition when it builds the circuit.
func Compile(p *ast.Program) (*ast.CompiledProgram, error) {
	public := make([]ast.Ident, 0, len(p.Decls))
	declared := make(map[ast.Ident]bool, len(p.Decls))
	for _, d := range p.PublicVarDecls() {
		public = append(public, d.Binder.Ident)
		declared[d.Binder.Ident] = true
	}

	expr := optimize.Fold(inline.Inline(p))

	free := ast.FreeVars(expr)
	var bad []ast.Ident
	for _, v := range free {
		if !declared[v] {
			bad = append(bad, v)
		}
	}
	if len(bad) > 0 {
		return nil, &UnconstrainedVariableError{Idents: bad}
	}

	return &ast.CompiledProgram{PublicVars: public, Expr: expr}, nil
}
