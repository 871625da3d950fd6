// Package inline implements the let-binding inliner: it turns a
// Program into a single Expression with every let-bound identifier
// substituted away, following the same recursive-walk rewriting idiom
// lang/ast's visitor-based rewrites use; the substitution map itself
// uses github.com/dolthub/swiss, as lang/checker does.
package inline

import (
	"github.com/dolthub/swiss"
	"github.com/mna/zkcalc/lang/ast"
)

// Inline processes p.Decls left to right, substituting each let-binding's
// (already-inlined) expression for every later reference to it, and
// returns the final expression with all let-bindings eliminated. Public
// variables are never substituted; they remain free ast.VariableExpr
// nodes. Termination follows from p.Decls being acyclic and topologically
// sorted (guaranteed by lang/checker.NewProgram).
func Inline(p *ast.Program) ast.Expr {
	subst := swiss.NewMap[ast.Ident, ast.Expr](uint32(len(p.Decls)))
	for _, d := range p.Decls {
		va, ok := d.(*ast.VarAssignment)
		if !ok {
			continue // PublicVar: stays a free variable, not entered into subst
		}
		subst.Put(va.Binder.Ident, substitute(subst, va.Expr))
	}
	return substitute(subst, p.Expr)
}

// substitute walks e, replacing each VariableExpr bound in subst with
// its mapped expression (annotations replaced by the definition's span)
// and rebuilding every other node with its substituted children.
func substitute(subst *swiss.Map[ast.Ident, ast.Expr], e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		cp := *n
		return &cp

	case *ast.VariableExpr:
		if repl, ok := subst.Get(n.Ident); ok {
			return ast.Clone(repl)
		}
		cp := *n
		return &cp

	case *ast.UnaryExpr:
		return &ast.UnaryExpr{Ann: n.Ann, Op: n.Op, X: substitute(subst, n.X)}

	case *ast.BinExpr:
		return &ast.BinExpr{Ann: n.Ann, X: substitute(subst, n.X), Op: n.Op, Y: substitute(subst, n.Y)}

	case *ast.IfExpr:
		return &ast.IfExpr{
			Ann:  n.Ann,
			Cond: substitute(subst, n.Cond),
			Then: substitute(subst, n.Then),
			Else: substitute(subst, n.Else),
		}

	default:
		panic("inline: unknown Expr type")
	}
}
