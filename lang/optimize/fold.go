// Package optimize implements the constant folder: a recursive,
// single-pass rewrite that reduces Field arithmetic over literal operands
// to a single literal, leaving boolean, equality and conditional nodes
// untouched beyond folding their children. It follows the same
// recursive expression-rewrite idiom as lang/inline's substitute.
package optimize

import "github.com/mna/zkcalc/lang/ast"

// Fold recursively constant-folds e.
//
// Pow with a negative right-hand literal has a fixed result here:
// Field(a) ^ Field(b) with b < 0 folds to Field(0),
// matching lang/interp's identical policy for the same case, rather
// than reinterpreting the exponent's bit pattern as an unsigned value
// (which would silently turn a small negative exponent into an
// enormous one).
func Fold(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		cp := *n
		return &cp

	case *ast.VariableExpr:
		cp := *n
		return &cp

	case *ast.UnaryExpr:
		x := Fold(n.X)
		if lit, ok := asFieldLiteral(x); ok {
			return &ast.LiteralExpr{Ann: n.Ann, Lit: ast.FieldLiteral(-lit)}
		}
		return &ast.UnaryExpr{Ann: n.Ann, Op: n.Op, X: x}

	case *ast.BinExpr:
		x := Fold(n.X)
		y := Fold(n.Y)
		xl, xok := asFieldLiteral(x)
		yl, yok := asFieldLiteral(y)
		if xok && yok {
			switch n.Op {
			case ast.Add:
				return &ast.LiteralExpr{Ann: n.Ann, Lit: ast.FieldLiteral(xl + yl)}
			case ast.Sub:
				return &ast.LiteralExpr{Ann: n.Ann, Lit: ast.FieldLiteral(xl - yl)}
			case ast.Mul:
				return &ast.LiteralExpr{Ann: n.Ann, Lit: ast.FieldLiteral(xl * yl)}
			case ast.Pow:
				return &ast.LiteralExpr{Ann: n.Ann, Lit: ast.FieldLiteral(foldPow(xl, yl))}
			}
		}
		return &ast.BinExpr{Ann: n.Ann, X: x, Op: n.Op, Y: y}

	case *ast.IfExpr:
		return &ast.IfExpr{
			Ann:  n.Ann,
			Cond: Fold(n.Cond),
			Then: Fold(n.Then),
			Else: Fold(n.Else),
		}

	default:
		panic("optimize: unknown Expr type")
	}
}

func asFieldLiteral(e ast.Expr) (int32, bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Lit.Type != ast.Field {
		return 0, false
	}
	return lit.Lit.FieldVal, true
}

func foldPow(base, exp int32) int32 {
	if exp < 0 {
		return 0
	}
	var result int32 = 1
	for i := int32(0); i < exp; i++ {
		result *= base
	}
	return result
}
