package checker

import (
	"github.com/dolthub/swiss"
	"github.com/mna/zkcalc/lang/ast"
)

// CheckTypes implements the two-type type checker over an already
// constructor-validated Program. It is best-effort by design: a
// let-binding declared without an explicit type is still checked
// against whatever type its expression infers to, but nothing upstream
// requires every let-binding to carry one, and the compiler gate is the
// independent backstop for anything this pass misses.
func CheckTypes(p *ast.Program) (ast.Type, error) {
	ctx := swiss.NewMap[ast.Ident, ast.Type](uint32(len(p.Decls)))

	for _, d := range p.Decls {
		switch decl := d.(type) {
		case *ast.PublicVar:
			ctx.Put(decl.Binder.Ident, decl.Binder.DeclTy)
		case *ast.VarAssignment:
			ty, err := inferType(ctx, decl.Expr)
			if err != nil {
				return ast.Field, err
			}
			if decl.Binder.HasType && decl.Binder.DeclTy != ty {
				return ast.Field, &TypeMismatchError{
					Want: decl.Binder.DeclTy, WantSpan: decl.Binder.Ann,
					Got: ty, GotSpan: decl.Expr.Span(),
				}
			}
			ctx.Put(decl.Binder.Ident, ty)
		}
	}

	return inferType(ctx, p.Expr)
}

func inferType(ctx *swiss.Map[ast.Ident, ast.Type], e ast.Expr) (ast.Type, error) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return n.Lit.Type, nil

	case *ast.VariableExpr:
		ty, ok := ctx.Get(n.Ident)
		if !ok {
			return ast.Field, &UndefinedVariableError{Ident: n.Ident, Span: n.Ann}
		}
		return ty, nil

	case *ast.UnaryExpr:
		xt, err := inferType(ctx, n.X)
		if err != nil {
			return ast.Field, err
		}
		if xt != ast.Field {
			return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.Ann, Got: xt, GotSpan: n.X.Span()}
		}
		return ast.Field, nil

	case *ast.BinExpr:
		xt, err := inferType(ctx, n.X)
		if err != nil {
			return ast.Field, err
		}
		yt, err := inferType(ctx, n.Y)
		if err != nil {
			return ast.Field, err
		}
		switch n.Op {
		case ast.Add, ast.Sub, ast.Mul, ast.Pow:
			if xt != ast.Field {
				return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.X.Span(), Got: xt, GotSpan: n.X.Span()}
			}
			if yt != ast.Field {
				return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.Y.Span(), Got: yt, GotSpan: n.Y.Span()}
			}
			return ast.Field, nil
		case ast.And, ast.Or:
			if xt != ast.Boolean {
				return ast.Field, &TypeMismatchError{Want: ast.Boolean, WantSpan: n.X.Span(), Got: xt, GotSpan: n.X.Span()}
			}
			if yt != ast.Boolean {
				return ast.Field, &TypeMismatchError{Want: ast.Boolean, WantSpan: n.Y.Span(), Got: yt, GotSpan: n.Y.Span()}
			}
			return ast.Boolean, nil
		case ast.Eq:
			if xt != ast.Field {
				return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.X.Span(), Got: xt, GotSpan: n.X.Span()}
			}
			if yt != ast.Field {
				return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.Y.Span(), Got: yt, GotSpan: n.Y.Span()}
			}
			return ast.Boolean, nil
		default:
			panic("checker: unknown BinOp")
		}

	case *ast.IfExpr:
		ct, err := inferType(ctx, n.Cond)
		if err != nil {
			return ast.Field, err
		}
		if ct != ast.Boolean {
			return ast.Field, &TypeMismatchError{Want: ast.Boolean, WantSpan: n.Cond.Span(), Got: ct, GotSpan: n.Cond.Span()}
		}
		tt, err := inferType(ctx, n.Then)
		if err != nil {
			return ast.Field, err
		}
		if tt != ast.Field {
			return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.Then.Span(), Got: tt, GotSpan: n.Then.Span()}
		}
		et, err := inferType(ctx, n.Else)
		if err != nil {
			return ast.Field, err
		}
		if et != ast.Field {
			return ast.Field, &TypeMismatchError{Want: ast.Field, WantSpan: n.Else.Span(), Got: et, GotSpan: n.Else.Span()}
		}
		return ast.Field, nil

	default:
		panic("checker: unknown Expr type")
	}
}
