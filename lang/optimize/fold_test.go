package optimize_test

import (
	"testing"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/optimize"
	"github.com/stretchr/testify/assert"
)

func TestFoldArithmetic(t *testing.T) {
	e := &ast.BinExpr{
		X:  &ast.BinExpr{X: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)}, Op: ast.Add, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(3)}},
		Op: ast.Mul,
		Y:  &ast.LiteralExpr{Lit: ast.FieldLiteral(4)},
	}
	got := optimize.Fold(e)
	lit, ok := got.(*ast.LiteralExpr)
	if assert.True(t, ok) {
		assert.Equal(t, int32(20), lit.Lit.FieldVal)
	}
}

func TestFoldLeavesFreeVariablesAlone(t *testing.T) {
	e := &ast.BinExpr{X: &ast.VariableExpr{Ident: "x"}, Op: ast.Add, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(0)}}
	got := optimize.Fold(e)
	want := &ast.BinExpr{X: &ast.VariableExpr{Ident: "x"}, Op: ast.Add, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(0)}}
	assert.Equal(t, ast.ClearAnnotations(want), ast.ClearAnnotations(got))
}

func TestFoldUnaryNegation(t *testing.T) {
	e := &ast.UnaryExpr{Op: ast.Neg, X: &ast.LiteralExpr{Lit: ast.FieldLiteral(5)}}
	got := optimize.Fold(e)
	lit, ok := got.(*ast.LiteralExpr)
	if assert.True(t, ok) {
		assert.Equal(t, int32(-5), lit.Lit.FieldVal)
	}
}

func TestFoldWrapsOnOverflowLikeI32(t *testing.T) {
	e := &ast.BinExpr{
		X:  &ast.LiteralExpr{Lit: ast.FieldLiteral(2147483647)},
		Op: ast.Add,
		Y:  &ast.LiteralExpr{Lit: ast.FieldLiteral(1)},
	}
	got := optimize.Fold(e).(*ast.LiteralExpr)
	assert.Equal(t, int32(-2147483648), got.Lit.FieldVal)
}

func TestFoldPow(t *testing.T) {
	e := &ast.BinExpr{X: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)}, Op: ast.Pow, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(10)}}
	got := optimize.Fold(e).(*ast.LiteralExpr)
	assert.Equal(t, int32(1024), got.Lit.FieldVal)
}

func TestFoldPowNegativeExponentIsZero(t *testing.T) {
	e := &ast.BinExpr{X: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)}, Op: ast.Pow, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(-1)}}
	got := optimize.Fold(e).(*ast.LiteralExpr)
	assert.Equal(t, int32(0), got.Lit.FieldVal)
}

func TestFoldDoesNotTouchBooleanOrConditional(t *testing.T) {
	e := &ast.IfExpr{
		Cond: &ast.BinExpr{X: &ast.LiteralExpr{Lit: ast.BoolLiteral(true)}, Op: ast.And, Y: &ast.LiteralExpr{Lit: ast.BoolLiteral(false)}},
		Then: &ast.LiteralExpr{Lit: ast.FieldLiteral(1)},
		Else: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)},
	}
	got := optimize.Fold(e).(*ast.IfExpr)
	// cond is rebuilt but its And/Or operands are not themselves folded
	// into a boolean literal value.
	cond, ok := got.Cond.(*ast.BinExpr)
	require := assert.New(t)
	require.True(ok)
	require.Equal(ast.And, cond.Op)
}
