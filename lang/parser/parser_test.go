package parser_test

import (
	"testing"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecedence(t *testing.T) {
	// '^' (right-assoc, tighter than '*') inside '*' (left-assoc).
	p, err := parser.Parse("2 * 3 ^ 4 ^ 5")
	require.NoError(t, err)
	want := &ast.BinExpr{
		X:  &ast.LiteralExpr{Lit: ast.FieldLiteral(2)},
		Op: ast.Mul,
		Y: &ast.BinExpr{
			X:  &ast.LiteralExpr{Lit: ast.FieldLiteral(3)},
			Op: ast.Pow,
			Y: &ast.BinExpr{
				X:  &ast.LiteralExpr{Lit: ast.FieldLiteral(4)},
				Op: ast.Pow,
				Y:  &ast.LiteralExpr{Lit: ast.FieldLiteral(5)},
			},
		},
	}
	assert.Equal(t, want, ast.ClearAnnotations(p.Expr))
}

func TestParseUnaryBindsTighterThanMul(t *testing.T) {
	p, err := parser.Parse("-2 * 3")
	require.NoError(t, err)
	want := &ast.BinExpr{
		X:  &ast.UnaryExpr{Op: ast.Neg, X: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)}},
		Op: ast.Mul,
		Y:  &ast.LiteralExpr{Lit: ast.FieldLiteral(3)},
	}
	assert.Equal(t, want, ast.ClearAnnotations(p.Expr))
}

func TestParseUnaryBindsLooserThanPow(t *testing.T) {
	p, err := parser.Parse("-2 ^ 3")
	require.NoError(t, err)
	want := &ast.UnaryExpr{
		Op: ast.Neg,
		X: &ast.BinExpr{
			X:  &ast.LiteralExpr{Lit: ast.FieldLiteral(2)},
			Op: ast.Pow,
			Y:  &ast.LiteralExpr{Lit: ast.FieldLiteral(3)},
		},
	}
	assert.Equal(t, want, ast.ClearAnnotations(p.Expr))
}

func TestParseEqLeftAssoc(t *testing.T) {
	p, err := parser.Parse("true == true == false")
	require.NoError(t, err)
	want := &ast.BinExpr{
		X: &ast.BinExpr{
			X:  &ast.LiteralExpr{Lit: ast.BoolLiteral(true)},
			Op: ast.Eq,
			Y:  &ast.LiteralExpr{Lit: ast.BoolLiteral(true)},
		},
		Op: ast.Eq,
		Y:  &ast.LiteralExpr{Lit: ast.BoolLiteral(false)},
	}
	assert.Equal(t, want, ast.ClearAnnotations(p.Expr))
}

func TestParseIfThenElse(t *testing.T) {
	p, err := parser.Parse("if true then 1 else 2")
	require.NoError(t, err)
	want := &ast.IfExpr{
		Cond: &ast.LiteralExpr{Lit: ast.BoolLiteral(true)},
		Then: &ast.LiteralExpr{Lit: ast.FieldLiteral(1)},
		Else: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)},
	}
	assert.Equal(t, want, ast.ClearAnnotations(p.Expr))
}

func TestParseDeclsAndExpr(t *testing.T) {
	p, err := parser.Parse("pub x: F;\nlet y = x * x;\ny + 1")
	require.NoError(t, err)
	require.Len(t, p.Decls, 2)
	assert.Equal(t, ast.Ident("x"), p.Decls[0].Identifier())
	assert.Equal(t, ast.Ident("y"), p.Decls[1].Identifier())
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	_, err := parser.Parse("1 + 1 2")
	assert.Error(t, err)
}

func TestParseMissingSemiIsError(t *testing.T) {
	_, err := parser.Parse("let x = 1\nx")
	assert.Error(t, err)
}

func TestParseUnboundIdentifierIsError(t *testing.T) {
	_, err := parser.Parse("let y = z;\ny")
	assert.Error(t, err)
}

func TestParseDuplicateIdentifierIsError(t *testing.T) {
	_, err := parser.Parse("let x = 1;\nlet x = 2;\nx")
	assert.Error(t, err)
}
