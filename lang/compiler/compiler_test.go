package compiler_test

import (
	"testing"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/checker"
	"github.com/mna/zkcalc/lang/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileInlinesAndFolds(t *testing.T) {
	decls := []ast.Decl{
		&ast.PublicVar{Binder: ast.Binder{Ident: "x", DeclTy: ast.Field, HasType: true}},
		&ast.VarAssignment{
			Binder: ast.Binder{Ident: "y"},
			Expr:   &ast.BinExpr{X: &ast.LiteralExpr{Lit: ast.FieldLiteral(2)}, Op: ast.Mul, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(3)}},
		},
	}
	expr := &ast.BinExpr{X: &ast.VariableExpr{Ident: "x"}, Op: ast.Add, Y: &ast.VariableExpr{Ident: "y"}}
	prog, err := checker.NewProgram(decls, expr)
	require.NoError(t, err)

	cp, err := compiler.Compile(prog)
	require.NoError(t, err)
	assert.Equal(t, []ast.Ident{"x"}, cp.PublicVars)

	want := &ast.BinExpr{X: &ast.VariableExpr{Ident: "x"}, Op: ast.Add, Y: &ast.LiteralExpr{Lit: ast.FieldLiteral(6)}}
	assert.Equal(t, want, ast.ClearAnnotations(cp.Expr))
}

func TestCompileRejectsFreeVariableNotPublic(t *testing.T) {
	// A hand-built Program (bypassing the smart constructor, which would
	// never allow this) whose body is free in "x" but declares no public
	// variables at all — this is exactly the case the gate exists to catch
	// for a Program assembled by something other than lang/parser.
	prog := &ast.Program{Expr: &ast.VariableExpr{Ident: "x"}}

	_, err := compiler.Compile(prog)
	require.Error(t, err)
	var unconstrained *compiler.UnconstrainedVariableError
	require.ErrorAs(t, err, &unconstrained)
	assert.Equal(t, []ast.Ident{"x"}, unconstrained.Idents)
}

func TestCompileGateIsAsymmetricAboutUnusedPublicVars(t *testing.T) {
	decls := []ast.Decl{
		&ast.PublicVar{Binder: ast.Binder{Ident: "x", DeclTy: ast.Field, HasType: true}},
		&ast.PublicVar{Binder: ast.Binder{Ident: "unused", DeclTy: ast.Field, HasType: true}},
	}
	prog, err := checker.NewProgram(decls, &ast.VariableExpr{Ident: "x"})
	require.NoError(t, err)

	cp, err := compiler.Compile(prog)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ast.Ident{"x", "unused"}, cp.PublicVars)
}
