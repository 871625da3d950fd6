// Package parser turns source text into an ast.Program. It follows a
// precedence-climbing design (parseSubExpr/binopPriority) adapted to
// this language's grammar and operator table, and hands the resulting
// raw declarations and expression to lang/checker.NewProgram to get the
// final, invariant-checked ast.Program.
package parser

import (
	"fmt"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/checker"
	"github.com/mna/zkcalc/lang/scanner"
	"github.com/mna/zkcalc/lang/token"
)

// ParseError is a syntax error encountered while parsing.
type ParseError struct {
	Msg  string
	Span token.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Span, e.Msg)
}

// Parse parses src into a fully checked ast.Program (per the §4.2 smart
// constructor's invariants). On a syntax error, or if the smart constructor
// rejects the resulting declarations, the returned error is non-nil.
func Parse(src string) (*ast.Program, error) {
	var el scanner.ErrorList
	p := &parser{}
	p.scan.Init([]byte(src), el.Add)
	p.next()

	decls, expr, perr := p.parseProgram()
	if perr != nil {
		return nil, perr
	}
	if err := el.Err(); err != nil {
		return nil, err
	}
	return checker.NewProgram(decls, expr)
}

type parser struct {
	scan scanner.Scanner
	tok  scanner.TokenAndValue
}

func (p *parser) next() {
	p.tok = p.scan.Scan()
}

func (p *parser) expect(k token.Kind) (token.Span, error) {
	if p.tok.Kind != k {
		return token.Span{}, &ParseError{
			Msg:  fmt.Sprintf("expected %s, got %s", k, p.tok.Kind),
			Span: p.tok.Span,
		}
	}
	sp := p.tok.Span
	p.next()
	return sp, nil
}

// parseProgram parses `decl* expression`.
func (p *parser) parseProgram() ([]ast.Decl, ast.Expr, error) {
	var decls []ast.Decl
	for p.tok.Kind == token.PUB || p.tok.Kind == token.LET {
		d, err := p.parseDecl()
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, d)
	}
	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, nil, err
	}
	if p.tok.Kind != token.EOF {
		return nil, nil, &ParseError{Msg: fmt.Sprintf("unexpected trailing token %s", p.tok.Kind), Span: p.tok.Span}
	}
	return decls, expr, nil
}

func (p *parser) parseDecl() (ast.Decl, error) {
	switch p.tok.Kind {
	case token.PUB:
		return p.parsePublicVar()
	case token.LET:
		return p.parseAssignment()
	default:
		return nil, &ParseError{Msg: fmt.Sprintf("expected 'pub' or 'let', got %s", p.tok.Kind), Span: p.tok.Span}
	}
}

// parsePublicVar parses `"pub" typed_ident ";"`.
func (p *parser) parsePublicVar() (ast.Decl, error) {
	start, err := p.expect(token.PUB)
	if err != nil {
		return nil, err
	}
	binder, err := p.parseTypedIdent()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.SEMI)
	if err != nil {
		return nil, err
	}
	binder.Ann = token.Span{Start: start.Start, End: end.End}
	return &ast.PublicVar{Ann: binder.Ann, Binder: binder}, nil
}

// parseAssignment parses `"let" ident "=" expression ";"`.
func (p *parser) parseAssignment() (ast.Decl, error) {
	start, err := p.expect(token.LET)
	if err != nil {
		return nil, err
	}
	name := p.tok
	if _, err := p.expect(token.IDENT); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.SEMI)
	if err != nil {
		return nil, err
	}
	sp := token.Span{Start: start.Start, End: end.End}
	binder := ast.Binder{Ann: name.Span, Ident: ast.NewIdent(name.Ident)}
	return &ast.VarAssignment{Ann: sp, Binder: binder, Expr: e}, nil
}

// parseTypedIdent parses `ident ":" ("F" | "Bool")`.
func (p *parser) parseTypedIdent() (ast.Binder, error) {
	name := p.tok
	if _, err := p.expect(token.IDENT); err != nil {
		return ast.Binder{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.Binder{}, err
	}
	var ty ast.Type
	switch p.tok.Kind {
	case token.F:
		ty = ast.Field
	case token.BOOL:
		ty = ast.Boolean
	default:
		return ast.Binder{}, &ParseError{Msg: fmt.Sprintf("expected type (F or Bool), got %s", p.tok.Kind), Span: p.tok.Span}
	}
	p.next()
	return ast.Binder{Ann: name.Span, Ident: ast.NewIdent(name.Ident), DeclTy: ty, HasType: true}, nil
}
