package parser

import (
	"fmt"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/token"
)

// binPriority gives the (left, right) binding power of each binary
// operator, low to high: {+,-,||}, {*,&&}, unary -, ^ (right-assoc),
// ==. Follows the same binopPriority table and parseSubExpr precedence
// climbing shape used throughout this family of expression parsers.
var binPriority = map[token.Kind]struct{ left, right int }{
	token.PLUS:  {10, 10},
	token.MINUS: {10, 10},
	token.OR:    {10, 10},
	token.STAR:  {20, 20},
	token.AND:   {20, 20},
	token.CARET: {40, 39}, // right-associative
	token.EQEQ:  {50, 50},
}

var binOpForKind = map[token.Kind]ast.BinOp{
	token.PLUS:  ast.Add,
	token.MINUS: ast.Sub,
	token.STAR:  ast.Mul,
	token.CARET: ast.Pow,
	token.AND:   ast.And,
	token.OR:    ast.Or,
	token.EQEQ:  ast.Eq,
}

const unaryPriority = 25

func (p *parser) parseExpr(priority int) (ast.Expr, error) {
	return p.parseSubExpr(priority)
}

func (p *parser) parseSubExpr(priority int) (ast.Expr, error) {
	var left ast.Expr
	if p.tok.Kind == token.MINUS {
		start := p.tok.Span
		p.next()
		x, err := p.parseSubExpr(unaryPriority)
		if err != nil {
			return nil, err
		}
		left = &ast.UnaryExpr{Ann: token.Span{Start: start.Start, End: x.Span().End}, Op: ast.Neg, X: x}
	} else {
		var err error
		left, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
	}

	for {
		prio, ok := binPriority[p.tok.Kind]
		if !ok || prio.left <= priority {
			break
		}
		op := binOpForKind[p.tok.Kind]
		p.next()
		right, err := p.parseSubExpr(prio.right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinExpr{
			Ann: token.Span{Start: left.Span().Start, End: right.Span().End},
			X:   left, Op: op, Y: right,
		}
	}
	return left, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch p.tok.Kind {
	case token.INT:
		tv := p.tok
		p.next()
		return &ast.LiteralExpr{Ann: tv.Span, Lit: ast.FieldLiteral(tv.Int)}, nil
	case token.TRUE:
		sp := p.tok.Span
		p.next()
		return &ast.LiteralExpr{Ann: sp, Lit: ast.BoolLiteral(true)}, nil
	case token.FALSE:
		sp := p.tok.Span
		p.next()
		return &ast.LiteralExpr{Ann: sp, Lit: ast.BoolLiteral(false)}, nil
	case token.IDENT:
		tv := p.tok
		p.next()
		return &ast.VariableExpr{Ann: tv.Span, Ident: ast.NewIdent(tv.Ident)}, nil
	case token.LPAREN:
		p.next()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	case token.IF:
		return p.parseIf()
	default:
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected token %s", p.tok.Kind), Span: p.tok.Span}
	}
}

// parseIf parses `"if" cond "then" e1 "else" e2`.
func (p *parser) parseIf() (ast.Expr, error) {
	start, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	els, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{
		Ann:  token.Span{Start: start.Start, End: els.Span().End},
		Cond: cond, Then: then, Else: els,
	}, nil
}
