// Package interp implements a direct tree-walking evaluator over the
// same witness map lang/prove binds to a circuit, serving as the oracle
// lang/circuit/fieldsim's evaluation is checked against in tests. Values
// are a small Value interface with one small concrete type per value
// kind (Field/Boolean); the operators themselves are applied by Eval.
package interp

import (
	"fmt"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/token"
)

// Value is either a FieldValue or a BoolValue.
type Value interface {
	fmt.Stringer
	Type() ast.Type
	value()
}

// FieldValue is an i32 field element.
type FieldValue int32

func (v FieldValue) String() string { return fmt.Sprintf("%d", int32(v)) }
func (v FieldValue) Type() ast.Type { return ast.Field }
func (FieldValue) value()           {}

// BoolValue is a boolean.
type BoolValue bool

func (v BoolValue) String() string { return fmt.Sprintf("%t", bool(v)) }
func (v BoolValue) Type() ast.Type { return ast.Boolean }
func (BoolValue) value()           {}

// UnboundIdentifierError reports that the interpreter reached a Variable
// node with no entry in the context, at the offending span.
type UnboundIdentifierError struct {
	Ident ast.Ident
	Span  token.Span
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier %q at %s", e.Ident, e.Span)
}

// TypeMismatchError reports that Eval reached an operator whose operand
// did not have the type the operator requires. Unlike lang/checker's
// static check, this fires only while actually evaluating the offending
// node.
type TypeMismatchError struct {
	Want, Got ast.Type
	Span      token.Span
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s at %s", e.Want, e.Got, e.Span)
}

// Eval interprets e against ctx, a mapping from free-variable identifier
// to its witness value (the same map lang/prove binds to circuit public
// inputs). It returns *UnboundIdentifierError or *TypeMismatchError on
// failure.
//
// Pow with a negative right-hand Field value evaluates to FieldValue(0),
// matching lang/optimize.Fold's identical policy for the same case.
func Eval(ctx map[ast.Ident]Value, e ast.Expr) (Value, error) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return literalValue(n.Lit), nil

	case *ast.VariableExpr:
		v, ok := ctx[n.Ident]
		if !ok {
			return nil, &UnboundIdentifierError{Ident: n.Ident, Span: n.Ann}
		}
		return v, nil

	case *ast.UnaryExpr:
		x, err := Eval(ctx, n.X)
		if err != nil {
			return nil, err
		}
		xf, ok := x.(FieldValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Field, Got: x.Type(), Span: n.X.Span()}
		}
		return -xf, nil

	case *ast.BinExpr:
		return evalBin(ctx, n)

	case *ast.IfExpr:
		c, err := Eval(ctx, n.Cond)
		if err != nil {
			return nil, err
		}
		cb, ok := c.(BoolValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Boolean, Got: c.Type(), Span: n.Cond.Span()}
		}
		if bool(cb) {
			return Eval(ctx, n.Then)
		}
		return Eval(ctx, n.Else)

	default:
		panic("interp: unknown Expr type")
	}
}

func evalBin(ctx map[ast.Ident]Value, n *ast.BinExpr) (Value, error) {
	x, err := Eval(ctx, n.X)
	if err != nil {
		return nil, err
	}
	y, err := Eval(ctx, n.Y)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Pow:
		xf, ok := x.(FieldValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Field, Got: x.Type(), Span: n.X.Span()}
		}
		yf, ok := y.(FieldValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Field, Got: y.Type(), Span: n.Y.Span()}
		}
		switch n.Op {
		case ast.Add:
			return xf + yf, nil
		case ast.Sub:
			return xf - yf, nil
		case ast.Mul:
			return xf * yf, nil
		case ast.Pow:
			return fieldPow(xf, yf), nil
		}

	case ast.And, ast.Or:
		xb, ok := x.(BoolValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Boolean, Got: x.Type(), Span: n.X.Span()}
		}
		yb, ok := y.(BoolValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Boolean, Got: y.Type(), Span: n.Y.Span()}
		}
		if n.Op == ast.And {
			return BoolValue(xb && yb), nil
		}
		return BoolValue(xb || yb), nil

	case ast.Eq:
		xf, ok := x.(FieldValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Field, Got: x.Type(), Span: n.X.Span()}
		}
		yf, ok := y.(FieldValue)
		if !ok {
			return nil, &TypeMismatchError{Want: ast.Field, Got: y.Type(), Span: n.Y.Span()}
		}
		return BoolValue(xf == yf), nil
	}

	panic("interp: unknown BinOp")
}

func fieldPow(base, exp FieldValue) FieldValue {
	if exp < 0 {
		return 0
	}
	var result FieldValue = 1
	for i := FieldValue(0); i < exp; i++ {
		result *= base
	}
	return result
}

func literalValue(lit ast.Literal) Value {
	if lit.Type == ast.Field {
		return FieldValue(lit.FieldVal)
	}
	return BoolValue(lit.BoolVal)
}
