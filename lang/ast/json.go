package ast

import (
	"encoding/json"
	"fmt"

	"github.com/mna/zkcalc/lang/token"
)

// jsonExpr is the on-the-wire envelope for an Expr node. Only the fields
// relevant to Kind are populated. Grounded on the original Rust source's
// #[derive(Serialize, Deserialize)] on its Expr enum (ast/expression.rs);
// Go has no derive macros for sum types, so the tag field is explicit.
type jsonExpr struct {
	Kind  string     `json:"kind"`
	Span  token.Span `json:"span"`
	Lit   *Literal   `json:"lit,omitempty"`
	Ident Ident      `json:"ident,omitempty"`
	Op    string     `json:"op,omitempty"`
	X     *jsonExpr  `json:"x,omitempty"`
	Y     *jsonExpr  `json:"y,omitempty"`
	Cond  *jsonExpr  `json:"cond,omitempty"`
	Then  *jsonExpr  `json:"then,omitempty"`
	Else  *jsonExpr  `json:"else,omitempty"`
}

func exprToJSON(e Expr) *jsonExpr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *LiteralExpr:
		return &jsonExpr{Kind: "literal", Span: n.Ann, Lit: &n.Lit}
	case *VariableExpr:
		return &jsonExpr{Kind: "variable", Span: n.Ann, Ident: n.Ident}
	case *UnaryExpr:
		return &jsonExpr{Kind: "unary", Span: n.Ann, Op: n.Op.String(), X: exprToJSON(n.X)}
	case *BinExpr:
		return &jsonExpr{Kind: "binop", Span: n.Ann, Op: n.Op.String(), X: exprToJSON(n.X), Y: exprToJSON(n.Y)}
	case *IfExpr:
		return &jsonExpr{Kind: "if", Span: n.Ann, Cond: exprToJSON(n.Cond), Then: exprToJSON(n.Then), Else: exprToJSON(n.Else)}
	default:
		panic("ast: unknown Expr type in exprToJSON")
	}
}

var (
	unaryOpByName = map[string]UnaryOp{"-": Neg}
	binOpByName   = map[string]BinOp{"+": Add, "-": Sub, "*": Mul, "^": Pow, "&&": And, "||": Or, "==": Eq}
)

func exprFromJSON(j *jsonExpr) (Expr, error) {
	if j == nil {
		return nil, nil
	}
	switch j.Kind {
	case "literal":
		if j.Lit == nil {
			return nil, fmt.Errorf("ast: literal expr missing lit")
		}
		return &LiteralExpr{Ann: j.Span, Lit: *j.Lit}, nil
	case "variable":
		return &VariableExpr{Ann: j.Span, Ident: j.Ident}, nil
	case "unary":
		op, ok := unaryOpByName[j.Op]
		if !ok {
			return nil, fmt.Errorf("ast: unknown unary op %q", j.Op)
		}
		x, err := exprFromJSON(j.X)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Ann: j.Span, Op: op, X: x}, nil
	case "binop":
		op, ok := binOpByName[j.Op]
		if !ok {
			return nil, fmt.Errorf("ast: unknown binary op %q", j.Op)
		}
		x, err := exprFromJSON(j.X)
		if err != nil {
			return nil, err
		}
		y, err := exprFromJSON(j.Y)
		if err != nil {
			return nil, err
		}
		return &BinExpr{Ann: j.Span, X: x, Op: op, Y: y}, nil
	case "if":
		cond, err := exprFromJSON(j.Cond)
		if err != nil {
			return nil, err
		}
		then, err := exprFromJSON(j.Then)
		if err != nil {
			return nil, err
		}
		els, err := exprFromJSON(j.Else)
		if err != nil {
			return nil, err
		}
		return &IfExpr{Ann: j.Span, Cond: cond, Then: then, Else: els}, nil
	default:
		return nil, fmt.Errorf("ast: unknown expr kind %q", j.Kind)
	}
}

// ExprToJSON marshals an Expr tree to JSON.
func ExprToJSON(e Expr) ([]byte, error) {
	return json.Marshal(exprToJSON(e))
}

// ExprFromJSON unmarshals an Expr tree from JSON.
func ExprFromJSON(data []byte) (Expr, error) {
	var j jsonExpr
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return exprFromJSON(&j)
}

type jsonBinder struct {
	Span    token.Span `json:"span"`
	Ident   Ident      `json:"ident"`
	Type    string     `json:"type,omitempty"`
	HasType bool       `json:"has_type"`
}

func binderToJSON(b Binder) jsonBinder {
	jb := jsonBinder{Span: b.Ann, Ident: b.Ident, HasType: b.HasType}
	if b.HasType {
		jb.Type = b.DeclTy.String()
	}
	return jb
}

func binderFromJSON(jb jsonBinder) (Binder, error) {
	b := Binder{Ann: jb.Span, Ident: jb.Ident, HasType: jb.HasType}
	if jb.HasType {
		switch jb.Type {
		case "F":
			b.DeclTy = Field
		case "Bool":
			b.DeclTy = Boolean
		default:
			return Binder{}, fmt.Errorf("ast: unknown binder type %q", jb.Type)
		}
	}
	return b, nil
}

type jsonDecl struct {
	Kind   string     `json:"kind"`
	Span   token.Span `json:"span"`
	Binder jsonBinder `json:"binder"`
	Expr   *jsonExpr  `json:"expr,omitempty"`
}

func declToJSON(d Decl) jsonDecl {
	switch n := d.(type) {
	case *VarAssignment:
		return jsonDecl{Kind: "let", Span: n.Ann, Binder: binderToJSON(n.Binder), Expr: exprToJSON(n.Expr)}
	case *PublicVar:
		return jsonDecl{Kind: "pub", Span: n.Ann, Binder: binderToJSON(n.Binder)}
	default:
		panic("ast: unknown Decl type in declToJSON")
	}
}

func declFromJSON(jd jsonDecl) (Decl, error) {
	b, err := binderFromJSON(jd.Binder)
	if err != nil {
		return nil, err
	}
	switch jd.Kind {
	case "let":
		e, err := exprFromJSON(jd.Expr)
		if err != nil {
			return nil, err
		}
		return &VarAssignment{Ann: jd.Span, Binder: b, Expr: e}, nil
	case "pub":
		return &PublicVar{Ann: jd.Span, Binder: b}, nil
	default:
		return nil, fmt.Errorf("ast: unknown decl kind %q", jd.Kind)
	}
}

type jsonProgram struct {
	Decls []jsonDecl `json:"decls"`
	Expr  *jsonExpr  `json:"expr"`
}

// MarshalJSON implements the program's JSON wire format.
func (p *Program) MarshalJSON() ([]byte, error) {
	jp := jsonProgram{Expr: exprToJSON(p.Expr)}
	for _, d := range p.Decls {
		jp.Decls = append(jp.Decls, declToJSON(d))
	}
	return json.Marshal(jp)
}

func (p *Program) UnmarshalJSON(data []byte) error {
	var jp jsonProgram
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	decls := make([]Decl, len(jp.Decls))
	for i, jd := range jp.Decls {
		d, err := declFromJSON(jd)
		if err != nil {
			return err
		}
		decls[i] = d
	}
	e, err := exprFromJSON(jp.Expr)
	if err != nil {
		return err
	}
	p.Decls, p.Expr = decls, e
	return nil
}

type jsonCompiledProgram struct {
	PublicVars []Ident   `json:"public_vars"`
	Expr       *jsonExpr `json:"expr"`
}

// MarshalJSON implements the JSON wire format for the compiled
// program (what the CLI's compile command writes out with --dump).
func (cp *CompiledProgram) MarshalJSON() ([]byte, error) {
	jcp := jsonCompiledProgram{PublicVars: cp.PublicVars, Expr: exprToJSON(cp.Expr)}
	return json.Marshal(jcp)
}

func (cp *CompiledProgram) UnmarshalJSON(data []byte) error {
	var jcp jsonCompiledProgram
	if err := json.Unmarshal(data, &jcp); err != nil {
		return err
	}
	e, err := exprFromJSON(jcp.Expr)
	if err != nil {
		return err
	}
	cp.PublicVars, cp.Expr = jcp.PublicVars, e
	return nil
}
