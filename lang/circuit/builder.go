package circuit

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/zkcalc/lang/ast"
)

// UnconstrainedPublicVarError reports that a declared public variable never
// appeared as a free variable of the compiled expression, so the builder
// never allocated a target for it. lang/compiler accepts unused public
// variables, so a program that compiled can still fail here; Build
// returns this as an error value.
type UnconstrainedPublicVarError struct {
	Ident ast.Ident
}

func (e *UnconstrainedPublicVarError) Error() string {
	return fmt.Sprintf("circuit: public variable %q was never constrained", e.Ident)
}

// builder walks a CompiledProgram expression and drives a Backend,
// memoizing one Target per free-variable identifier the first time it is
// encountered.
type builder struct {
	backend Backend
	targets *swiss.Map[ast.Ident, Target]
}

// Build implements the §4.7 circuit builder. It returns the backend's
// CircuitData, or an *UnconstrainedPublicVarError if some declared public
// variable in cp.PublicVars never appears free in cp.Expr.
func Build(b Backend, cp *ast.CompiledProgram) (CircuitData, error) {
	t, err := BuildWithTargets(b, cp)
	if err != nil {
		return nil, err
	}
	return t.Data, nil
}

// Targets is the result of BuildWithTargets: the backend's CircuitData
// plus the ident->Target memo the builder accumulated for every public
// variable, so callers (lang/prove) can bind a witness by identifier
// without re-walking the expression themselves.
type Targets struct {
	Data    CircuitData
	targets map[ast.Ident]Target
}

// PublicVarTarget returns the Target allocated for public variable id
// during the build, if any.
func (t *Targets) PublicVarTarget(id ast.Ident) (Target, bool) {
	v, ok := t.targets[id]
	return v, ok
}

// BuildWithTargets is Build, but also exposes the ident->Target mapping
// for the program's public variables.
func BuildWithTargets(b Backend, cp *ast.CompiledProgram) (*Targets, error) {
	bld := &builder{backend: b, targets: swiss.NewMap[ast.Ident, Target](uint32(len(cp.PublicVars)))}

	out := bld.walk(cp.Expr)

	byIdent := make(map[ast.Ident]Target, len(cp.PublicVars))
	for _, id := range cp.PublicVars {
		t, ok := bld.targets.Get(id)
		if !ok {
			return nil, &UnconstrainedPublicVarError{Ident: id}
		}
		b.RegisterPublicInput(t)
		byIdent[id] = t
	}
	b.RegisterPublicInput(out)

	return &Targets{Data: b.Build(), targets: byIdent}, nil
}

func (bld *builder) walk(e ast.Expr) Target {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return bld.literal(n.Lit)

	case *ast.VariableExpr:
		if t, ok := bld.targets.Get(n.Ident); ok {
			return t
		}
		t := bld.backend.AddVirtualTarget()
		bld.targets.Put(n.Ident, t)
		return t

	case *ast.UnaryExpr:
		x := bld.walk(n.X)
		return bld.backend.MulConst(bld.backend.FieldNegOne(), x)

	case *ast.BinExpr:
		x := bld.walk(n.X)
		y := bld.walk(n.Y)
		switch n.Op {
		case ast.Add:
			return bld.backend.Add(x, y)
		case ast.Sub:
			return bld.backend.Sub(x, y)
		case ast.Mul:
			return bld.backend.Mul(x, y)
		case ast.Pow:
			return bld.backend.Exp(x, y, 10)
		case ast.And:
			return Target(bld.backend.And(bld.backend.Bool(x), bld.backend.Bool(y)))
		case ast.Or:
			return Target(bld.backend.Or(bld.backend.Bool(x), bld.backend.Bool(y)))
		case ast.Eq:
			return Target(bld.backend.IsEqual(x, y))
		default:
			panic("circuit: unknown BinOp")
		}

	case *ast.IfExpr:
		cond := bld.walk(n.Cond)
		then := bld.walk(n.Then)
		els := bld.walk(n.Else)
		return bld.backend.Select(bld.backend.Bool(cond), then, els)

	default:
		panic("circuit: unknown Expr type")
	}
}

func (bld *builder) literal(lit ast.Literal) Target {
	switch lit.Type {
	case ast.Field:
		return bld.backend.Constant(bld.backend.FieldFromI32(lit.FieldVal))
	case ast.Boolean:
		if lit.BoolVal {
			return bld.backend.Constant(bld.backend.FieldOne())
		}
		return bld.backend.Constant(bld.backend.FieldZero())
	default:
		panic("circuit: unknown Literal type")
	}
}
