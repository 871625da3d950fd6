package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/interp"
)

func (c *Cmd) Interp(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cp, err := compileFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}
	witness, err := readWitness(args[1])
	if err != nil {
		return printError(stdio, err)
	}

	evalCtx := make(map[ast.Ident]interp.Value, len(witness))
	for id, lit := range witness {
		if lit.Type == ast.Field {
			evalCtx[id] = interp.FieldValue(lit.FieldVal)
		} else {
			evalCtx[id] = interp.BoolValue(lit.BoolVal)
		}
	}

	v, err := interp.Eval(evalCtx, cp.Expr)
	if err != nil {
		return printError(stdio, err)
	}
	fmt.Fprintln(stdio.Stdout, v)
	return nil
}
